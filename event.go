package microdom

// EventType identifies a kind of tree mutation.
type EventType int

const (
	// NodeInserted fires after a node is added to a parent.
	NodeInserted EventType = iota
	// NodeRemoved fires after a node is detached from a parent.
	NodeRemoved
)

// String returns a short name for the event type.
func (t EventType) String() string {
	switch t {
	case NodeInserted:
		return "node-inserted"
	case NodeRemoved:
		return "node-removed"
	default:
		return "unknown"
	}
}

// Event describes a single tree mutation. Source is the node that was
// inserted or removed; Target is the parent whose child list changed.
type Event struct {
	Type   EventType
	Source Node
	Target Node
}

// Listener receives mutation events. Listeners are compared by interface
// equality, so the usual implementation is a method on a pointer type.
type Listener interface {
	HandleEvent(ev Event)
}

func (n *leafNode) AddEventListener(t EventType, l Listener) bool {
	if l == nil {
		return false
	}
	for _, reg := range n.listeners[t] {
		if reg == l {
			return false
		}
	}
	if n.listeners == nil {
		n.listeners = make(map[EventType][]Listener)
	}
	n.listeners[t] = append(n.listeners[t], l)
	return true
}

func (n *leafNode) RemoveEventListener(t EventType, l Listener) bool {
	regs := n.listeners[t]
	for i, reg := range regs {
		if reg == l {
			n.listeners[t] = append(regs[:i], regs[i+1:]...)
			return true
		}
	}
	return false
}

func (n *leafNode) notify(ev Event) {
	for _, l := range n.listeners[ev.Type] {
		l.HandleEvent(ev)
	}
}

// bubble delivers ev to the target node and every ancestor above it.
func bubble(ev Event) {
	for cur := ev.Target; cur != nil; cur = cur.Parent() {
		cur.notify(ev)
	}
}
