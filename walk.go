package microdom

// WalkAction tells Walk how to proceed after visiting a node.
type WalkAction int

const (
	// WalkContinue descends into the node's children.
	WalkContinue WalkAction = iota
	// WalkSkipChildren moves on to the next sibling without descending.
	WalkSkipChildren
	// WalkStop aborts the walk entirely.
	WalkStop
)

// Walk visits n and all of its descendants depth-first in document order.
// The visitor's return value controls descent: WalkSkipChildren skips the
// node's subtree but keeps walking, WalkStop aborts. Walk reports whether
// the traversal ran to completion.
func Walk(n Node, visit func(Node) WalkAction) bool {
	return walk(n, visit) != WalkStop
}

func walk(n Node, visit func(Node) WalkAction) WalkAction {
	if n == nil {
		return WalkContinue
	}
	switch visit(n) {
	case WalkSkipChildren:
		return WalkContinue
	case WalkStop:
		return WalkStop
	}
	for _, c := range n.Children() {
		if walk(c, visit) == WalkStop {
			return WalkStop
		}
	}
	return WalkContinue
}

// Equal reports whether two nodes have equal content: same kind, same
// names, values and attributes, and pairwise-equal children. Parents and
// event listeners are ignored, so a node always Equals its Clone.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if a.Type() != b.Type() || a.ChildCount() != b.ChildCount() {
		return false
	}
	if !sameContent(a, b) {
		return false
	}
	for i := 0; i < a.ChildCount(); i++ {
		if !Equal(a.ChildAt(i), b.ChildAt(i)) {
			return false
		}
	}
	return true
}

// sameContent compares the node-local payload of two nodes of equal type.
func sameContent(a, b Node) bool {
	switch x := a.(type) {
	case *Element:
		y := b.(*Element)
		if x.name != y.name || len(x.attrs.attrs) != len(y.attrs.attrs) {
			return false
		}
		for i, at := range x.attrs.attrs {
			if y.attrs.attrs[i] != at {
				return false
			}
		}
		return true
	case *Document:
		y := b.(*Document)
		return x.Version == y.Version && x.Encoding == y.Encoding && x.Standalone == y.Standalone
	case *DocType:
		y := b.(*DocType)
		return x.name == y.name && x.publicID == y.publicID && x.systemID == y.systemID
	case *Text:
		return x.data == b.(*Text).data
	case *CDATA:
		return x.data == b.(*CDATA).data
	case *Comment:
		return x.data == b.(*Comment).data
	case *ProcInst:
		y := b.(*ProcInst)
		return x.target == y.target && x.data == y.data
	case *EntityRef:
		return x.name == b.(*EntityRef).name
	case *Container:
		return true
	default:
		return false
	}
}
