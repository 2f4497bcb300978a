package microdom

import "fmt"

// NodeType identifies the kind of a node in the tree.
type NodeType int

// The node kinds, in the order they sort for canonical output.
const (
	CDATANode NodeType = iota
	CommentNode
	ContainerNode
	DocumentNode
	DocumentTypeNode
	ElementNode
	EntityReferenceNode
	ProcessingInstructionNode
	TextNode
)

// String returns a short name for the node type.
func (t NodeType) String() string {
	switch t {
	case CDATANode:
		return "cdata"
	case CommentNode:
		return "comment"
	case ContainerNode:
		return "container"
	case DocumentNode:
		return "document"
	case DocumentTypeNode:
		return "doctype"
	case ElementNode:
		return "element"
	case EntityReferenceNode:
		return "entity-reference"
	case ProcessingInstructionNode:
		return "processing-instruction"
	case TextNode:
		return "text"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}

// Node is the interface shared by every node in a microdom tree.
//
// The interface is sealed: only the node types of this package implement it.
// Mutation methods panic on invalid operations, see the package documentation.
type Node interface {
	// Type returns the kind of the node.
	Type() NodeType
	// Name returns the node name: the tag name for elements, the target for
	// processing instructions, the referenced name for entity references and
	// a "#"-prefixed label for the other kinds.
	Name() string

	// Parent returns the parent node, or nil for a detached node.
	Parent() Node
	// HasParent reports whether the node is attached to a parent.
	HasParent() bool
	// Document returns the document the node belongs to, or nil.
	Document() *Document

	// HasChildren reports whether the node has at least one child.
	HasChildren() bool
	// ChildCount returns the number of children.
	ChildCount() int
	// Children returns a copy of the child list.
	Children() []Node
	// ChildAt returns the child at index i. It panics if i is out of range.
	ChildAt(i int) Node
	// FirstChild returns the first child, or nil.
	FirstChild() Node
	// LastChild returns the last child, or nil.
	LastChild() Node
	// PreviousSibling returns the node immediately before this one under the
	// same parent, or nil.
	PreviousSibling() Node
	// NextSibling returns the node immediately after this one under the same
	// parent, or nil.
	NextSibling() Node

	// AppendChild adds child as the last child of the node.
	AppendChild(child Node)
	// InsertAt inserts child at index i, shifting later children right.
	InsertAt(i int, child Node)
	// InsertBefore inserts child immediately before the existing child ref.
	InsertBefore(child, ref Node)
	// InsertAfter inserts child immediately after the existing child ref.
	InsertAfter(child, ref Node)
	// RemoveChild removes child and reports whether it was present.
	RemoveChild(child Node) bool
	// RemoveChildAt removes and returns the child at index i. It panics if i
	// is out of range.
	RemoveChildAt(i int) Node
	// RemoveAllChildren detaches every child.
	RemoveAllChildren()
	// ReplaceChild replaces the existing child old with the parentless node
	// repl, keeping the position.
	ReplaceChild(old, repl Node)
	// Detach removes the node from its parent, if any.
	Detach()

	// Clone returns a deep, parentless copy of the node. Event listeners are
	// not copied.
	Clone() Node

	// AddEventListener registers l for events of type t on this node.
	// It reports whether the listener was newly added.
	AddEventListener(t EventType, l Listener) bool
	// RemoveEventListener unregisters l for events of type t and reports
	// whether it was registered.
	RemoveEventListener(t EventType, l Listener) bool

	setParent(p Node)
	notify(ev Event)
}

// leafNode is the base of every node. It manages the parent link and the
// event listener registry; all child operations panic.
type leafNode struct {
	self      Node
	parent    Node
	listeners map[EventType][]Listener
}

func (n *leafNode) init(self Node) { n.self = self }

func (n *leafNode) setParent(p Node) { n.parent = p }

func (n *leafNode) Parent() Node { return n.parent }

func (n *leafNode) HasParent() bool { return n.parent != nil }

func (n *leafNode) HasChildren() bool { return false }

func (n *leafNode) ChildCount() int { return 0 }

func (n *leafNode) Children() []Node { return nil }

func (n *leafNode) FirstChild() Node { return nil }

func (n *leafNode) LastChild() Node { return nil }

// Document walks up the parent chain and returns the owning *Document.
func (n *leafNode) Document() *Document {
	for cur := n.self; cur != nil; cur = cur.Parent() {
		if doc, ok := cur.(*Document); ok {
			return doc
		}
	}
	return nil
}

func (n *leafNode) PreviousSibling() Node {
	if n.parent == nil {
		return nil
	}
	if i := indexOfChild(n.parent, n.self); i > 0 {
		return n.parent.ChildAt(i - 1)
	}
	return nil
}

func (n *leafNode) NextSibling() Node {
	if n.parent == nil {
		return nil
	}
	if i := indexOfChild(n.parent, n.self); i >= 0 && i < n.parent.ChildCount()-1 {
		return n.parent.ChildAt(i + 1)
	}
	return nil
}

func (n *leafNode) ChildAt(i int) Node {
	panic(fmt.Sprintf("microdom: %s node has no children", n.self.Type()))
}

func (n *leafNode) noChildren() {
	panic(fmt.Sprintf("microdom: %s node cannot have children", n.self.Type()))
}

func (n *leafNode) AppendChild(Node) { n.noChildren() }

func (n *leafNode) InsertAt(int, Node) { n.noChildren() }

func (n *leafNode) InsertBefore(Node, Node) { n.noChildren() }

func (n *leafNode) InsertAfter(Node, Node) { n.noChildren() }

func (n *leafNode) RemoveChild(Node) bool { n.noChildren(); return false }

func (n *leafNode) RemoveChildAt(int) Node { n.noChildren(); return nil }

func (n *leafNode) RemoveAllChildren() {}

func (n *leafNode) ReplaceChild(Node, Node) { n.noChildren() }

func (n *leafNode) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n.self)
	}
}

// branchNode is the base of node kinds that may hold children.
type branchNode struct {
	leafNode
	children []Node
}

func (b *branchNode) HasChildren() bool { return len(b.children) > 0 }

func (b *branchNode) ChildCount() int { return len(b.children) }

func (b *branchNode) Children() []Node {
	if len(b.children) == 0 {
		return nil
	}
	out := make([]Node, len(b.children))
	copy(out, b.children)
	return out
}

func (b *branchNode) ChildAt(i int) Node { return b.children[i] }

func (b *branchNode) FirstChild() Node {
	if len(b.children) == 0 {
		return nil
	}
	return b.children[0]
}

func (b *branchNode) LastChild() Node {
	if len(b.children) == 0 {
		return nil
	}
	return b.children[len(b.children)-1]
}

// checkInsert validates a node about to become a child of b. During a
// replacement the outgoing child is passed as ignore so it does not count
// against the document-level invariants.
func (b *branchNode) checkInsert(child, ignore Node) {
	if child == nil {
		panic("microdom: cannot insert a nil child")
	}
	if child.HasParent() {
		panic(fmt.Sprintf("microdom: %s node already has a parent", child.Type()))
	}
	if child.Type() == DocumentNode {
		panic("microdom: a document cannot be a child node")
	}
	if doc, ok := b.self.(*Document); ok {
		doc.checkDocumentChild(child, ignore)
	} else if child.Type() == DocumentTypeNode {
		panic("microdom: a doctype may only appear directly under a document")
	}
}

func (b *branchNode) insertAt(i int, child Node) {
	b.checkInsert(child, nil)
	if i < 0 || i > len(b.children) {
		panic(fmt.Sprintf("microdom: insert index %d out of range [0..%d]", i, len(b.children)))
	}
	b.children = append(b.children, nil)
	copy(b.children[i+1:], b.children[i:])
	b.children[i] = child
	child.setParent(b.self)
	bubble(Event{Type: NodeInserted, Source: child, Target: b.self})
}

func (b *branchNode) AppendChild(child Node) { b.insertAt(len(b.children), child) }

func (b *branchNode) InsertAt(i int, child Node) { b.insertAt(i, child) }

func (b *branchNode) InsertBefore(child, ref Node) {
	b.insertAt(b.mustIndexOf(ref), child)
}

func (b *branchNode) InsertAfter(child, ref Node) {
	b.insertAt(b.mustIndexOf(ref)+1, child)
}

func (b *branchNode) mustIndexOf(ref Node) int {
	i := b.indexOf(ref)
	if i < 0 {
		panic("microdom: reference node is not a child of this node")
	}
	return i
}

func (b *branchNode) indexOf(child Node) int {
	for i, c := range b.children {
		if c == child {
			return i
		}
	}
	return -1
}

func (b *branchNode) RemoveChild(child Node) bool {
	i := b.indexOf(child)
	if i < 0 {
		return false
	}
	b.RemoveChildAt(i)
	return true
}

func (b *branchNode) RemoveChildAt(i int) Node {
	if i < 0 || i >= len(b.children) {
		panic(fmt.Sprintf("microdom: remove index %d out of range [0..%d)", i, len(b.children)))
	}
	child := b.children[i]
	b.children = append(b.children[:i], b.children[i+1:]...)
	child.setParent(nil)
	bubble(Event{Type: NodeRemoved, Source: child, Target: b.self})
	return child
}

func (b *branchNode) RemoveAllChildren() {
	for len(b.children) > 0 {
		b.RemoveChildAt(len(b.children) - 1)
	}
}

func (b *branchNode) ReplaceChild(old, repl Node) {
	i := b.mustIndexOf(old)
	// Validate repl before touching old so a panic leaves the tree intact.
	b.checkInsert(repl, old)
	b.RemoveChildAt(i)
	b.insertAt(i, repl)
}

// cloneChildrenInto appends a clone of every child of b to dst.
func (b *branchNode) cloneChildrenInto(dst Node) {
	for _, c := range b.children {
		dst.AppendChild(c.Clone())
	}
}

// AppendElement creates an element with the given local name, appends it and
// returns it, enabling builder-style tree construction.
func (b *branchNode) AppendElement(local string) *Element {
	e := NewElement(local)
	b.self.AppendChild(e)
	return e
}

// AppendElementNS is AppendElement with a namespace URI.
func (b *branchNode) AppendElementNS(space, local string) *Element {
	e := NewElementNS(space, local)
	b.self.AppendChild(e)
	return e
}

// AppendText appends character data. If the last child is already a Text
// node the data is merged into it instead of creating a sibling.
func (b *branchNode) AppendText(data string) *Text {
	if t, ok := b.self.LastChild().(*Text); ok {
		t.AppendData(data)
		return t
	}
	t := NewText(data)
	b.self.AppendChild(t)
	return t
}

// AppendComment creates, appends and returns a comment node.
func (b *branchNode) AppendComment(data string) *Comment {
	c := NewComment(data)
	b.self.AppendChild(c)
	return c
}

// AppendCDATA creates, appends and returns a CDATA section.
func (b *branchNode) AppendCDATA(data string) *CDATA {
	c := NewCDATA(data)
	b.self.AppendChild(c)
	return c
}

func indexOfChild(parent, child Node) int {
	for i, c := range parent.Children() {
		if c == child {
			return i
		}
	}
	return -1
}

// IsAncestorOf reports whether descendant sits somewhere below ancestor.
func IsAncestorOf(ancestor, descendant Node) bool {
	if ancestor == nil || descendant == nil {
		return false
	}
	for cur := descendant.Parent(); cur != nil; cur = cur.Parent() {
		if cur == ancestor {
			return true
		}
	}
	return false
}
