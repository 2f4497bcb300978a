package microdom

// EntityRef is an unexpanded entity reference, written as &name;.
//
// The parser never produces these: the standard tokenizer expands entities
// while reading. They exist for programmatic construction of documents that
// must reference externally defined entities.
type EntityRef struct {
	leafNode
	name string
}

// NewEntityRef creates a detached entity reference. It panics if name is
// empty.
func NewEntityRef(name string) *EntityRef {
	if name == "" {
		panic("microdom: entity reference name must not be empty")
	}
	e := &EntityRef{name: name}
	e.init(e)
	return e
}

// Type returns EntityReferenceNode.
func (e *EntityRef) Type() NodeType { return EntityReferenceNode }

// Name returns the referenced entity name.
func (e *EntityRef) Name() string { return e.name }

// Clone returns a parentless copy.
func (e *EntityRef) Clone() Node { return NewEntityRef(e.name) }
