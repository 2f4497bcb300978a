package microdom

// Container groups nodes without representing anything itself: when a tree
// is written, a container is transparent and only its children appear. It
// is useful for passing fragments around or building a list of siblings
// before attaching them.
type Container struct {
	branchNode
}

// NewContainer creates a container and appends the given children to it.
func NewContainer(children ...Node) *Container {
	c := &Container{}
	c.init(c)
	for _, child := range children {
		c.AppendChild(child)
	}
	return c
}

// Type returns ContainerNode.
func (c *Container) Type() NodeType { return ContainerNode }

// Name returns "#container".
func (c *Container) Name() string { return "#container" }

// Clone returns a deep, parentless copy.
func (c *Container) Clone() Node {
	cp := NewContainer()
	c.cloneChildrenInto(cp)
	return cp
}
