package microdom

// CDATA is a CDATA section. It carries character data like Text but is
// written as <![CDATA[...]]> instead of being entity-escaped.
type CDATA struct {
	leafNode
	data string
}

// NewCDATA creates a detached CDATA section.
func NewCDATA(data string) *CDATA {
	c := &CDATA{data: data}
	c.init(c)
	return c
}

// Type returns CDATANode.
func (c *CDATA) Type() NodeType { return CDATANode }

// Name returns "#cdata".
func (c *CDATA) Name() string { return "#cdata" }

// Data returns the character data.
func (c *CDATA) Data() string { return c.data }

// SetData replaces the character data.
func (c *CDATA) SetData(data string) { c.data = data }

// Clone returns a parentless copy.
func (c *CDATA) Clone() Node { return NewCDATA(c.data) }
