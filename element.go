package microdom

import "strings"

// Element is an XML element: a qualified tag name, an ordered attribute
// list and an ordered child list.
type Element struct {
	branchNode
	name  QName
	attrs attrList
}

// NewElement creates a detached element without a namespace.
func NewElement(local string) *Element {
	return NewElementNS("", local)
}

// NewElementNS creates a detached element with a namespace URI. It panics
// if local is empty.
func NewElementNS(space, local string) *Element {
	if local == "" {
		panic("microdom: element local name must not be empty")
	}
	e := &Element{name: QName{Space: space, Local: local}}
	e.init(e)
	return e
}

// Type returns ElementNode.
func (e *Element) Type() NodeType { return ElementNode }

// Name returns the local tag name.
func (e *Element) Name() string { return e.name.Local }

// Namespace returns the namespace URI, or "".
func (e *Element) Namespace() string { return e.name.Space }

// QName returns the full qualified tag name.
func (e *Element) QName() QName { return e.name }

// Attribute returns the value of the attribute with the given un-namespaced
// local name, or "".
func (e *Element) Attribute(local string) string {
	v, _ := e.attrs.get(QName{Local: local})
	return v
}

// AttributeNS looks up an attribute by qualified name.
func (e *Element) AttributeNS(space, local string) (string, bool) {
	return e.attrs.get(QName{Space: space, Local: local})
}

// HasAttribute reports whether the un-namespaced attribute exists.
func (e *Element) HasAttribute(local string) bool {
	_, ok := e.attrs.get(QName{Local: local})
	return ok
}

// SetAttribute sets an un-namespaced attribute and returns the element for
// chaining. An existing attribute keeps its position.
func (e *Element) SetAttribute(local, value string) *Element {
	return e.SetAttributeNS("", local, value)
}

// SetAttributeNS sets a namespace-qualified attribute. It panics if local
// is empty.
func (e *Element) SetAttributeNS(space, local, value string) *Element {
	if local == "" {
		panic("microdom: attribute local name must not be empty")
	}
	e.attrs.set(QName{Space: space, Local: local}, value)
	return e
}

// RemoveAttribute removes the un-namespaced attribute and reports whether
// it existed.
func (e *Element) RemoveAttribute(local string) bool {
	return e.attrs.remove(QName{Local: local})
}

// RemoveAttributeNS removes a namespace-qualified attribute.
func (e *Element) RemoveAttributeNS(space, local string) bool {
	return e.attrs.remove(QName{Space: space, Local: local})
}

// AttrCount returns the number of attributes.
func (e *Element) AttrCount() int { return len(e.attrs.attrs) }

// Attributes returns a copy of the attribute list in insertion order.
func (e *Element) Attributes() []Attr {
	return e.attrs.clone().attrs
}

// AttributeMap returns the attributes as a map keyed by Clark-notation
// qualified name.
func (e *Element) AttributeMap() map[string]string {
	if len(e.attrs.attrs) == 0 {
		return nil
	}
	m := make(map[string]string, len(e.attrs.attrs))
	for _, a := range e.attrs.attrs {
		m[a.Name.String()] = a.Value
	}
	return m
}

// ChildElements returns the direct child elements, in order.
func (e *Element) ChildElements() []*Element {
	return childElements(e, func(*Element) bool { return true })
}

// ChildElementsNamed returns the direct child elements with the given local
// name, ignoring namespaces.
func (e *Element) ChildElementsNamed(local string) []*Element {
	return childElements(e, func(c *Element) bool { return c.name.Local == local })
}

// ChildElementsNamedNS returns the direct child elements whose qualified
// name matches exactly.
func (e *Element) ChildElementsNamedNS(space, local string) []*Element {
	want := QName{Space: space, Local: local}
	return childElements(e, func(c *Element) bool { return c.name == want })
}

// FirstChildElement returns the first direct child element with the given
// local name, ignoring namespaces, or nil.
func (e *Element) FirstChildElement(local string) *Element {
	for _, c := range e.children {
		if el, ok := c.(*Element); ok && el.name.Local == local {
			return el
		}
	}
	return nil
}

// FirstChildElementNS is FirstChildElement with an exact namespace match.
func (e *Element) FirstChildElementNS(space, local string) *Element {
	want := QName{Space: space, Local: local}
	for _, c := range e.children {
		if el, ok := c.(*Element); ok && el.name == want {
			return el
		}
	}
	return nil
}

// TextContent concatenates the data of all descendant text and CDATA nodes
// in document order.
func (e *Element) TextContent() string {
	var sb strings.Builder
	appendTextContent(&sb, e)
	return sb.String()
}

// Clone returns a deep, parentless copy including attributes and children.
func (e *Element) Clone() Node {
	cp := NewElementNS(e.name.Space, e.name.Local)
	cp.attrs = e.attrs.clone()
	e.cloneChildrenInto(cp)
	return cp
}

func childElements(n Node, keep func(*Element) bool) []*Element {
	var out []*Element
	for _, c := range n.Children() {
		if el, ok := c.(*Element); ok && keep(el) {
			out = append(out, el)
		}
	}
	return out
}

func appendTextContent(sb *strings.Builder, n Node) {
	switch t := n.(type) {
	case *Text:
		sb.WriteString(t.Data())
	case *CDATA:
		sb.WriteString(t.Data())
	default:
		for _, c := range n.Children() {
			appendTextContent(sb, c)
		}
	}
}
