package microdom

// Text is a run of character data.
type Text struct {
	leafNode
	data string
}

// NewText creates a detached text node.
func NewText(data string) *Text {
	t := &Text{data: data}
	t.init(t)
	return t
}

// Type returns TextNode.
func (t *Text) Type() NodeType { return TextNode }

// Name returns "#text".
func (t *Text) Name() string { return "#text" }

// Data returns the character data.
func (t *Text) Data() string { return t.data }

// SetData replaces the character data.
func (t *Text) SetData(data string) { t.data = data }

// AppendData appends to the character data.
func (t *Text) AppendData(data string) { t.data += data }

// IsWhitespace reports whether the node contains only XML whitespace.
func (t *Text) IsWhitespace() bool { return isXMLWhitespace(t.data) }

// Clone returns a parentless copy.
func (t *Text) Clone() Node { return NewText(t.data) }

func isXMLWhitespace(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
		default:
			return false
		}
	}
	return true
}
