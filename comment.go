package microdom

import "strings"

// Comment is an XML comment.
type Comment struct {
	leafNode
	data string
}

// NewComment creates a detached comment node. The comment grammar forbids
// "--" inside the data and a trailing "-"; both panic because the node
// could never be written as well-formed XML.
func NewComment(data string) *Comment {
	checkCommentData(data)
	c := &Comment{data: data}
	c.init(c)
	return c
}

func checkCommentData(data string) {
	if strings.Contains(data, "--") || strings.HasSuffix(data, "-") {
		panic(`microdom: comment data must not contain "--" or end with "-"`)
	}
}

// Type returns CommentNode.
func (c *Comment) Type() NodeType { return CommentNode }

// Name returns "#comment".
func (c *Comment) Name() string { return "#comment" }

// Data returns the comment text.
func (c *Comment) Data() string { return c.data }

// SetData replaces the comment text, with the same validation as
// NewComment.
func (c *Comment) SetData(data string) {
	checkCommentData(data)
	c.data = data
}

// Clone returns a parentless copy.
func (c *Comment) Clone() Node { return NewComment(c.data) }
