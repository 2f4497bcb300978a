package microdom

// Document is the root of a microdom tree. A document holds at most one
// element child (the document element) and at most one doctype child;
// comments, processing instructions and whitespace text may appear next to
// them. The Version, Encoding and Standalone fields feed the XML
// declaration when the document is written.
type Document struct {
	branchNode
	Version    string
	Encoding   string
	Standalone bool
}

// NewDocument creates an empty document with version "1.0" and encoding
// "UTF-8".
func NewDocument() *Document {
	d := &Document{Version: "1.0", Encoding: "UTF-8"}
	d.init(d)
	return d
}

// Type returns DocumentNode.
func (d *Document) Type() NodeType { return DocumentNode }

// Name returns "#document".
func (d *Document) Name() string { return "#document" }

// Document returns the document itself.
func (d *Document) Document() *Document { return d }

// DocumentElement returns the single element child, or nil.
func (d *Document) DocumentElement() *Element {
	for _, c := range d.children {
		if el, ok := c.(*Element); ok {
			return el
		}
	}
	return nil
}

// DocType returns the doctype child, or nil.
func (d *Document) DocType() *DocType {
	for _, c := range d.children {
		if dt, ok := c.(*DocType); ok {
			return dt
		}
	}
	return nil
}

// checkDocumentChild enforces the document-level invariants: one document
// element, one doctype, no CDATA or entity references at top level. A
// non-nil ignore is a child about to be replaced and does not count.
func (d *Document) checkDocumentChild(child, ignore Node) {
	switch child.Type() {
	case ElementNode:
		if el := d.DocumentElement(); el != nil && el != ignore {
			panic("microdom: document already has a document element")
		}
	case DocumentTypeNode:
		if dt := d.DocType(); dt != nil && dt != ignore {
			panic("microdom: document already has a doctype")
		}
	case CommentNode, ProcessingInstructionNode, TextNode, ContainerNode:
	default:
		panic("microdom: " + child.Type().String() + " node cannot appear directly under a document")
	}
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() Node {
	cp := NewDocument()
	cp.Version = d.Version
	cp.Encoding = d.Encoding
	cp.Standalone = d.Standalone
	d.cloneChildrenInto(cp)
	return cp
}
