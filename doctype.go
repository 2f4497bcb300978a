package microdom

// DocType is a document type declaration. Only the name and the optional
// PUBLIC/SYSTEM identifiers are modeled; internal subsets are not parsed.
type DocType struct {
	leafNode
	name     string
	publicID string
	systemID string
}

// NewDocType creates a doctype node. It panics if name is empty.
func NewDocType(name, publicID, systemID string) *DocType {
	if name == "" {
		panic("microdom: doctype name must not be empty")
	}
	d := &DocType{name: name, publicID: publicID, systemID: systemID}
	d.init(d)
	return d
}

// Type returns DocumentTypeNode.
func (d *DocType) Type() NodeType { return DocumentTypeNode }

// Name returns the declared root element name.
func (d *DocType) Name() string { return d.name }

// PublicID returns the PUBLIC identifier, or "".
func (d *DocType) PublicID() string { return d.publicID }

// SystemID returns the SYSTEM identifier, or "".
func (d *DocType) SystemID() string { return d.systemID }

// Clone returns a parentless copy.
func (d *DocType) Clone() Node {
	return NewDocType(d.name, d.publicID, d.systemID)
}
