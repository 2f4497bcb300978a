package microdom

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// ReadOption configures parsing.
type ReadOption func(*readOptions) error

type readOptions struct {
	dropComments   bool
	trimWhitespace bool
}

// DropComments returns a ReadOption that discards comments while parsing.
func DropComments() ReadOption {
	return func(o *readOptions) error {
		o.dropComments = true
		return nil
	}
}

// TrimWhitespace returns a ReadOption that discards character data
// consisting only of XML whitespace, which is what sits between elements in
// indented documents.
func TrimWhitespace() ReadOption {
	return func(o *readOptions) error {
		o.trimWhitespace = true
		return nil
	}
}

// Parse reads an XML document from r into a microdom tree.
//
// Parsing wraps the encoding/xml tokenizer: entities are expanded, CDATA
// sections arrive as plain character data, and well-formedness violations
// surface as a *ParseError. Namespace prefixes are resolved to URIs and not
// retained; xmlns declarations are dropped because the namespace travels on
// the node itself.
func Parse(r io.Reader, opts ...ReadOption) (*Document, error) {
	var o readOptions
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	dec := xml.NewDecoder(r)
	doc := NewDocument()
	var cur Node = doc
	first := true

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapSyntaxError(err, dec)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			// The tokenizer does not enforce a single root element, the
			// document model does.
			if cur == doc && doc.DocumentElement() != nil {
				return nil, &ParseError{Offset: dec.InputOffset(), Message: "document has more than one root element"}
			}
			el := NewElementNS(t.Name.Space, t.Name.Local)
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				el.SetAttributeNS(a.Name.Space, a.Name.Local, a.Value)
			}
			cur.AppendChild(el)
			cur = el
		case xml.EndElement:
			cur = cur.Parent()
		case xml.CharData:
			s := string(t)
			if o.trimWhitespace && isXMLWhitespace(s) {
				continue
			}
			if cur == doc && isXMLWhitespace(s) {
				// Inter-node whitespace at document level carries no
				// information and would violate nothing, but keeping it
				// only complicates re-serialization.
				continue
			}
			appendCharData(cur, s)
		case xml.Comment:
			if !o.dropComments {
				cur.AppendChild(NewComment(string(t)))
			}
		case xml.ProcInst:
			if first && t.Target == "xml" {
				applyDeclaration(doc, string(t.Inst))
				first = false
				continue
			}
			cur.AppendChild(NewProcInst(t.Target, string(t.Inst)))
		case xml.Directive:
			dt := parseDocTypeDirective(string(t))
			if dt != nil && cur == doc && doc.DocType() == nil && doc.DocumentElement() == nil {
				doc.AppendChild(dt)
			}
		}
		first = false
	}

	return doc, nil
}

// ParseBytes parses an XML document held in memory.
func ParseBytes(data []byte, opts ...ReadOption) (*Document, error) {
	return Parse(bytes.NewReader(data), opts...)
}

// ParseString parses an XML document held in a string.
func ParseString(s string, opts ...ReadOption) (*Document, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ParseFile parses the XML document stored at path. Files ending in ".gz"
// are decompressed transparently.
func ParseFile(path string, opts ...ReadOption) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "microdom: open %s", path)
	}
	defer f.Close()

	var r io.Reader = f
	if filepath.Ext(path) == ".gz" {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "microdom: gzip %s", path)
		}
		defer gz.Close()
		r = gz
	}

	doc, err := Parse(r, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "microdom: parse %s", path)
	}
	return doc, nil
}

// appendCharData adds character data under cur, merging with a trailing
// text sibling because the tokenizer may split a single run.
func appendCharData(cur Node, s string) {
	if t, ok := cur.LastChild().(*Text); ok {
		t.AppendData(s)
		return
	}
	cur.AppendChild(NewText(s))
}

func wrapSyntaxError(err error, dec *xml.Decoder) error {
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		return &ParseError{Line: se.Line, Offset: dec.InputOffset(), Message: se.Msg}
	}
	return err
}

// applyDeclaration copies version/encoding/standalone out of the XML
// declaration's pseudo-attributes.
func applyDeclaration(doc *Document, inst string) {
	if v := declarationAttr(inst, "version"); v != "" {
		doc.Version = v
	}
	if v := declarationAttr(inst, "encoding"); v != "" {
		doc.Encoding = v
	}
	doc.Standalone = declarationAttr(inst, "standalone") == "yes"
}

func declarationAttr(inst, name string) string {
	rest := inst
	for {
		i := strings.Index(rest, name)
		if i < 0 {
			return ""
		}
		rest = rest[i+len(name):]
		trimmed := strings.TrimLeft(rest, " \t\r\n")
		if !strings.HasPrefix(trimmed, "=") {
			continue
		}
		trimmed = strings.TrimLeft(trimmed[1:], " \t\r\n")
		if len(trimmed) == 0 {
			return ""
		}
		quote := trimmed[0]
		if quote != '"' && quote != '\'' {
			return ""
		}
		end := strings.IndexByte(trimmed[1:], quote)
		if end < 0 {
			return ""
		}
		return trimmed[1 : 1+end]
	}
}

// parseDocTypeDirective extracts name and PUBLIC/SYSTEM identifiers from a
// DOCTYPE directive. Internal subsets are ignored. Returns nil for other
// directives.
func parseDocTypeDirective(s string) *DocType {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "DOCTYPE") {
		return nil
	}
	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "DOCTYPE"))
	name, rest := nextDocTypeToken(rest)
	if name == "" {
		return nil
	}
	keyword, rest := nextDocTypeToken(rest)
	switch keyword {
	case "PUBLIC":
		publicID, rest := nextDocTypeLiteral(rest)
		systemID, _ := nextDocTypeLiteral(rest)
		return NewDocType(name, publicID, systemID)
	case "SYSTEM":
		systemID, _ := nextDocTypeLiteral(rest)
		return NewDocType(name, "", systemID)
	default:
		return NewDocType(name, "", "")
	}
}

func nextDocTypeToken(s string) (string, string) {
	s = strings.TrimLeft(s, " \t\r\n")
	end := strings.IndexAny(s, " \t\r\n[")
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}

func nextDocTypeLiteral(s string) (string, string) {
	s = strings.TrimLeft(s, " \t\r\n")
	if len(s) == 0 || (s[0] != '"' && s[0] != '\'') {
		return "", s
	}
	end := strings.IndexByte(s[1:], s[0])
	if end < 0 {
		return "", ""
	}
	return s[1 : 1+end], s[2+end:]
}
