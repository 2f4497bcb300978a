package microdom

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

const defaultIndent = 2

// serializer writes a microdom tree as XML.
type serializer struct {
	w        *bufio.Writer
	indent   string
	depth    int
	omitDecl bool

	// Attribute namespaces are written with generated prefixes. The prefix
	// for a URI is stable across the document; the declaration is repeated
	// on every element that uses it so scoping stays trivially correct.
	attrPrefix map[string]string
}

func newSerializer(w *bufio.Writer, o *writeOptions) *serializer {
	spaces := defaultIndent
	if o.indent != nil {
		spaces = *o.indent
	}
	var indentStr string
	if spaces > 0 {
		indentStr = strings.Repeat(" ", spaces)
	}
	return &serializer{w: w, indent: indentStr, omitDecl: o.omitDecl}
}

func (s *serializer) pretty() bool { return s.indent != "" }

func (s *serializer) write(str string) error {
	_, err := s.w.WriteString(str)
	return err
}

func (s *serializer) writeIndent() error {
	for i := 0; i < s.depth; i++ {
		if err := s.write(s.indent); err != nil {
			return err
		}
	}
	return nil
}

func (s *serializer) writeNode(n Node, inheritedNS string) error {
	switch t := n.(type) {
	case *Document:
		return s.writeDocument(t)
	case *Element:
		return s.writeElement(t, inheritedNS)
	case *Text:
		return s.writeEscaped(t.data, false)
	case *CDATA:
		return s.writeCDATA(t.data)
	case *Comment:
		return s.write("<!--" + t.data + "-->")
	case *ProcInst:
		if t.data == "" {
			return s.write("<?" + t.target + "?>")
		}
		return s.write("<?" + t.target + " " + t.data + "?>")
	case *EntityRef:
		return s.write("&" + t.name + ";")
	case *DocType:
		return s.writeDocType(t)
	case *Container:
		for _, c := range flatChildren(t) {
			if err := s.writeNode(c, inheritedNS); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("microdom: unsupported node type for serialization: %T", n)
	}
}

func (s *serializer) writeDocument(d *Document) error {
	if !s.omitDecl {
		if err := s.writeDeclaration(d); err != nil {
			return err
		}
	}
	children := flatChildren(d)
	for i, c := range children {
		if err := s.writeNode(c, ""); err != nil {
			return err
		}
		if s.pretty() && i < len(children)-1 {
			if err := s.write("\n"); err != nil {
				return err
			}
		}
	}
	if s.pretty() && len(children) > 0 {
		return s.write("\n")
	}
	return nil
}

func (s *serializer) writeDeclaration(d *Document) error {
	version := d.Version
	if version == "" {
		version = "1.0"
	}
	decl := `<?xml version="` + version + `"`
	if d.Encoding != "" {
		decl += ` encoding="` + d.Encoding + `"`
	}
	if d.Standalone {
		decl += ` standalone="yes"`
	}
	decl += "?>"
	if s.pretty() {
		decl += "\n"
	}
	return s.write(decl)
}

func (s *serializer) writeDocType(d *DocType) error {
	switch {
	case d.publicID != "":
		return s.write(`<!DOCTYPE ` + d.name + ` PUBLIC "` + d.publicID + `" "` + d.systemID + `">`)
	case d.systemID != "":
		return s.write(`<!DOCTYPE ` + d.name + ` SYSTEM "` + d.systemID + `">`)
	default:
		return s.write(`<!DOCTYPE ` + d.name + `>`)
	}
}

func (s *serializer) writeElement(e *Element, inheritedNS string) error {
	if err := s.write("<" + e.name.Local); err != nil {
		return err
	}
	if e.name.Space != inheritedNS {
		if err := s.write(` xmlns="`); err != nil {
			return err
		}
		if err := s.writeEscaped(e.name.Space, true); err != nil {
			return err
		}
		if err := s.write(`"`); err != nil {
			return err
		}
	}

	declared := map[string]bool{}
	for _, a := range e.attrs.attrs {
		name := a.Name.Local
		if a.Name.Space != "" {
			prefix := s.prefixFor(a.Name.Space)
			if !declared[prefix] {
				declared[prefix] = true
				if err := s.write(` xmlns:` + prefix + `="`); err != nil {
					return err
				}
				if err := s.writeEscaped(a.Name.Space, true); err != nil {
					return err
				}
				if err := s.write(`"`); err != nil {
					return err
				}
			}
			name = prefix + ":" + name
		}
		if err := s.write(" " + name + `="`); err != nil {
			return err
		}
		if err := s.writeEscaped(a.Value, true); err != nil {
			return err
		}
		if err := s.write(`"`); err != nil {
			return err
		}
	}

	children := flatChildren(e)
	if len(children) == 0 {
		return s.write("/>")
	}
	if err := s.write(">"); err != nil {
		return err
	}

	// Elements with character data anywhere among their direct children are
	// written inline: injecting indentation would change their content.
	if s.pretty() && !hasInlineContent(children) {
		s.depth++
		for _, c := range children {
			if err := s.write("\n"); err != nil {
				return err
			}
			if err := s.writeIndent(); err != nil {
				return err
			}
			if err := s.writeNode(c, e.name.Space); err != nil {
				return err
			}
		}
		s.depth--
		if err := s.write("\n"); err != nil {
			return err
		}
		if err := s.writeIndent(); err != nil {
			return err
		}
	} else {
		for _, c := range children {
			if err := s.writeNode(c, e.name.Space); err != nil {
				return err
			}
		}
	}

	return s.write("</" + e.name.Local + ">")
}

func (s *serializer) prefixFor(space string) string {
	if p, ok := s.attrPrefix[space]; ok {
		return p
	}
	if s.attrPrefix == nil {
		s.attrPrefix = map[string]string{}
	}
	p := "ns" + strconv.Itoa(len(s.attrPrefix))
	s.attrPrefix[space] = p
	return p
}

func (s *serializer) writeCDATA(data string) error {
	// A literal "]]>" would terminate the section early; split it across
	// two sections.
	escaped := strings.ReplaceAll(data, "]]>", "]]]]><![CDATA[>")
	return s.write("<![CDATA[" + escaped + "]]>")
}

// writeEscaped writes character data with XML entity escaping. In attribute
// context quotes and literal whitespace controls are escaped too.
func (s *serializer) writeEscaped(str string, attr bool) error {
	last := 0
	for i := 0; i < len(str); i++ {
		var esc string
		switch str[i] {
		case '&':
			esc = "&amp;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		case '\r':
			esc = "&#xD;"
		case '"':
			if !attr {
				continue
			}
			esc = "&quot;"
		case '\n':
			if !attr {
				continue
			}
			esc = "&#xA;"
		case '\t':
			if !attr {
				continue
			}
			esc = "&#x9;"
		default:
			continue
		}
		if err := s.write(str[last:i]); err != nil {
			return err
		}
		if err := s.write(esc); err != nil {
			return err
		}
		last = i + 1
	}
	return s.write(str[last:])
}

// flatChildren returns the children of n with containers replaced by their
// own children, recursively.
func flatChildren(n Node) []Node {
	var out []Node
	for _, c := range n.Children() {
		if c.Type() == ContainerNode {
			out = append(out, flatChildren(c)...)
			continue
		}
		out = append(out, c)
	}
	return out
}

func hasInlineContent(children []Node) bool {
	for _, c := range children {
		switch c.Type() {
		case TextNode, CDATANode, EntityReferenceNode:
			return true
		}
	}
	return false
}
