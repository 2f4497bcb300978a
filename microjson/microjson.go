// Package microjson converts between microdom trees and JSON.
//
// The mapping is the conventional element-centric one: an element becomes a
// JSON object, attributes become "@"-prefixed keys, repeated child elements
// collapse into arrays, and an element whose only content is character data
// becomes a plain string. "#text" carries character data for elements that
// also have attributes or element children. The conversion is lossy by
// nature — comments, processing instructions and child order across
// differently named siblings do not survive — so it is meant for data
// exchange, not round-tripping documents.
package microjson

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/go-xmlkit/microdom"
)

// ToJSON renders n as compact JSON. Documents are rendered through their
// document element; an empty document renders as null.
func ToJSON(n microdom.Node) ([]byte, error) {
	v, err := jsonValue(n)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(v)
	return b, errors.Wrap(err, "microjson: marshal")
}

// ToJSONIndent is ToJSON with json.MarshalIndent-style indentation.
func ToJSONIndent(n microdom.Node, prefix, indent string) ([]byte, error) {
	v, err := jsonValue(n)
	if err != nil {
		return nil, err
	}
	b, err := json.MarshalIndent(v, prefix, indent)
	return b, errors.Wrap(err, "microjson: marshal")
}

func jsonValue(n microdom.Node) (any, error) {
	switch t := n.(type) {
	case *microdom.Document:
		root := t.DocumentElement()
		if root == nil {
			return nil, nil
		}
		return map[string]any{root.Name(): elementValue(root)}, nil
	case *microdom.Element:
		return map[string]any{t.Name(): elementValue(t)}, nil
	case *microdom.Text:
		return t.Data(), nil
	case *microdom.CDATA:
		return t.Data(), nil
	case *microdom.Comment:
		return nil, errors.New("microjson: comments have no JSON form")
	default:
		return nil, errors.Errorf("microjson: cannot convert %s node", n.Type())
	}
}

// elementValue maps one element to a string or an object, per the package
// mapping rules.
func elementValue(e *microdom.Element) any {
	children := e.ChildElements()
	text := strings.TrimSpace(e.TextContent())

	if e.AttrCount() == 0 && len(children) == 0 {
		return text
	}

	obj := make(map[string]any)
	for _, a := range e.Attributes() {
		obj["@"+a.Name.Local] = a.Value
	}
	if len(children) == 0 && text != "" {
		obj["#text"] = text
	}
	for _, c := range children {
		name := c.Name()
		v := elementValue(c)
		switch existing := obj[name].(type) {
		case nil:
			obj[name] = v
		case []any:
			obj[name] = append(existing, v)
		default:
			obj[name] = []any{existing, v}
		}
	}
	return obj
}

// FromJSON builds a document from JSON. Object keys become child elements,
// "@"-prefixed keys become attributes, "#text" becomes character data and
// arrays become repeated elements. A top-level object with a single key
// supplies the document element; any other top-level value is wrapped in an
// element named rootName.
func FromJSON(data []byte, rootName string) (*microdom.Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("microjson: invalid JSON input")
	}
	v := gjson.ParseBytes(data)

	doc := microdom.NewDocument()
	if key, val, ok := singleMember(v); ok && !strings.HasPrefix(key, "@") && key != "#text" {
		buildElement(doc.AppendElement(key), val)
		return doc, nil
	}
	buildElement(doc.AppendElement(rootName), v)
	return doc, nil
}

func singleMember(v gjson.Result) (string, gjson.Result, bool) {
	if !v.IsObject() {
		return "", gjson.Result{}, false
	}
	var (
		key string
		val gjson.Result
		n   int
	)
	v.ForEach(func(k, item gjson.Result) bool {
		key = k.String()
		val = item
		n++
		return n <= 1
	})
	return key, val, n == 1 && key != ""
}

func buildElement(e *microdom.Element, v gjson.Result) {
	switch {
	case v.IsObject():
		v.ForEach(func(k, val gjson.Result) bool {
			key := k.String()
			switch {
			case key == "":
				// JSON allows empty keys; the document model does not.
			case strings.HasPrefix(key, "@") && len(key) > 1:
				e.SetAttribute(key[1:], val.String())
			case key == "#text":
				e.AppendText(val.String())
			case val.IsArray():
				val.ForEach(func(_, item gjson.Result) bool {
					buildElement(e.AppendElement(key), item)
					return true
				})
			default:
				buildElement(e.AppendElement(key), val)
			}
			return true
		})
	case v.IsArray():
		v.ForEach(func(_, item gjson.Result) bool {
			buildElement(e.AppendElement("item"), item)
			return true
		})
	case v.Type == gjson.Null:
	default:
		e.AppendText(v.String())
	}
}
