/*
Package microdom provides a lightweight in-memory XML document model.

The package implements a small DOM-style node tree: a Document holds an
ordered hierarchy of elements, text, CDATA sections, comments, processing
instructions and entity references. Nodes track their parent, children are
kept in insertion order, and element attributes are addressed by qualified
(namespace-aware) names. The model is deliberately simpler than the W3C DOM:
there are no live node lists, no prefix bookkeeping, and no thread safety —
a tree is meant to be built, inspected and serialized by a single goroutine.

Building a document is done with constructors and the builder-style Append
helpers:

	doc := microdom.NewDocument()
	root := doc.AppendElement("catalog")
	item := root.AppendElement("item")
	item.SetAttribute("id", "b-101")
	item.AppendElement("title").AppendText("The Go Programming Language")

	out, err := microdom.String(doc)
	if err != nil {
		// handle error
	}

Parsing wraps the standard library's XML tokenizer, so entity expansion and
well-formedness checking behave exactly like encoding/xml:

	doc, err := microdom.ParseString(`<catalog><item id="b-101"/></catalog>`)
	if err != nil {
		// handle error
	}
	item := doc.DocumentElement().FirstChildElement("item")

Mutations fire events. A listener registered on any node is notified when a
node is inserted under it or removed from under it, directly or through any
descendant; notifications bubble from the mutated node up to the root.

Invalid tree operations, such as appending to a leaf node, inserting a node
that already has a parent, or giving a document a second document element,
are programmer errors and panic. Errors that depend on input data, such as
XML syntax errors or failed file I/O, are returned as ordinary error values.
*/
package microdom
