package microdom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-xmlkit/microdom"
)

func TestString_Compact(t *testing.T) {
	tests := []struct {
		name  string
		build func() microdom.Node
		want  string
	}{
		{
			name:  "empty element",
			build: func() microdom.Node { return microdom.NewElement("a") },
			want:  `<a/>`,
		},
		{
			name: "text escaping",
			build: func() microdom.Node {
				e := microdom.NewElement("p")
				e.AppendText(`a < b & c > d`)
				return e
			},
			want: `<p>a &lt; b &amp; c &gt; d</p>`,
		},
		{
			name: "attribute escaping",
			build: func() microdom.Node {
				return microdom.NewElement("e").SetAttribute("q", `say "hi"`)
			},
			want: `<e q="say &quot;hi&quot;"/>`,
		},
		{
			name: "attribute newline escaping",
			build: func() microdom.Node {
				return microdom.NewElement("e").SetAttribute("q", "a\nb\tc")
			},
			want: `<e q="a&#xA;b&#x9;c"/>`,
		},
		{
			name: "cdata",
			build: func() microdom.Node {
				e := microdom.NewElement("c")
				e.AppendCDATA("x < y")
				return e
			},
			want: `<c><![CDATA[x < y]]></c>`,
		},
		{
			name: "cdata terminator split",
			build: func() microdom.Node {
				e := microdom.NewElement("c")
				e.AppendCDATA("a]]>b")
				return e
			},
			want: `<c><![CDATA[a]]]]><![CDATA[>b]]></c>`,
		},
		{
			name:  "comment",
			build: func() microdom.Node { return microdom.NewComment("hello") },
			want:  `<!--hello-->`,
		},
		{
			name:  "processing instruction",
			build: func() microdom.Node { return microdom.NewProcInst("target", "data") },
			want:  `<?target data?>`,
		},
		{
			name:  "processing instruction without data",
			build: func() microdom.Node { return microdom.NewProcInst("t", "") },
			want:  `<?t?>`,
		},
		{
			name: "entity reference",
			build: func() microdom.Node {
				e := microdom.NewElement("e")
				e.AppendChild(microdom.NewEntityRef("nbsp"))
				return e
			},
			want: `<e>&nbsp;</e>`,
		},
		{
			name: "container is transparent",
			build: func() microdom.Node {
				root := microdom.NewElement("root")
				root.AppendChild(microdom.NewContainer(
					microdom.NewElement("a"),
					microdom.NewElement("b"),
				))
				return root
			},
			want: `<root><a/><b/></root>`,
		},
		{
			name: "default namespace declarations",
			build: func() microdom.Node {
				root := microdom.NewElementNS("urn:x", "root")
				root.AppendElementNS("urn:x", "same")
				root.AppendElement("plain")
				return root
			},
			want: `<root xmlns="urn:x"><same/><plain xmlns=""/></root>`,
		},
		{
			name: "namespaced attribute gets a prefix",
			build: func() microdom.Node {
				return microdom.NewElement("e").SetAttributeNS("urn:a", "k", "v")
			},
			want: `<e xmlns:ns0="urn:a" ns0:k="v"/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := microdom.String(tt.build(), microdom.Indent(0))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestString_Document(t *testing.T) {
	build := func() *microdom.Document {
		doc := microdom.NewDocument()
		root := doc.AppendElement("catalog")
		item := root.AppendElement("item")
		item.SetAttribute("id", "b-101")
		item.AppendElement("title").AppendText("Go")
		return doc
	}

	t.Run("pretty is the default", func(t *testing.T) {
		got, err := microdom.String(build())
		require.NoError(t, err)
		require.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>
<catalog>
  <item id="b-101">
    <title>Go</title>
  </item>
</catalog>
`, got)
	})

	t.Run("custom indent", func(t *testing.T) {
		got, err := microdom.String(build(), microdom.Indent(4), microdom.OmitDeclaration())
		require.NoError(t, err)
		require.Equal(t, `<catalog>
    <item id="b-101">
        <title>Go</title>
    </item>
</catalog>
`, got)
	})

	t.Run("compact", func(t *testing.T) {
		got, err := microdom.String(build(), microdom.Indent(0))
		require.NoError(t, err)
		require.Equal(t, `<?xml version="1.0" encoding="UTF-8"?><catalog><item id="b-101"><title>Go</title></item></catalog>`, got)
	})

	t.Run("omit declaration", func(t *testing.T) {
		got, err := microdom.String(build(), microdom.Indent(0), microdom.OmitDeclaration())
		require.NoError(t, err)
		require.Equal(t, `<catalog><item id="b-101"><title>Go</title></item></catalog>`, got)
	})

	t.Run("standalone declaration", func(t *testing.T) {
		doc := microdom.NewDocument()
		doc.Standalone = true
		doc.AppendElement("r")
		got, err := microdom.String(doc, microdom.Indent(0))
		require.NoError(t, err)
		require.Equal(t, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><r/>`, got)
	})

	t.Run("doctype", func(t *testing.T) {
		doc := microdom.NewDocument()
		doc.AppendChild(microdom.NewDocType("r", "", "r.dtd"))
		doc.AppendElement("r")
		got, err := microdom.String(doc, microdom.Indent(0), microdom.OmitDeclaration())
		require.NoError(t, err)
		require.Equal(t, `<!DOCTYPE r SYSTEM "r.dtd"><r/>`, got)
	})

	t.Run("invalid indent", func(t *testing.T) {
		_, err := microdom.String(build(), microdom.Indent(-1))
		require.Error(t, err)
		require.Contains(t, err.Error(), "indent spaces cannot be negative")
	})
}

func TestString_MixedContent(t *testing.T) {
	// Elements with character data among their children are written inline
	// so that indentation never leaks into content.
	e := microdom.NewElement("p")
	e.AppendText("see ")
	e.AppendElement("a").AppendText("here")
	e.AppendText(" for details")

	got, err := microdom.String(e, microdom.Indent(2))
	require.NoError(t, err)
	require.Equal(t, `<p>see <a>here</a> for details</p>`, got)
}

func TestSerializationRoundTrip(t *testing.T) {
	doc := microdom.NewDocument()
	root := doc.AppendElement("data")
	root.SetAttribute("count", "2")
	root.AppendComment(" generated ")
	first := root.AppendElement("entry")
	first.SetAttribute("name", `quote " here`)
	first.AppendText("a & b")
	root.AppendElement("entry").AppendText("second <entry>")

	out, err := microdom.Bytes(doc, microdom.Indent(0))
	require.NoError(t, err)

	back, err := microdom.ParseBytes(out)
	require.NoError(t, err)
	require.True(t, microdom.Equal(doc, back))

	again, err := microdom.Bytes(back, microdom.Indent(0))
	require.NoError(t, err)
	require.Equal(t, out, again)
}
