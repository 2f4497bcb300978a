package microdom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-xmlkit/microdom"
)

func TestHash(t *testing.T) {
	build := func() *microdom.Element {
		root := microdom.NewElement("root")
		root.SetAttribute("id", "r1")
		root.AppendElement("child").AppendText("data")
		return root
	}

	t.Run("equal content hashes equal", func(t *testing.T) {
		require.Equal(t, microdom.Hash(build()), microdom.Hash(build()))
	})

	t.Run("clone hashes like the original", func(t *testing.T) {
		n := build()
		require.Equal(t, microdom.Hash(n), microdom.Hash(n.Clone()))
	})

	t.Run("parent does not influence the hash", func(t *testing.T) {
		attached := build()
		microdom.NewElement("wrapper").AppendChild(attached)
		require.Equal(t, microdom.Hash(build()), microdom.Hash(attached))
	})

	t.Run("content changes change the hash", func(t *testing.T) {
		base := microdom.Hash(build())

		changed := build()
		changed.SetAttribute("id", "r2")
		require.NotEqual(t, base, microdom.Hash(changed))

		extended := build()
		extended.AppendElement("extra")
		require.NotEqual(t, base, microdom.Hash(extended))
	})

	t.Run("documents hash without a declaration", func(t *testing.T) {
		doc := microdom.NewDocument()
		doc.AppendElement("r")

		other := microdom.NewDocument()
		other.Encoding = "utf-8"
		other.AppendElement("r")

		// The canonical form covers the tree, not the declaration fields.
		require.Equal(t, microdom.Hash(doc), microdom.Hash(other))
	})
}
