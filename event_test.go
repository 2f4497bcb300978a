package microdom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-xmlkit/microdom"
)

// recorder collects the events it receives.
type recorder struct {
	events []microdom.Event
}

func (r *recorder) HandleEvent(ev microdom.Event) { r.events = append(r.events, ev) }

func TestEventDelivery(t *testing.T) {
	t.Run("insert notifies the parent", func(t *testing.T) {
		root := microdom.NewElement("root")
		rec := &recorder{}
		require.True(t, root.AddEventListener(microdom.NodeInserted, rec))

		child := microdom.NewElement("child")
		root.AppendChild(child)

		require.Len(t, rec.events, 1)
		require.Equal(t, microdom.NodeInserted, rec.events[0].Type)
		require.Same(t, child, rec.events[0].Source)
		require.Same(t, root, rec.events[0].Target)
	})

	t.Run("remove notifies the parent", func(t *testing.T) {
		root := microdom.NewElement("root")
		child := microdom.NewElement("child")
		root.AppendChild(child)

		rec := &recorder{}
		root.AddEventListener(microdom.NodeRemoved, rec)
		root.RemoveChild(child)

		require.Len(t, rec.events, 1)
		require.Equal(t, microdom.NodeRemoved, rec.events[0].Type)
		require.Same(t, child, rec.events[0].Source)
	})

	t.Run("events bubble to all ancestors", func(t *testing.T) {
		doc := microdom.NewDocument()
		root := doc.AppendElement("root")
		inner := root.AppendElement("inner")

		docRec := &recorder{}
		rootRec := &recorder{}
		doc.AddEventListener(microdom.NodeInserted, docRec)
		root.AddEventListener(microdom.NodeInserted, rootRec)

		leaf := microdom.NewElement("leaf")
		inner.AppendChild(leaf)

		require.Len(t, rootRec.events, 1)
		require.Len(t, docRec.events, 1)
		// The event reports the mutated location, not the listener's node.
		require.Same(t, inner, docRec.events[0].Target)
		require.Same(t, leaf, docRec.events[0].Source)
	})

	t.Run("listeners are type specific", func(t *testing.T) {
		root := microdom.NewElement("root")
		rec := &recorder{}
		root.AddEventListener(microdom.NodeRemoved, rec)

		root.AppendChild(microdom.NewElement("child"))
		require.Empty(t, rec.events)
	})

	t.Run("builder helpers fire events too", func(t *testing.T) {
		root := microdom.NewElement("root")
		rec := &recorder{}
		root.AddEventListener(microdom.NodeInserted, rec)

		root.AppendElement("a")
		root.AppendText("txt")
		require.Len(t, rec.events, 2)

		// Merging into an existing text node is not an insertion.
		root.AppendText("more")
		require.Len(t, rec.events, 2)
	})
}

func TestEventListenerRegistry(t *testing.T) {
	root := microdom.NewElement("root")
	rec := &recorder{}

	require.True(t, root.AddEventListener(microdom.NodeInserted, rec))
	require.False(t, root.AddEventListener(microdom.NodeInserted, rec), "duplicate registration")
	require.False(t, root.AddEventListener(microdom.NodeInserted, nil))

	require.True(t, root.RemoveEventListener(microdom.NodeInserted, rec))
	require.False(t, root.RemoveEventListener(microdom.NodeInserted, rec))

	root.AppendChild(microdom.NewElement("child"))
	require.Empty(t, rec.events)
}

func TestEventsDoNotSurviveClone(t *testing.T) {
	root := microdom.NewElement("root")
	rec := &recorder{}
	root.AddEventListener(microdom.NodeInserted, rec)

	clone := root.Clone().(*microdom.Element)
	clone.AppendChild(microdom.NewElement("child"))

	require.Empty(t, rec.events)
}

func TestReplaceChildFiresBothEvents(t *testing.T) {
	root := microdom.NewElement("root")
	old := microdom.NewElement("old")
	root.AppendChild(old)

	ins := &recorder{}
	rem := &recorder{}
	root.AddEventListener(microdom.NodeInserted, ins)
	root.AddEventListener(microdom.NodeRemoved, rem)

	repl := microdom.NewElement("repl")
	root.ReplaceChild(old, repl)

	require.Len(t, rem.events, 1)
	require.Same(t, old, rem.events[0].Source)
	require.Len(t, ins.events, 1)
	require.Same(t, repl, ins.events[0].Source)
}
