package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(n int) []Item {
	items := make([]Item, n)
	names := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"}
	for i := range items {
		name := names[i%len(names)]
		items[i] = Item{
			ID:    name,
			Src:   "/photos/" + name + ".jpg",
			Alt:   name,
			Title: name,
		}
	}
	return items
}

func TestSelectionSingleMode(t *testing.T) {
	s := NewSelection(SelectSingle)
	s.SetItems(testItems(3))

	s.Toggle("alpha")
	require.True(t, s.IsSelected("alpha"))
	require.Equal(t, 1, s.Len())

	// Selecting a second item replaces the first, it does not stack and it
	// does not deselect.
	s.Toggle("beta")
	assert.False(t, s.IsSelected("alpha"))
	assert.True(t, s.IsSelected("beta"))
	assert.Equal(t, 1, s.Len())

	// Toggling the selected item deselects it.
	s.Toggle("beta")
	assert.Equal(t, 0, s.Len())
}

func TestSelectionSingleCardinality(t *testing.T) {
	s := NewSelection(SelectSingle)
	s.SetItems(testItems(6))

	// Any sequence of toggles keeps the set at size <= 1.
	sequence := []string{"alpha", "beta", "beta", "gamma", "alpha", "alpha", "zeta", "delta"}
	for _, id := range sequence {
		s.Toggle(id)
		assert.LessOrEqual(t, s.Len(), 1, "toggled %q", id)
	}
}

func TestSelectionMultiToggle(t *testing.T) {
	s := NewSelection(SelectMultiple)
	s.SetItems(testItems(3))

	s.Toggle("alpha")
	s.Toggle("gamma")
	require.Equal(t, 2, s.Len())

	// Toggling twice returns to the pre-toggle state.
	s.Toggle("beta")
	s.Toggle("beta")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.IsSelected("alpha"))
	assert.True(t, s.IsSelected("gamma"))
	assert.False(t, s.IsSelected("beta"))
}

func TestSelectionMaterializeSourceOrder(t *testing.T) {
	items := testItems(3)
	s := NewSelection(SelectMultiple)
	s.SetItems(items)

	// Select in reverse click order; materialized output follows source order.
	s.Toggle("gamma")
	s.Toggle("alpha")

	selected := s.Selected()
	require.Len(t, selected, 2)
	assert.Equal(t, "alpha", selected[0].ID)
	assert.Equal(t, "gamma", selected[1].ID)
}

func TestSelectionUnknownIDNoop(t *testing.T) {
	var calls int
	s := NewSelection(SelectMultiple)
	s.SetItems(testItems(2))
	s.SetListener(func([]Item) { calls++ })

	s.Toggle("nonexistent")
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, calls, "listener must not fire for unknown ids")
}

func TestSelectionListenerPerMutation(t *testing.T) {
	var history [][]Item
	s := NewSelection(SelectMultiple)
	s.SetItems(testItems(3))
	s.SetListener(func(items []Item) { history = append(history, items) })

	s.Toggle("alpha")
	s.Toggle("beta")
	s.Toggle("alpha")

	require.Len(t, history, 3, "exactly one notification per mutating call")
	assert.Len(t, history[0], 1)
	assert.Len(t, history[1], 2)
	require.Len(t, history[2], 1)
	assert.Equal(t, "beta", history[2][0].ID)
}

func TestSelectionResetOnReplace(t *testing.T) {
	var last []Item
	notified := 0
	s := NewSelection(SelectMultiple)
	s.SetItems(testItems(3))
	s.SetListener(func(items []Item) {
		last = items
		notified++
	})

	s.Toggle("alpha")
	require.Equal(t, 1, notified)

	// Wholesale replacement clears the selection and reports it once.
	s.SetItems(testItems(2))
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 2, notified)
	assert.Empty(t, last)

	// Replacing while nothing is selected stays quiet.
	s.SetItems(testItems(1))
	assert.Equal(t, 2, notified)
}

func TestSelectionAppendPreserves(t *testing.T) {
	s := NewSelection(SelectMultiple)
	s.SetItems(testItems(2))
	s.Toggle("alpha")

	s.Append([]Item{{ID: "omega", Src: "/photos/omega.jpg", Alt: "omega"}})
	assert.True(t, s.IsSelected("alpha"))

	// Appended items are toggleable.
	s.Toggle("omega")
	selected := s.Selected()
	require.Len(t, selected, 2)
	assert.Equal(t, "omega", selected[1].ID)
}

func TestSelectionClear(t *testing.T) {
	notified := 0
	s := NewSelection(SelectMultiple)
	s.SetItems(testItems(3))
	s.SetListener(func([]Item) { notified++ })

	s.Clear()
	assert.Equal(t, 0, notified, "clearing an empty selection is silent")

	s.Toggle("alpha")
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 2, notified)
}
