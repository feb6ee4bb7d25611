package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemMergesByName(t *testing.T) {
	c := New()
	c.AddItem(Line{Name: "Tiramisu", Price: "$15", Description: "classic"})
	c.AddItem(Line{Name: "Tiramisu", Price: "$15"})

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "30.00", c.TotalPrice())
	assert.Equal(t, 2, c.TotalCount())
}

func TestAddItemNormalizesQuantity(t *testing.T) {
	c := New()
	// Whatever quantity the caller passes, a fresh line starts at 1.
	c.AddItem(Line{Name: "Espresso", Price: "$4.00", Quantity: 5})
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestUpdateQuantityToZeroRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(Line{Name: "Espresso", Price: "$4.00"})
	c.UpdateQuantity("Espresso", -1)

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalCount())
	assert.Equal(t, "0.00", c.TotalPrice())
}

func TestUpdateQuantityBelowZeroRemovesNotClamps(t *testing.T) {
	c := New()
	c.AddItem(Line{Name: "Espresso", Price: "$4.00"})
	c.UpdateQuantity("Espresso", -3)

	assert.True(t, c.IsEmpty())
}

func TestUpdateQuantityUnknownNameIsNoop(t *testing.T) {
	c := New()
	c.AddItem(Line{Name: "Espresso", Price: "$4.00"})
	c.UpdateQuantity("Latte", 2)

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 1, c.TotalCount())
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	c := New()
	c.AddItem(Line{Name: "Espresso", Price: "$4.00"})
	c.AddItem(Line{Name: "Tiramisu", Price: "$11.00"})

	c.RemoveItem("Espresso")
	after := c.Lines()
	c.RemoveItem("Espresso")

	assert.Equal(t, after, c.Lines())
	assert.Equal(t, "11.00", c.TotalPrice())
}

func TestTotalsTrackAnyOperationSequence(t *testing.T) {
	c := New()
	c.AddItem(Line{Name: "A", Price: "$1.50"})
	c.AddItem(Line{Name: "B", Price: "$2.25"})
	c.AddItem(Line{Name: "A", Price: "$1.50"})
	c.UpdateQuantity("B", 3)
	c.UpdateQuantity("A", -1)
	c.RemoveItem("missing")

	// A x1, B x4
	want := 0
	for _, l := range c.Lines() {
		assert.Greater(t, l.Quantity, 0)
		want += l.Quantity
	}
	assert.Equal(t, want, c.TotalCount())
	assert.Equal(t, 5, c.TotalCount())
	assert.Equal(t, "10.50", c.TotalPrice())
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := New()
	c.AddItem(Line{Name: "Tiramisu", Price: "$11.00", Description: "espresso-soaked", Image: "/uploads/tiramisu.jpg"})
	c.AddItem(Line{Name: "Tiramisu", Price: "$11.00"})
	c.AddItem(Line{Name: "Espresso", Price: "$4.00"})

	data, err := c.Snapshot()
	require.NoError(t, err)

	restored := NewPending()
	assert.False(t, restored.IsHydrated())
	restored.Hydrate(data)

	assert.True(t, restored.IsHydrated())
	assert.Equal(t, c.Lines(), restored.Lines())
	assert.Equal(t, c.TotalPrice(), restored.TotalPrice())
}

func TestHydrateDiscardsCorruptPayload(t *testing.T) {
	c := NewPending()
	c.Hydrate([]byte(`{"not":"an array"}`))

	assert.True(t, c.IsHydrated())
	assert.True(t, c.IsEmpty())
}

func TestHydrateDropsNonPositiveQuantities(t *testing.T) {
	c := NewPending()
	c.Hydrate([]byte(`[{"name":"A","price":"$1.00","quantity":2},{"name":"B","price":"$1.00","quantity":0}]`))

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, "A", c.Lines()[0].Name)
}

func TestHydrateEmptyPayload(t *testing.T) {
	c := NewPending()
	c.Hydrate(nil)

	assert.True(t, c.IsHydrated())
	assert.True(t, c.IsEmpty())
}

func TestParsePrice(t *testing.T) {
	cases := map[string]string{
		"$15":       "15.00",
		"$15.50":    "15.50",
		" $1,200.5": "1200.50",
		"8":         "8.00",
		"free":      "0.00",
		"":          "0.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, ParsePrice(in).StringFixed(2), "label %q", in)
	}
}
