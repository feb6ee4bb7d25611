package cart

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

// Line is one distinct menu item plus its quantity in a shopper's
// in-progress order. Price keeps the display label ("$15.00"); arithmetic
// parses it on demand.
type Line struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Cart owns a shopper's selection. It is a plain mutable struct; callers
// serialize access (the service layer keys one cart per session token).
type Cart struct {
	lines    []Line
	hydrated bool
}

func New() *Cart {
	return &Cart{lines: []Line{}, hydrated: true}
}

// NewPending returns a cart that has not yet attempted to load its snapshot.
// Consumers should not trust counts until Hydrate has run.
func NewPending() *Cart {
	return &Cart{lines: []Line{}}
}

// AddItem merges by name: an existing line gains one unit, otherwise the
// item is appended with quantity 1.
func (c *Cart) AddItem(item Line) {
	for i := range c.lines {
		if c.lines[i].Name == item.Name {
			c.lines[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	c.lines = append(c.lines, item)
}

// UpdateQuantity adds delta to the named line. A result of zero or less
// removes the line entirely. Unknown names are a no-op.
func (c *Cart) UpdateQuantity(name string, delta int) {
	for i := range c.lines {
		if c.lines[i].Name != name {
			continue
		}
		c.lines[i].Quantity += delta
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

func (c *Cart) RemoveItem(name string) {
	for i := range c.lines {
		if c.lines[i].Name == name {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = []Line{}
}

// Lines returns a copy; mutations go through the methods above.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

func (c *Cart) IsHydrated() bool { return c.hydrated }

// TotalCount sums quantities across all lines. Recomputed on every read.
func (c *Cart) TotalCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice sums unit price times quantity, formatted to two decimals.
func (c *Cart) TotalPrice() string {
	return c.Total().StringFixed(2)
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(ParsePrice(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// Snapshot serializes the lines for the snapshot store.
func (c *Cart) Snapshot() ([]byte, error) {
	return json.Marshal(c.lines)
}

// Hydrate restores lines from a stored snapshot. A corrupt or non-array
// payload is discarded with a log line, leaving the cart empty; either way
// the cart counts as hydrated afterwards.
func (c *Cart) Hydrate(data []byte) {
	c.hydrated = true
	if len(data) == 0 {
		return
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		log.Printf("cart: discarding corrupt snapshot: %v", err)
		c.lines = []Line{}
		return
	}
	kept := lines[:0]
	for _, l := range lines {
		if l.Quantity > 0 {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}

// ParsePrice extracts the numeric amount from a display label like "$15.00".
// Unparseable labels count as zero rather than failing the whole total.
func ParsePrice(label string) decimal.Decimal {
	s := strings.TrimSpace(label)
	s = strings.TrimLeft(s, "$€£ ")
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
