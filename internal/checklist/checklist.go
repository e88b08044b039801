package checklist

import (
	"errors"
	"fmt"
)

const (
	// TotalItems is the fixed logical length of the checklist.
	TotalItems = 1000

	// UnitPrice is the revenue credited per completed item.
	UnitPrice = 37

	// CelebrationStep is the completed-count interval that triggers a
	// celebration when reached by a check.
	CelebrationStep = 100
)

// ErrOutOfRange is returned when a 1-based item number falls outside
// 1..TotalItems.
var ErrOutOfRange = errors.New("item out of range")

// Checklist is the ordered sequence of completion flags. Index i represents
// item i+1. Entries beyond the stored length are treated as unchecked.
type Checklist struct {
	items []bool
}

// New builds a checklist from a stored sequence. Shorter sequences are padded
// with false and longer ones are truncated to TotalItems.
func New(stored []bool) *Checklist {
	items := make([]bool, TotalItems)
	copy(items, stored)
	return &Checklist{items: items}
}

// Len always returns TotalItems.
func (c *Checklist) Len() int {
	return len(c.items)
}

// Checked reports whether the entry at index is set. Out-of-range indices
// read as false.
func (c *Checklist) Checked(index int) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}
	return c.items[index]
}

// Items returns a copy of the full sequence.
func (c *Checklist) Items() []bool {
	out := make([]bool, len(c.items))
	copy(out, c.items)
	return out
}

// Completed counts the checked entries.
func (c *Checklist) Completed() int {
	return countTrue(c.items)
}

// flip inverts one entry and reports whether it went from unchecked to
// checked. The caller guarantees index is in range.
func (c *Checklist) flip(index int) bool {
	c.items[index] = !c.items[index]
	return c.items[index]
}

func (c *Checklist) fill(v bool) {
	for i := range c.items {
		c.items[i] = v
	}
}

// IndexForItem converts a user-facing 1-based item number to an index.
func IndexForItem(n int) (int, error) {
	if n < 1 || n > TotalItems {
		return 0, fmt.Errorf("%w: %d (want 1-%d)", ErrOutOfRange, n, TotalItems)
	}
	return n - 1, nil
}

func countTrue(items []bool) int {
	n := 0
	for _, v := range items {
		if v {
			n++
		}
	}
	return n
}
