// Package cart accumulates a pending purchase. A cart never owns
// books: it stores integer indices into the shop inventory and resolves
// them at read time, so removing a cart line leaves the stock untouched
// and editing the stock invalidates stale cart references loudly
// instead of silently pricing the wrong book.
package cart

import (
	"errors"

	"github.com/leseparadies/ladenctl/internal/inventory"
)

var (
	// ErrNotForSale rejects forbidden books. Checked before the age
	// gate: a forbidden+restricted book is blocked here and never
	// reaches the confirmation step.
	ErrNotForSale = errors.New("book is not for sale")

	// ErrAgeNotConfirmed cancels a single add when the age gate for a
	// restricted book is declined. No other side effect.
	ErrAgeNotConfirmed = errors.New("age confirmation declined")

	// ErrStaleSelection marks an index that no longer resolves to a
	// stock entry.
	ErrStaleSelection = errors.New("selection no longer exists in the inventory")
)

// Confirm is the synchronous age-confirmation step for restricted
// books. It must complete (yes/no) before the add proceeds.
type Confirm func(inventory.Book) bool

// Cart is an ordered sequence of non-owning references into one shop's
// inventory, alive for a single storefront session.
type Cart struct {
	inv     *inventory.Inventory
	indices []int
}

// New creates an empty cart over the given inventory.
func New(inv *inventory.Inventory) *Cart {
	return &Cart{inv: inv}
}

// Add puts the book at the given inventory index into the cart.
// Forbidden books are refused outright; restricted books require the
// confirm callback to approve. The same index may be added repeatedly —
// each add is one copy in the purchase.
func (c *Cart) Add(idx int, confirm Confirm) error {
	if idx < 0 || idx >= c.inv.Len() {
		return ErrStaleSelection
	}
	b := c.inv.Books[idx]
	if b.Forbidden {
		return ErrNotForSale
	}
	if b.Restricted {
		if confirm == nil || !confirm(b) {
			return ErrAgeNotConfirmed
		}
	}
	c.indices = append(c.indices, idx)
	return nil
}

// Remove deletes the cart line at pos. The stock is not affected.
func (c *Cart) Remove(pos int) error {
	if pos < 0 || pos >= len(c.indices) {
		return ErrStaleSelection
	}
	c.indices = append(c.indices[:pos], c.indices[pos+1:]...)
	return nil
}

// Len returns the number of cart lines.
func (c *Cart) Len() int {
	return len(c.indices)
}

// Books resolves the cart lines against the current stock, in cart
// order. Lines whose index no longer resolves are skipped.
func (c *Cart) Books() []inventory.Book {
	out := make([]inventory.Book, 0, len(c.indices))
	for _, idx := range c.indices {
		if idx >= 0 && idx < c.inv.Len() {
			out = append(out, c.inv.Books[idx])
		}
	}
	return out
}

// Total prices the cart. Forbidden books cannot enter a cart through
// Add, but the pricing fold excludes them regardless.
func (c *Cart) Total() float64 {
	return inventory.Total(c.Books())
}

// Clear empties the cart, as checkout does after showing the total.
func (c *Cart) Clear() {
	c.indices = c.indices[:0]
}
