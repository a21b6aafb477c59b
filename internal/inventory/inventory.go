package inventory

// Inventory is the ordered book stock of one shop. Insertion order is
// preserved; every query returns an order-preserving subset.
type Inventory struct {
	Name  string
	Books []Book
}

// New creates an empty inventory. The name is the shop's display label
// and carries no behavior.
func New(name string) *Inventory {
	return &Inventory{Name: name}
}

// Add appends a book to the stock. There is no uniqueness constraint:
// adding the same title twice records two copies.
func (inv *Inventory) Add(b Book) {
	inv.Books = append(inv.Books, b)
}

// Len returns the number of stock entries.
func (inv *Inventory) Len() int {
	return len(inv.Books)
}
