package inventory

// Total sums the prices of the sellable books in a selection. Forbidden
// books never contribute; restricted books do — the age gate applies
// when a book enters the cart, not when the cart is priced. Pure fold,
// order-independent, zero for an empty selection.
func Total(selection []Book) float64 {
	var sum float64
	for _, b := range selection {
		if !b.Forbidden {
			sum += b.Price
		}
	}
	return sum
}
