package inventory

import (
	"sort"
	"strings"
)

// Selector keywords recognized by FilterBySelector. Matching is
// case-insensitive; anything else is treated as a category name.
const (
	SelectorAll        = "alle anzeigen"
	SelectorRestricted = "nur fsk18"
	SelectorForbidden  = "nur verbotene"
)

// Categories returns the distinct category labels in ascending order.
// Dedup is case-sensitive — "Krimi" and "krimi" are two categories —
// even though category filtering matches case-insensitively. Historical
// behavior, kept for compatibility.
func (inv *Inventory) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, b := range inv.Books {
		if _, ok := seen[b.Category]; !ok {
			seen[b.Category] = struct{}{}
			out = append(out, b.Category)
		}
	}
	sort.Strings(out)
	return out
}

// FilterByCategory returns the books whose category equals name,
// ignoring case. An empty name or the show-all keyword returns a copy
// of the full stock. Relative order is always preserved.
func (inv *Inventory) FilterByCategory(name string) []Book {
	if name == "" || strings.EqualFold(name, SelectorAll) {
		return append([]Book(nil), inv.Books...)
	}
	var out []Book
	for _, b := range inv.Books {
		if strings.EqualFold(b.Category, name) {
			out = append(out, b)
		}
	}
	return out
}

// FilterBySelector dispatches on the filter criterion chosen in the
// storefront: one of the Selector keywords, or a literal category name.
// "nur fsk18" excludes forbidden books — forbidden is the stronger
// state and such a book belongs to the forbidden view only.
func (inv *Inventory) FilterBySelector(selector string) []Book {
	switch strings.ToLower(selector) {
	case "", SelectorAll:
		return append([]Book(nil), inv.Books...)
	case SelectorRestricted:
		var out []Book
		for _, b := range inv.Books {
			if b.Restricted && !b.Forbidden {
				out = append(out, b)
			}
		}
		return out
	case SelectorForbidden:
		var out []Book
		for _, b := range inv.Books {
			if b.Forbidden {
				out = append(out, b)
			}
		}
		return out
	default:
		return inv.FilterByCategory(selector)
	}
}
