package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Book is one stock entry in the shop inventory. Two entries with the
// same title and author are distinct copies, not an error.
//
// The JSON tags match the historical buecher.json format and must not
// change: existing data files are the compatibility contract.
type Book struct {
	Title      string  `json:"titel" validate:"required"`
	Author     string  `json:"autor" validate:"required"`
	Category   string  `json:"kategorie" validate:"required"`
	Price      float64 `json:"preis" validate:"gte=0"`
	Forbidden  bool    `json:"verboten"`
	Restricted bool    `json:"indiziert"`
	ImagePath  string  `json:"image_path,omitempty"`
}

var validate = validator.New()

// NewBook builds a sellable book record. A negative price is a data
// invariant violation, not a presentation concern, so it is rejected
// here rather than at the input boundary.
func NewBook(title, author, category string, price float64) (Book, error) {
	if price < 0 {
		return Book{}, ErrNegativePrice
	}
	return Book{
		Title:    title,
		Author:   author,
		Category: category,
		Price:    price,
	}, nil
}

// Validate checks the fields required for an authored entry. Records
// read from the data file are not validated — missing keys were already
// filled with the historical placeholder values.
func (b Book) Validate() error {
	if err := validate.Struct(b); err != nil {
		return fmt.Errorf("invalid book: %w", err)
	}
	return nil
}

// Sellable reports whether the book may enter a cart at all. Forbidden
// is checked before Restricted: a forbidden book is blocked outright and
// never reaches the age gate, even when both flags are set.
func (b Book) Sellable() bool {
	return !b.Forbidden
}

// Label renders the display line used everywhere a book is shown:
//
//	'Faust I' von Johann Wolfgang von Goethe (7,99 €)
//
// with " [VERBOTEN]" or " [INDIZIERT FSK18]" appended for flagged books.
// Forbidden wins when both flags are set.
func (b Book) Label() string {
	status := ""
	switch {
	case b.Forbidden:
		status = " [VERBOTEN]"
	case b.Restricted:
		status = " [INDIZIERT FSK18]"
	}
	return fmt.Sprintf("'%s' von %s (%s €)%s", b.Title, b.Author, FormatPrice(b.Price), status)
}

// FormatPrice renders a price with two decimal places and a comma
// separator, matching the locale convention of the data file.
func FormatPrice(p float64) string {
	return strings.Replace(strconv.FormatFloat(p, 'f', 2, 64), ".", ",", 1)
}
