package inventory

import (
	"encoding/json"
	"fmt"
	"os"
)

// Placeholder values for records missing a key in the data file. These
// strings appear in existing files and must stay byte-identical.
const (
	UnknownTitle    = "Unbekannter Titel"
	UnknownAuthor   = "Unbekannter Autor"
	UnknownCategory = "Unbekannte Kategorie"
)

// bookRecord mirrors Book with pointer fields so an absent key can be
// told apart from an explicit zero value during decoding.
type bookRecord struct {
	Title      *string  `json:"titel"`
	Author     *string  `json:"autor"`
	Category   *string  `json:"kategorie"`
	Price      *float64 `json:"preis"`
	Forbidden  *bool    `json:"verboten"`
	Restricted *bool    `json:"indiziert"`
	ImagePath  *string  `json:"image_path"`
}

// Load reads a buecher.json file from disk. A missing file surfaces as
// an error wrapping os.ErrNotExist; the Store decides whether that is
// fatal (it is not).
func Load(path string) ([]Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading inventory: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON book array, filling missing keys with the
// historical defaults: placeholder strings for title/author/category,
// 0.0 for the price, false for both flags, empty for the image path.
func Parse(data []byte) ([]Book, error) {
	if len(data) == 0 {
		return []Book{}, nil
	}
	var records []bookRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing inventory JSON: %w", err)
	}
	books := make([]Book, 0, len(records))
	for _, r := range records {
		books = append(books, Book{
			Title:      stringOr(r.Title, UnknownTitle),
			Author:     stringOr(r.Author, UnknownAuthor),
			Category:   stringOr(r.Category, UnknownCategory),
			Price:      floatOr(r.Price, 0),
			Forbidden:  boolOr(r.Forbidden, false),
			Restricted: boolOr(r.Restricted, false),
			ImagePath:  stringOr(r.ImagePath, ""),
		})
	}
	return books, nil
}

func stringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
