package inventory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Marshal encodes books as the JSON array format of the data file.
// The image_path key is written only when a cover path is set — books
// without one carry no key at all, not a null. Loading treats the two
// the same, so the asymmetry survives a round trip.
func Marshal(books []Book) ([]byte, error) {
	if books == nil {
		books = []Book{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(books); err != nil {
		return nil, fmt.Errorf("encoding inventory: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the book list to a file on disk.
func Save(path string, books []Book) error {
	data, err := Marshal(books)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing inventory: %w", err)
	}
	return nil
}
