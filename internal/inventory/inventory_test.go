package inventory_test

import (
	"strings"
	"testing"

	"github.com/leseparadies/ladenctl/internal/inventory"
)

var sampleJSON = []byte(`[
  {
    "titel": "Python Crashkurs",
    "autor": "Eric Matthes",
    "kategorie": "Programmierung",
    "preis": 30.0,
    "verboten": false,
    "indiziert": false
  },
  {
    "titel": "Der Pragmatische Programmierer",
    "autor": "Andrew Hunt",
    "kategorie": "Programmierung",
    "preis": 25.5,
    "verboten": false,
    "indiziert": false
  },
  {
    "titel": "Faust I",
    "autor": "Johann Wolfgang von Goethe",
    "kategorie": "Klassiker",
    "preis": 7.99,
    "verboten": false,
    "indiziert": false
  },
  {
    "titel": "Die Verwandlung",
    "autor": "Franz Kafka",
    "kategorie": "Klassiker",
    "preis": 5.0,
    "verboten": false,
    "indiziert": true,
    "image_path": "covers/die-verwandlung.jpg"
  }
]`)

func sampleInventory(t *testing.T) *inventory.Inventory {
	t.Helper()
	books, err := inventory.Parse(sampleJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	inv := inventory.New("Test-Buchladen")
	for _, b := range books {
		inv.Add(b)
	}
	return inv
}

// --- Parse ---

func TestParse_ValidJSON(t *testing.T) {
	books, err := inventory.Parse(sampleJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(books) != 4 {
		t.Fatalf("expected 4 books, got %d", len(books))
	}
	if books[0].Title != "Python Crashkurs" {
		t.Errorf("books[0].Title = %q", books[0].Title)
	}
	if !books[3].Restricted {
		t.Error("books[3] should be restricted")
	}
	if books[3].ImagePath != "covers/die-verwandlung.jpg" {
		t.Errorf("books[3].ImagePath = %q", books[3].ImagePath)
	}
}

func TestParse_Empty(t *testing.T) {
	books, err := inventory.Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse empty: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("expected 0 books, got %d", len(books))
	}
}

func TestParse_EmptyArray(t *testing.T) {
	books, err := inventory.Parse([]byte("[]"))
	if err != nil {
		t.Fatalf("Parse []: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("expected 0 books, got %d", len(books))
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := inventory.Parse([]byte("{not json"))
	if err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
}

// Missing keys fall back to the historical defaults: a record with only
// a title still loads, priced at zero.
func TestParse_MissingKeysUseDefaults(t *testing.T) {
	books, err := inventory.Parse([]byte(`[{"titel": "Nur Titel"}]`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("expected 1 book, got %d", len(books))
	}
	b := books[0]
	if b.Title != "Nur Titel" {
		t.Errorf("Title = %q", b.Title)
	}
	if b.Author != inventory.UnknownAuthor {
		t.Errorf("Author = %q, want %q", b.Author, inventory.UnknownAuthor)
	}
	if b.Category != inventory.UnknownCategory {
		t.Errorf("Category = %q, want %q", b.Category, inventory.UnknownCategory)
	}
	if b.Price != 0 {
		t.Errorf("Price = %v, want 0", b.Price)
	}
	if b.Forbidden || b.Restricted {
		t.Error("flags must default to false")
	}
	if b.ImagePath != "" {
		t.Errorf("ImagePath = %q, want empty", b.ImagePath)
	}
}

func TestParse_MissingPriceOnly(t *testing.T) {
	books, err := inventory.Parse([]byte(`[
		{"titel": "A", "autor": "B", "kategorie": "C", "verboten": true}
	]`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if books[0].Price != 0 {
		t.Errorf("Price = %v, want 0", books[0].Price)
	}
	if !books[0].Forbidden {
		t.Error("explicit verboten=true was lost")
	}
}

func TestParse_NullImagePath(t *testing.T) {
	books, err := inventory.Parse([]byte(`[{"titel": "A", "image_path": null}]`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if books[0].ImagePath != "" {
		t.Errorf("null image_path should resolve to empty, got %q", books[0].ImagePath)
	}
}

// --- Marshal / round trip ---

func TestMarshal_OmitsEmptyImagePath(t *testing.T) {
	books := []inventory.Book{{Title: "A", Author: "B", Category: "C", Price: 1}}
	data, err := inventory.Marshal(books)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(data), "image_path") {
		t.Errorf("image_path key must be absent, got:\n%s", data)
	}
}

func TestMarshal_KeepsSetImagePath(t *testing.T) {
	books := []inventory.Book{{Title: "A", Author: "B", Category: "C", Price: 1, ImagePath: "covers/a.jpg"}}
	data, err := inventory.Marshal(books)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"image_path": "covers/a.jpg"`) {
		t.Errorf("image_path missing from output:\n%s", data)
	}
}

func TestMarshal_Nil(t *testing.T) {
	data, err := inventory.Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal nil: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("nil stock must marshal as [], got %q", data)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	books, err := inventory.Parse(sampleJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, err := inventory.Marshal(books)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	books2, err := inventory.Parse(data)
	if err != nil {
		t.Fatalf("re-Parse: %v", err)
	}
	if len(books2) != len(books) {
		t.Fatalf("round-trip length: got %d, want %d", len(books2), len(books))
	}
	for i := range books {
		if books[i] != books2[i] {
			t.Errorf("[%d] mismatch:\n got %+v\nwant %+v", i, books2[i], books[i])
		}
	}
}

// --- Add ---

func TestAdd_PreservesOrderAndDuplicates(t *testing.T) {
	inv := inventory.New("Laden")
	b, _ := inventory.NewBook("Faust I", "Goethe", "Klassiker", 7.99)
	inv.Add(b)
	inv.Add(b)
	if inv.Len() != 2 {
		t.Errorf("duplicate stock entries are legal, got len %d", inv.Len())
	}
	if inv.Books[0].Title != inv.Books[1].Title {
		t.Error("both entries should be the same title")
	}
}
