package tui

import (
	"testing"

	"github.com/leseparadies/ladenctl/internal/inventory"
)

func book(title string, restricted, forbidden bool) inventory.Book {
	return inventory.Book{
		Title:      title,
		Author:     "A",
		Category:   "Roman",
		Price:      9.99,
		Restricted: restricted,
		Forbidden:  forbidden,
	}
}

func TestMatchIndices_Subsequence(t *testing.T) {
	stock := []inventory.Book{
		book("Eins", false, false),
		book("Zwei", true, false),
		book("Drei", false, false),
		book("Vier", true, false),
	}
	view := []inventory.Book{stock[1], stock[3]}

	got := matchIndices(stock, view)
	want := []int{1, 3}
	if len(got) != len(want) {
		t.Fatalf("matchIndices returned %d indices, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("matchIndices[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMatchIndices_Duplicates(t *testing.T) {
	dup := book("Doppelt", false, false)
	stock := []inventory.Book{dup, book("Anders", false, false), dup}
	view := []inventory.Book{dup, dup}

	got := matchIndices(stock, view)
	if got[0] != 0 || got[1] != 2 {
		t.Errorf("matchIndices on duplicates = %v, want [0 2]", got)
	}
}

func TestMatchIndices_Empty(t *testing.T) {
	got := matchIndices([]inventory.Book{book("X", false, false)}, nil)
	if len(got) != 0 {
		t.Errorf("matchIndices on empty view = %v, want empty", got)
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"12,99", 12.99, false},
		{"12.99", 12.99, false},
		{" 5,00 ", 5.0, false},
		{"", 0, false},
		{"-1", 0, true},
		{"abc", 0, true},
	}
	for _, c := range cases {
		got, err := parsePrice(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("parsePrice(%q) expected error, got %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePrice(%q) unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("parsePrice(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseJN(t *testing.T) {
	for _, in := range []string{"j", "J", "y"} {
		got, err := parseJN(in)
		if err != nil || !got {
			t.Errorf("parseJN(%q) = %v, %v, want true", in, got, err)
		}
	}
	for _, in := range []string{"", "n", "N"} {
		got, err := parseJN(in)
		if err != nil || got {
			t.Errorf("parseJN(%q) = %v, %v, want false", in, got, err)
		}
	}
	if _, err := parseJN("x"); err == nil {
		t.Error("parseJN(\"x\") expected error")
	}
}
