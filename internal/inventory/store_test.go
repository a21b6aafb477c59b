package inventory_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/leseparadies/ladenctl/internal/inventory"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_LoadMissingFileIsRecoverable(t *testing.T) {
	inv := inventory.New("Laden")
	s := inventory.NewStore(filepath.Join(t.TempDir(), "buecher.json"), inv, quietLogger())
	s.Load()
	if inv.Len() != 0 {
		t.Errorf("expected empty inventory after missing-file load, got %d", inv.Len())
	}
}

func TestStore_LoadMalformedFileIsRecoverable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buecher.json")
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}
	inv := inventory.New("Laden")
	s := inventory.NewStore(path, inv, quietLogger())
	s.Load()
	if inv.Len() != 0 {
		t.Errorf("expected empty inventory after malformed load, got %d", inv.Len())
	}
}

// Load appends: loading the same file twice duplicates the stock.
func TestStore_LoadAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buecher.json")
	if err := os.WriteFile(path, sampleJSON, 0600); err != nil {
		t.Fatal(err)
	}
	inv := inventory.New("Laden")
	s := inventory.NewStore(path, inv, quietLogger())
	s.Load()
	if inv.Len() != 4 {
		t.Fatalf("first load: got %d books", inv.Len())
	}
	s.Load()
	if inv.Len() != 8 {
		t.Errorf("second load must append, got %d books", inv.Len())
	}
}

func TestStore_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buecher.json")
	inv := sampleInventory(t)
	s := inventory.NewStore(path, inv, quietLogger())
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fresh := inventory.New("Laden")
	s2 := inventory.NewStore(path, fresh, quietLogger())
	s2.Load()
	if fresh.Len() != inv.Len() {
		t.Fatalf("round trip: got %d books, want %d", fresh.Len(), inv.Len())
	}
	for i := range inv.Books {
		if inv.Books[i] != fresh.Books[i] {
			t.Errorf("[%d] mismatch:\n got %+v\nwant %+v", i, fresh.Books[i], inv.Books[i])
		}
	}
}

func TestStore_SaveFailureSurfaces(t *testing.T) {
	dir := t.TempDir()
	inv := sampleInventory(t)
	s := inventory.NewStore(dir, inv, quietLogger()) // path is a directory
	if err := s.Save(); err == nil {
		t.Error("expected error when saving to a directory path")
	}
}

func TestStore_Update(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buecher.json")
	inv := inventory.New("Laden")
	s := inventory.NewStore(path, inv, quietLogger())

	err := s.Update(func(inv *inventory.Inventory) error {
		b, err := inventory.NewBook("Faust I", "Goethe", "Klassiker", 7.99)
		if err != nil {
			return err
		}
		inv.Add(b)
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	fresh := inventory.New("Laden")
	inventory.NewStore(path, fresh, quietLogger()).Load()
	if fresh.Len() != 1 || fresh.Books[0].Title != "Faust I" {
		t.Errorf("persisted stock wrong: %+v", fresh.Books)
	}
}
