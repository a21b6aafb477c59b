package inventory

import (
	"errors"
	"log/slog"
	"os"
)

// Store binds an Inventory to its data file and centralizes the
// load/save policy: loading is recoverable (logged, never fatal) so a
// first run starts with an empty shop; saving surfaces a typed error so
// the caller can tell the user the stock was NOT persisted.
type Store struct {
	path   string
	inv    *Inventory
	logger *slog.Logger
}

// NewStore creates a store for the given data file.
func NewStore(path string, inv *Inventory, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, inv: inv, logger: logger}
}

// Inventory returns the wrapped inventory.
func (s *Store) Inventory() *Inventory { return s.inv }

// Path returns the data file location.
func (s *Store) Path() string { return s.path }

// Load appends the data file's books to the inventory. Calling Load
// twice duplicates every entry — callers wanting replace semantics must
// start from an empty inventory. A missing or unreadable file leaves
// the inventory as it was.
func (s *Store) Load() {
	books, err := Load(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("inventory file not found", "path", s.path)
		} else {
			s.logger.Error("loading inventory failed", "path", s.path, "error", err)
		}
		return
	}
	for _, b := range books {
		s.inv.Add(b)
	}
	s.logger.Info("inventory loaded", "path", s.path, "books", len(s.inv.Books))
}

// Save writes the current stock back to the data file.
func (s *Store) Save() error {
	if err := Save(s.path, s.inv.Books); err != nil {
		s.logger.Error("saving inventory failed", "path", s.path, "error", err)
		return err
	}
	return nil
}

// Update applies a modification to the inventory and saves it.
// Modify → save is the pattern behind every mutating command.
func (s *Store) Update(fn func(*Inventory) error) error {
	if err := fn(s.inv); err != nil {
		return err
	}
	return s.Save()
}
