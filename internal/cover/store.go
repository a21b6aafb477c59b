package cover

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Dir is the local directory holding fetched cover images.
type Dir struct {
	base string
}

// NewDir creates a Dir rooted at base.
func NewDir(base string) Dir {
	return Dir{base: base}
}

// Base returns the directory root.
func (d Dir) Base() string { return d.base }

// Path returns the absolute path for a stored cover file name.
func (d Dir) Path(name string) string {
	return filepath.Join(d.base, name)
}

// Has reports whether a cover file already exists.
func (d Dir) Has(name string) bool {
	_, err := os.Stat(d.Path(name))
	return err == nil
}

// Store writes r to <base>/<name> via a temp file and rename, so a
// failed download never leaves a truncated image behind.
func (d Dir) Store(name string, r io.Reader) error {
	if err := os.MkdirAll(d.base, 0750); err != nil {
		return fmt.Errorf("create covers dir: %w", err)
	}

	destPath := d.Path(name)
	tmpPath := destPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing cover: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// Sanitize converts a free-form book title/author into a safe cover
// file name: lowercase, alphanumerics kept, everything else collapsed
// to single hyphens.
func Sanitize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if b.Len() > 0 && !strings.HasSuffix(b.String(), "-") {
			b.WriteRune('-')
		}
	}
	result := strings.Trim(b.String(), "-")
	if len(result) > 100 {
		result = result[:100]
	}
	if result == "" {
		return "cover"
	}
	return result
}
