package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leseparadies/ladenctl/internal/util"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "buecher.json")
	dst := filepath.Join(dir, "sub", "buecher.json")

	if err := os.WriteFile(src, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := util.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile dst: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("CopyFile content = %q, want %q", string(got), "[]")
	}
}

func TestCopyFile_MissingSrc(t *testing.T) {
	err := util.CopyFile("/no/src.json", t.TempDir()+"/dst.json")
	if err == nil {
		t.Error("expected error copying missing file, got nil")
	}
}

func TestEnsureDir(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := util.EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	fi, err := os.Stat(nested)
	if err != nil {
		t.Fatalf("Stat after EnsureDir: %v", err)
	}
	if !fi.IsDir() {
		t.Error("EnsureDir path is not a directory")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.json")
	if util.FileExists(path) {
		t.Error("FileExists true for missing file")
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if !util.FileExists(path) {
		t.Error("FileExists false for existing file")
	}
	if util.FileExists(dir) {
		t.Error("FileExists true for a directory")
	}
}
