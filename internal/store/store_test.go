package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	f, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
}

func TestOpenResumesExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	f, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.Write([]byte("payload")); err != nil {
		t.Fatalf("write: %v", err)
	}
	f.Close()

	f, err = Open(path, Options{})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()

	buf := make([]byte, 7)
	if _, err := f.ReadAt(buf, 0); err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(buf) != "payload" {
		t.Fatalf("expected prior contents preserved, got %q", buf)
	}
}

func TestOpenTruncateDiscardsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	f, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.Write([]byte("payload")); err != nil {
		t.Fatalf("write: %v", err)
	}
	f.Close()

	f, err = Open(path, Options{Truncate: true})
	if err != nil {
		t.Fatalf("reopen with truncate: %v", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected truncated file to be empty, got size %d", info.Size())
	}
}
