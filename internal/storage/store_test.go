package storage

import (
	"os"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestLocalStoreSaveAndGet(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	info, err := store.Save("sequence.json", strings.NewReader(`[{"word":"AB"}]`))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if info.Name != "sequence.json" {
		t.Errorf("Expected name sequence.json, got %s", info.Name)
	}
	if info.Size == 0 {
		t.Error("Expected non-zero size")
	}

	got, err := store.Get(info.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != info.ID {
		t.Errorf("Expected ID %s, got %s", info.ID, got.ID)
	}

	path, err := store.GetFilePath(info.ID)
	if err != nil {
		t.Fatalf("GetFilePath failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading saved file failed: %v", err)
	}
	if string(data) != `[{"word":"AB"}]` {
		t.Errorf("Unexpected file content: %s", data)
	}
}

func TestLocalStoreDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	info, err := store.SaveBytes("seq.json", []byte("[]"))
	if err != nil {
		t.Fatalf("SaveBytes failed: %v", err)
	}

	if err := store.Delete(info.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(info.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(info.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for double delete, got %v", err)
	}
}

func TestLocalStoreList(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	for _, name := range []string{"a.json", "b.json", "c.json"} {
		if _, err := store.SaveBytes(name, []byte("[]")); err != nil {
			t.Fatalf("SaveBytes failed: %v", err)
		}
	}

	list, err := store.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("Expected 2 files, got %d", len(list))
	}
}
