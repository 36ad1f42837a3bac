// Tests for SQLite backend lifecycle.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/partsbin/pkg/types"
)

// setupBackend attaches a fresh backend over a temp directory and registers
// cleanup. Shared by the table test suites in this package.
func setupBackend(t *testing.T) *Backend {
	t.Helper()

	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	t.Cleanup(func() { b.Detach() })
	return b
}

func TestBackend_Attach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: tmpDir,
	}

	err := b.Attach(config)
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	// Verify database file created
	dbPath := filepath.Join(tmpDir, DBFileName)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("%s not created", DBFileName)
	}

	// Verify double attach fails
	err = b.Attach(config)
	if err != types.ErrAlreadyAttached {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}

	// Clean up
	b.Detach()
}

func TestBackend_AttachValidatesConfig(t *testing.T) {
	b := NewBackend()

	err := b.Attach(types.Config{Backend: "", DataDir: t.TempDir()})
	if err != types.ErrBackendEmpty {
		t.Errorf("expected ErrBackendEmpty, got %v", err)
	}

	err = b.Attach(types.Config{Backend: "postgres", DataDir: t.TempDir()})
	if err != types.ErrBackendUnknown {
		t.Errorf("expected ErrBackendUnknown, got %v", err)
	}
}

func TestBackend_Detach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: tmpDir,
	}

	b.Attach(config)

	err := b.Detach()
	if err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Verify idempotent
	err = b.Detach()
	if err != nil {
		t.Errorf("second Detach should not error, got %v", err)
	}

	// Verify operations fail after detach
	_, err = b.FindComponent("R10K")
	if err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached, got %v", err)
	}
	_, err = b.ListCategories()
	if err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached, got %v", err)
	}
}

func TestBackend_DataPersistsAcrossAttaches(t *testing.T) {
	tmpDir := t.TempDir()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: tmpDir,
	}

	b := NewBackend()
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	_, err := b.InsertComponent(&types.Component{Identifier: "R10K"})
	if err != nil {
		t.Fatalf("InsertComponent failed: %v", err)
	}
	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Reattach over the same directory; the component must survive.
	b2 := NewBackend()
	if err := b2.Attach(config); err != nil {
		t.Fatalf("second Attach failed: %v", err)
	}
	defer b2.Detach()

	comp, err := b2.FindComponent("R10K")
	if err != nil {
		t.Fatalf("FindComponent after reattach failed: %v", err)
	}
	if comp.Identifier != "R10K" {
		t.Errorf("expected R10K, got %s", comp.Identifier)
	}
}

func TestBackend_SeedsBuiltInCategories(t *testing.T) {
	b := setupBackend(t)

	cats, err := b.ListCategories()
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(cats) != len(types.BuiltInCategories) {
		t.Fatalf("expected %d seeded categories, got %d", len(types.BuiltInCategories), len(cats))
	}

	names := make(map[string]bool, len(cats))
	for _, cat := range cats {
		names[cat.Name] = true
	}
	for _, want := range types.BuiltInCategories {
		if !names[want] {
			t.Errorf("built-in category %q not seeded", want)
		}
	}
}

func TestBackend_SeedOnlyRunsOnce(t *testing.T) {
	tmpDir := t.TempDir()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: tmpDir,
	}

	b := NewBackend()
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	// Remove one built-in category, then reattach. The seed must not
	// reintroduce it over a populated table.
	cats, err := b.ListCategories()
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if err := b.DeleteCategory(cats[0].CategoryID); err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}
	b.Detach()

	b2 := NewBackend()
	if err := b2.Attach(config); err != nil {
		t.Fatalf("second Attach failed: %v", err)
	}
	defer b2.Detach()

	after, err := b2.ListCategories()
	if err != nil {
		t.Fatalf("ListCategories after reattach failed: %v", err)
	}
	if len(after) != len(cats)-1 {
		t.Errorf("expected %d categories after reattach, got %d", len(cats)-1, len(after))
	}
}
