// Shared helpers for partsbin CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/partsbin/internal/sqlite"
	"github.com/mesh-intelligence/partsbin/pkg/types"
)

// attachStore resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer store.Detach().
func attachStore() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	store := sqlite.NewBackend()
	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	return store, nil
}

// findCategoryByName resolves a category name to its entity.
// Returns ErrNotFound when no category carries the name.
func findCategoryByName(store *sqlite.Backend, name string) (*types.Category, error) {
	categories, err := store.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	for _, cat := range categories {
		if cat.Name == name {
			return cat, nil
		}
	}
	return nil, fmt.Errorf("category %q: %w", name, types.ErrNotFound)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printComponent writes a one-line human-readable component summary.
func printComponent(c *types.Component) {
	desc := c.Description
	if desc == "" {
		desc = "(no description)"
	}
	category := c.Category
	if category == "" {
		category = "(uncategorized)"
	}
	fmt.Printf("%-20s $%-10s qty %-6d %-18s %s\n", c.Identifier, c.Price.StringFixed(2), c.Quantity, category, desc)
}
