// This file implements built-in category seeding on backend attach.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mesh-intelligence/partsbin/pkg/types"
)

// seedBuiltInCategories creates the standard component categories if the
// categories table is empty (first run). Seeding is idempotent: a populated
// table, including one where the user deleted some built-ins, is left alone.
func seedBuiltInCategories(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, name := range types.BuiltInCategories {
		if _, err := db.Exec(
			"INSERT INTO categories (category_id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			generateUUID(), name, "", now, now,
		); err != nil {
			return fmt.Errorf("seeding category %s: %w", name, err)
		}
	}
	return nil
}
