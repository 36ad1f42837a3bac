// This file implements the categories table operations for the SQLite backend.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mesh-intelligence/partsbin/pkg/types"
)

// CreateCategory persists a new category. Generates a UUID v7, sets both
// timestamps, and enforces name uniqueness.
func (b *Backend) CreateCategory(c *types.Category) (*types.Category, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if c == nil || c.Name == "" {
		return nil, types.ErrInvalidName
	}

	var dup string
	err := b.db.QueryRow(
		"SELECT category_id FROM categories WHERE name = ?", c.Name,
	).Scan(&dup)
	if err == nil {
		return nil, types.ErrDuplicateName
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("checking category name uniqueness: %w", err)
	}

	// Same second-precision truncation as InsertComponent: the returned
	// entity must match a later read of the persisted row.
	now := time.Now().UTC().Truncate(time.Second)
	stored := *c
	stored.CategoryID = generateUUID()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	_, err = b.db.Exec(
		"INSERT INTO categories (category_id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		stored.CategoryID, stored.Name, stored.Description,
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting category %s: %w", stored.Name, err)
	}
	return &stored, nil
}

// UpdateCategory renames a category and/or replaces its description. A rename
// propagates to the denormalized category field of linked components in the
// same transaction, so displayed names never go stale.
func (b *Backend) UpdateCategory(id, name, description string) (*types.Category, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}
	if name == "" {
		return nil, types.ErrInvalidName
	}

	existing, err := b.getCategoryLocked(id)
	if err != nil {
		return nil, err
	}

	var dup string
	err = b.db.QueryRow(
		"SELECT category_id FROM categories WHERE name = ? AND category_id != ?", name, id,
	).Scan(&dup)
	if err == nil {
		return nil, types.ErrDuplicateName
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("checking category name uniqueness: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := b.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"UPDATE categories SET name = ?, description = ?, updated_at = ? WHERE category_id = ?",
		name, description, now, id,
	); err != nil {
		return nil, fmt.Errorf("updating category: %w", err)
	}

	if existing.Name != name {
		if _, err := tx.Exec(
			"UPDATE components SET category = ?, updated_at = ? WHERE category = ?",
			name, now, existing.Name,
		); err != nil {
			return nil, fmt.Errorf("propagating category rename: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing category update: %w", err)
	}

	return b.getCategoryLocked(id)
}

// GetCategory looks up a category by ID.
func (b *Backend) GetCategory(id string) (*types.Category, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}
	return b.getCategoryLocked(id)
}

// ListCategories returns all categories ordered by name.
func (b *Backend) ListCategories() ([]*types.Category, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query(
		"SELECT category_id, name, description, created_at, updated_at FROM categories ORDER BY name ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var results []*types.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating category: %w", err)
		}
		results = append(results, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	if results == nil {
		results = []*types.Category{}
	}
	return results, nil
}

// DeleteCategory removes a category, every link referencing it, and reverts
// the denormalized category field of components that displayed it, all in one
// transaction.
func (b *Backend) DeleteCategory(id string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	if id == "" {
		return types.ErrInvalidID
	}

	existing, err := b.getCategoryLocked(id)
	if err != nil {
		return err
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM links WHERE category_id = ?", id); err != nil {
		return fmt.Errorf("deleting category links: %w", err)
	}
	if _, err := tx.Exec(
		"UPDATE components SET category = '', updated_at = ? WHERE category = ?",
		time.Now().UTC().Format(time.RFC3339), existing.Name,
	); err != nil {
		return fmt.Errorf("clearing component category references: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM categories WHERE category_id = ?", id); err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing category deletion: %w", err)
	}
	return nil
}

// getCategoryLocked reads a category by ID. The caller must hold b.mu and
// have verified the attached state.
func (b *Backend) getCategoryLocked(id string) (*types.Category, error) {
	row := b.db.QueryRow(
		"SELECT category_id, name, description, created_at, updated_at FROM categories WHERE category_id = ?",
		id,
	)
	cat, err := scanCategory(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting category %s: %w", id, err)
	}
	return cat, nil
}

func scanCategory(s scanner) (*types.Category, error) {
	var c types.Category
	var createdAt, updatedAt string
	if err := s.Scan(&c.CategoryID, &c.Name, &c.Description, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &c, nil
}
