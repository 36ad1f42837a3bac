// This file implements the component↔category link operations for the SQLite
// backend. Link writes and the denormalized category display field on
// components always move together in one transaction.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mesh-intelligence/partsbin/pkg/types"
)

// AssignCategory links a component to a category. Idempotent: if the link
// already exists the call is a no-op. Otherwise the link row is created and
// the component's denormalized category display name is updated in the same
// transaction. Returns ErrNotFound if either endpoint is absent.
func (b *Backend) AssignCategory(componentID, categoryID string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	if componentID == "" || categoryID == "" {
		return types.ErrInvalidID
	}

	if err := b.checkComponentExists(componentID); err != nil {
		return err
	}
	cat, err := b.getCategoryLocked(categoryID)
	if err != nil {
		return err
	}

	var existingLink string
	err = b.db.QueryRow(
		"SELECT link_id FROM links WHERE component_id = ? AND category_id = ?",
		componentID, categoryID,
	).Scan(&existingLink)
	if err == nil {
		return nil // already linked
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking link existence: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO links (link_id, component_id, category_id, created_at) VALUES (?, ?, ?, ?)",
		generateUUID(), componentID, categoryID, now,
	); err != nil {
		return fmt.Errorf("inserting link: %w", err)
	}
	if _, err := tx.Exec(
		"UPDATE components SET category = ?, updated_at = ? WHERE component_id = ?",
		cat.Name, now, componentID,
	); err != nil {
		return fmt.Errorf("syncing component category: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing link: %w", err)
	}
	return nil
}

// Unlink removes the component↔category link if present. Idempotent: a
// missing link is a no-op. When the component's display name matched the
// unlinked category, it reverts to unset in the same transaction.
func (b *Backend) Unlink(componentID, categoryID string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	if componentID == "" || categoryID == "" {
		return types.ErrInvalidID
	}

	var linkID string
	err := b.db.QueryRow(
		"SELECT link_id FROM links WHERE component_id = ? AND category_id = ?",
		componentID, categoryID,
	).Scan(&linkID)
	if err == sql.ErrNoRows {
		return nil // not linked
	}
	if err != nil {
		return fmt.Errorf("checking link existence: %w", err)
	}

	cat, err := b.getCategoryLocked(categoryID)
	if err != nil {
		return err
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM links WHERE link_id = ?", linkID); err != nil {
		return fmt.Errorf("deleting link: %w", err)
	}
	if _, err := tx.Exec(
		"UPDATE components SET category = '', updated_at = ? WHERE component_id = ? AND category = ?",
		time.Now().UTC().Format(time.RFC3339), componentID, cat.Name,
	); err != nil {
		return fmt.Errorf("clearing component category: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing unlink: %w", err)
	}
	return nil
}

// CategoriesFor returns the categories linked to a component, in store
// iteration order.
func (b *Backend) CategoriesFor(componentID string) ([]*types.Category, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if componentID == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := b.db.Query(
		`SELECT c.category_id, c.name, c.description, c.created_at, c.updated_at
		 FROM categories c
		 INNER JOIN links l ON l.category_id = c.category_id
		 WHERE l.component_id = ?`,
		componentID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching categories for component: %w", err)
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

// ComponentsFor returns the components linked to a category, in store
// iteration order.
func (b *Backend) ComponentsFor(categoryID string) ([]*types.Component, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if categoryID == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := b.db.Query(
		`SELECT k.component_id, k.identifier, k.description, k.price, k.quantity, k.category, k.created_at, k.updated_at
		 FROM components k
		 INNER JOIN links l ON l.component_id = k.component_id
		 WHERE l.category_id = ?`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching components for category: %w", err)
	}
	defer rows.Close()

	var results []*types.Component
	for rows.Next() {
		comp, err := hydrateComponentFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating component: %w", err)
		}
		results = append(results, comp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating components: %w", err)
	}

	if results == nil {
		results = []*types.Component{}
	}
	return results, nil
}

// checkComponentExists verifies a component surrogate ID. The caller must
// hold b.mu and have verified the attached state.
func (b *Backend) checkComponentExists(componentID string) error {
	var one int
	err := b.db.QueryRow(
		"SELECT 1 FROM components WHERE component_id = ?", componentID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("checking component existence: %w", err)
	}
	return nil
}
