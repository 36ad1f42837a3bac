// This file implements the components table operations for the SQLite backend.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/partsbin/pkg/types"
)

// FindComponent looks up a component by its identifier (case-sensitive exact
// match). Returns ErrNotFound if no component carries the identifier.
func (b *Backend) FindComponent(identifier string) (*types.Component, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if identifier == "" {
		return nil, types.ErrInvalidIdentifier
	}

	row := b.db.QueryRow(
		"SELECT component_id, identifier, description, price, quantity, category, created_at, updated_at FROM components WHERE identifier = ?",
		identifier,
	)
	comp, err := hydrateComponent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("finding component %s: %w", identifier, err)
	}
	return comp, nil
}

// GetComponent looks up a component by its surrogate ID.
func (b *Backend) GetComponent(id string) (*types.Component, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := b.db.QueryRow(
		"SELECT component_id, identifier, description, price, quantity, category, created_at, updated_at FROM components WHERE component_id = ?",
		id,
	)
	comp, err := hydrateComponent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting component %s: %w", id, err)
	}
	return comp, nil
}

// InsertComponent persists a new component. Generates a UUID v7, sets both
// timestamps, and enforces identifier uniqueness and a non-negative price.
func (b *Backend) InsertComponent(c *types.Component) (*types.Component, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if c == nil {
		return nil, types.ErrInvalidID
	}
	if strings.TrimSpace(c.Identifier) == "" {
		return nil, types.ErrInvalidIdentifier
	}
	if c.Price.IsNegative() {
		return nil, types.ErrNegativePrice
	}

	// Reject duplicates up front for a clean sentinel instead of a
	// constraint error from the unique index.
	var dup string
	err := b.db.QueryRow(
		"SELECT component_id FROM components WHERE identifier = ?", c.Identifier,
	).Scan(&dup)
	if err == nil {
		return nil, types.ErrDuplicateIdentifier
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("checking identifier uniqueness: %w", err)
	}

	// Timestamps persist at RFC3339 second precision; truncate up front so
	// the returned entity matches what a later read will yield.
	now := time.Now().UTC().Truncate(time.Second)
	stored := *c
	stored.ComponentID = generateUUID()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	_, err = b.db.Exec(
		"INSERT INTO components (component_id, identifier, description, price, quantity, category, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		stored.ComponentID, stored.Identifier, stored.Description, stored.Price.String(),
		stored.Quantity, stored.Category,
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting component %s: %w", stored.Identifier, err)
	}
	return &stored, nil
}

// UpdateComponent applies the non-nil fields to the component with the given
// identifier and bumps updated_at. Returns ErrNotFound if the identifier is
// absent.
func (b *Backend) UpdateComponent(identifier string, fields types.ComponentFields) (*types.Component, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if identifier == "" {
		return nil, types.ErrInvalidIdentifier
	}
	if fields.Price != nil && fields.Price.IsNegative() {
		return nil, types.ErrNegativePrice
	}

	var sets []string
	var args []any
	if fields.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *fields.Description)
	}
	if fields.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, fields.Price.String())
	}
	if fields.Quantity != nil {
		sets = append(sets, "quantity = ?")
		args = append(args, *fields.Quantity)
	}
	if fields.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *fields.Category)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC().Format(time.RFC3339))
	args = append(args, identifier)

	res, err := b.db.Exec(
		"UPDATE components SET "+strings.Join(sets, ", ")+" WHERE identifier = ?",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("updating component %s: %w", identifier, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking update of component %s: %w", identifier, err)
	}
	if affected == 0 {
		return nil, types.ErrNotFound
	}

	return b.findComponentLocked(identifier)
}

// AdjustQuantity adds delta to the component's stock count. The result may go
// negative for tracking purposes.
func (b *Backend) AdjustQuantity(identifier string, delta int) (*types.Component, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if identifier == "" {
		return nil, types.ErrInvalidIdentifier
	}

	res, err := b.db.Exec(
		"UPDATE components SET quantity = quantity + ?, updated_at = ? WHERE identifier = ?",
		delta, time.Now().UTC().Format(time.RFC3339), identifier,
	)
	if err != nil {
		return nil, fmt.Errorf("adjusting quantity of %s: %w", identifier, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking quantity adjustment of %s: %w", identifier, err)
	}
	if affected == 0 {
		return nil, types.ErrNotFound
	}

	return b.findComponentLocked(identifier)
}

// DeleteComponent removes a component and every link referencing it in one
// transaction, so no dangling link rows survive.
func (b *Backend) DeleteComponent(identifier string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	if identifier == "" {
		return types.ErrInvalidIdentifier
	}

	var componentID string
	err := b.db.QueryRow(
		"SELECT component_id FROM components WHERE identifier = ?", identifier,
	).Scan(&componentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		return fmt.Errorf("checking component existence: %w", err)
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM links WHERE component_id = ?", componentID); err != nil {
		return fmt.Errorf("deleting component links: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM components WHERE component_id = ?", componentID); err != nil {
		return fmt.Errorf("deleting component: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing component deletion: %w", err)
	}
	return nil
}

// ListComponents returns components matching the filter, ordered by identifier.
func (b *Backend) ListComponents(filter types.ComponentFilter) ([]*types.Component, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	query := "SELECT component_id, identifier, description, price, quantity, category, created_at, updated_at FROM components"
	var conditions []string
	var args []any

	if filter.IdentifierContains != "" {
		conditions = append(conditions, "identifier LIKE ?")
		args = append(args, "%"+filter.IdentifierContains+"%")
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY identifier ASC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := b.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing components: %w", err)
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

// findComponentLocked re-reads a component by identifier. The caller must hold
// b.mu and have verified the attached state.
func (b *Backend) findComponentLocked(identifier string) (*types.Component, error) {
	row := b.db.QueryRow(
		"SELECT component_id, identifier, description, price, quantity, category, created_at, updated_at FROM components WHERE identifier = ?",
		identifier,
	)
	comp, err := hydrateComponent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("finding component %s: %w", identifier, err)
	}
	return comp, nil
}

// scanner abstracts sql.Row and sql.Rows for the hydrate helpers.
type scanner interface {
	Scan(dest ...any) error
}

func scanComponent(s scanner) (*types.Component, error) {
	var c types.Component
	var price, createdAt, updatedAt string
	if err := s.Scan(&c.ComponentID, &c.Identifier, &c.Description, &price, &c.Quantity, &c.Category, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	c.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parsing price: %w", err)
	}
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

// hydrateComponent converts a single SQLite row into a *types.Component.
func hydrateComponent(row *sql.Row) (*types.Component, error) {
	return scanComponent(row)
}

// hydrateComponentFromRows converts a row from sql.Rows into a *types.Component.
func hydrateComponentFromRows(rows *sql.Rows) (*types.Component, error) {
	return scanComponent(rows)
}
