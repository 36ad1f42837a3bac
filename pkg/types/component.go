package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Component represents a catalog entry for an electronic part.
type Component struct {
	// ComponentID is a UUID v7, generated on insert.
	ComponentID string

	// Identifier is the natural key (e.g. "R10K", "LM358"). Globally unique,
	// case-sensitive exact match.
	Identifier string

	// Description is free text. The empty string means "no description".
	Description string

	// Price is the unit price. Never negative.
	Price decimal.Decimal

	// Quantity is the stock count. May go negative for tracking purposes.
	Quantity int

	// Category is the denormalized current-category display name. It mirrors
	// the link table and is updated in the same transaction as link writes.
	// The empty string means "unset".
	Category string

	// CreatedAt and UpdatedAt are set by the store, never by callers.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasDescription reports whether the component carries a non-empty description.
func (c *Component) HasDescription() bool {
	return c.Description != ""
}

// ComponentFields is a partial update for Store.UpdateComponent.
// Nil fields are left unchanged.
type ComponentFields struct {
	Description *string
	Price       *decimal.Decimal
	Quantity    *int
	Category    *string
}

// ComponentFilter narrows Store.ListComponents results. Zero values mean
// "no constraint".
type ComponentFilter struct {
	// IdentifierContains matches identifiers containing the substring.
	IdentifierContains string

	// Category matches the denormalized category display name exactly.
	Category string

	Limit  int
	Offset int
}
