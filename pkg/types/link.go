package types

import "time"

// Link represents a component↔category membership row. The pair
// (ComponentID, CategoryID) is unique; the edge carries no ordering semantics.
type Link struct {
	// LinkID is a UUID v7, generated on creation.
	LinkID string

	// ComponentID is the component side of the edge.
	ComponentID string

	// CategoryID is the category side of the edge.
	CategoryID string

	// CreatedAt is the timestamp of creation.
	CreatedAt time.Time
}
