package types

import "time"

// Built-in category names seeded on first attach. The classifier in
// pkg/importer maps component identifiers onto these.
const (
	CategoryResistor    = "RESISTOR"
	CategoryCapacitor   = "CAPACITOR"
	CategoryDiode       = "DIODE"
	CategoryIC          = "IC"
	CategoryTransistors = "TRANSISTORS"
	CategoryOther       = "OTHER COMPONENTS"
)

// BuiltInCategories lists the seeded category names in display order.
var BuiltInCategories = []string{
	CategoryResistor,
	CategoryCapacitor,
	CategoryDiode,
	CategoryIC,
	CategoryTransistors,
	CategoryOther,
}

// Category groups components. Membership lives in the links table; a
// component may belong to several categories.
type Category struct {
	// CategoryID is a UUID v7, generated on creation.
	CategoryID string

	// Name is unique across all categories.
	Name string

	// Description is free text, optional.
	Description string

	// CreatedAt and UpdatedAt are set by the store.
	CreatedAt time.Time
	UpdatedAt time.Time
}
