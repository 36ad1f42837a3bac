package types

import "errors"

// Store defines the persistence interface for the component catalog.
// Callers attach to a backend, operate on components, categories, and links,
// and detach when done. All timestamps are set by the store, never by callers.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, all other operations return ErrStoreDetached.
	Detach() error

	// FindComponent looks up a component by its identifier.
	// Returns ErrNotFound if no component carries the identifier.
	FindComponent(identifier string) (*Component, error)

	// GetComponent looks up a component by its surrogate ID.
	GetComponent(id string) (*Component, error)

	// InsertComponent persists a new component. The identifier must be
	// non-empty and unused; the price must be non-negative. Returns the
	// stored component with ID and timestamps populated.
	InsertComponent(c *Component) (*Component, error)

	// UpdateComponent applies the non-nil fields to the component with the
	// given identifier. Returns ErrNotFound if the identifier is absent.
	UpdateComponent(identifier string, fields ComponentFields) (*Component, error)

	// AdjustQuantity adds delta to the component's stock count. The result
	// may go negative for tracking purposes.
	AdjustQuantity(identifier string, delta int) (*Component, error)

	// DeleteComponent removes a component and all links referencing it in
	// one transaction. Returns ErrNotFound if the identifier is absent.
	DeleteComponent(identifier string) error

	// ListComponents returns components matching the filter, ordered by
	// identifier.
	ListComponents(filter ComponentFilter) ([]*Component, error)

	// CreateCategory persists a new category. The name must be non-empty
	// and unique (ErrDuplicateName on collision).
	CreateCategory(c *Category) (*Category, error)

	// UpdateCategory renames a category and/or replaces its description.
	UpdateCategory(id, name, description string) (*Category, error)

	// GetCategory looks up a category by ID.
	GetCategory(id string) (*Category, error)

	// ListCategories returns all categories ordered by name.
	ListCategories() ([]*Category, error)

	// DeleteCategory removes a category, every link referencing it, and
	// reverts the denormalized category field of affected components to
	// unset, all in one transaction.
	DeleteCategory(id string) error

	// AssignCategory links a component to a category and syncs the
	// component's denormalized category display name in the same
	// transaction. Idempotent: an existing link is a no-op.
	AssignCategory(componentID, categoryID string) error

	// Unlink removes the component↔category link if present. Idempotent.
	Unlink(componentID, categoryID string) error

	// CategoriesFor returns the categories linked to a component.
	CategoriesFor(componentID string) ([]*Category, error)

	// ComponentsFor returns the components linked to a category.
	ComponentsFor(categoryID string) ([]*Component, error)
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Entity operation errors.
var (
	ErrNotFound            = errors.New("entity not found")
	ErrInvalidID           = errors.New("invalid entity ID")
	ErrInvalidIdentifier   = errors.New("identifier must not be empty")
	ErrInvalidName         = errors.New("invalid name")
	ErrNegativePrice       = errors.New("price must not be negative")
	ErrDuplicateIdentifier = errors.New("identifier already in use")
	ErrDuplicateName       = errors.New("name already in use")
)
