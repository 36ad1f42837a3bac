// Unit tests for categories table operations, including rename propagation to
// the denormalized component category field.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/partsbin/pkg/types"
)

func TestCreateCategory(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, b *Backend)
	}{
		{
			name: "create populates ID and timestamps",
			check: func(t *testing.T, b *Backend) {
				cat, err := b.CreateCategory(&types.Category{
					Name:        "passives",
					Description: "Resistors, capacitors, inductors",
				})
				require.NoError(t, err)
				assert.NotEmpty(t, cat.CategoryID, "CategoryID should be populated")
				assert.False(t, cat.CreatedAt.IsZero())
			},
		},
		{
			name: "create persists to backend",
			check: func(t *testing.T, b *Backend) {
				created, err := b.CreateCategory(&types.Category{Name: "passives"})
				require.NoError(t, err)

				got, err := b.GetCategory(created.CategoryID)
				require.NoError(t, err)
				assert.Equal(t, "passives", got.Name)
			},
		},
		{
			name: "returned timestamps match a subsequent read",
			check: func(t *testing.T, b *Backend) {
				created, err := b.CreateCategory(&types.Category{Name: "passives"})
				require.NoError(t, err)

				got, err := b.GetCategory(created.CategoryID)
				require.NoError(t, err)
				assert.True(t, got.CreatedAt.Equal(created.CreatedAt),
					"persisted CreatedAt should equal the returned one")
				assert.True(t, got.UpdatedAt.Equal(created.UpdatedAt),
					"persisted UpdatedAt should equal the returned one")
			},
		},
		{
			name: "create returns ErrInvalidName for empty name",
			check: func(t *testing.T, b *Backend) {
				_, err := b.CreateCategory(&types.Category{Name: ""})
				assert.ErrorIs(t, err, types.ErrInvalidName)
			},
		},
		{
			name: "create returns ErrDuplicateName for reused name",
			check: func(t *testing.T, b *Backend) {
				_, err := b.CreateCategory(&types.Category{Name: "passives"})
				require.NoError(t, err)

				_, err = b.CreateCategory(&types.Category{Name: "passives"})
				assert.ErrorIs(t, err, types.ErrDuplicateName)
			},
		},
		{
			name: "create rejects a built-in category name",
			check: func(t *testing.T, b *Backend) {
				_, err := b.CreateCategory(&types.Category{Name: types.CategoryResistor})
				assert.ErrorIs(t, err, types.ErrDuplicateName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setupBackend(t)
			tt.check(t, b)
		})
	}
}

func TestUpdateCategory(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, b *Backend)
	}{
		{
			name: "update replaces name and description",
			check: func(t *testing.T, b *Backend) {
				cat, err := b.CreateCategory(&types.Category{Name: "passives"})
				require.NoError(t, err)

				got, err := b.UpdateCategory(cat.CategoryID, "passive parts", "new description")
				require.NoError(t, err)
				assert.Equal(t, "passive parts", got.Name)
				assert.Equal(t, "new description", got.Description)
			},
		},
		{
			name: "rename propagates to linked components",
			check: func(t *testing.T, b *Backend) {
				comp, err := b.InsertComponent(&types.Component{Identifier: "R10K"})
				require.NoError(t, err)
				cat, err := b.CreateCategory(&types.Category{Name: "passives"})
				require.NoError(t, err)
				require.NoError(t, b.AssignCategory(comp.ComponentID, cat.CategoryID))

				_, err = b.UpdateCategory(cat.CategoryID, "passive parts", "")
				require.NoError(t, err)

				got, err := b.FindComponent("R10K")
				require.NoError(t, err)
				assert.Equal(t, "passive parts", got.Category, "display name should follow rename")
			},
		},
		{
			name: "update returns ErrDuplicateName when colliding with another category",
			check: func(t *testing.T, b *Backend) {
				cat, err := b.CreateCategory(&types.Category{Name: "a"})
				require.NoError(t, err)
				_, err = b.CreateCategory(&types.Category{Name: "b"})
				require.NoError(t, err)

				_, err = b.UpdateCategory(cat.CategoryID, "b", "")
				assert.ErrorIs(t, err, types.ErrDuplicateName)
			},
		},
		{
			name: "update keeping the same name is allowed",
			check: func(t *testing.T, b *Backend) {
				cat, err := b.CreateCategory(&types.Category{Name: "passives"})
				require.NoError(t, err)

				got, err := b.UpdateCategory(cat.CategoryID, "passives", "updated text")
				require.NoError(t, err)
				assert.Equal(t, "updated text", got.Description)
			},
		},
		{
			name: "update returns ErrNotFound for unknown id",
			check: func(t *testing.T, b *Backend) {
				_, err := b.UpdateCategory("nonexistent-id", "name", "")
				assert.ErrorIs(t, err, types.ErrNotFound)
			},
		},
		{
			name: "update returns ErrInvalidName for empty name",
			check: func(t *testing.T, b *Backend) {
				cat, err := b.CreateCategory(&types.Category{Name: "passives"})
				require.NoError(t, err)

				_, err = b.UpdateCategory(cat.CategoryID, "", "")
				assert.ErrorIs(t, err, types.ErrInvalidName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setupBackend(t)
			tt.check(t, b)
		})
	}
}

func TestDeleteCategory(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, b *Backend)
	}{
		{
			name: "delete removes the category",
			check: func(t *testing.T, b *Backend) {
				cat, err := b.CreateCategory(&types.Category{Name: "passives"})
				require.NoError(t, err)

				require.NoError(t, b.DeleteCategory(cat.CategoryID))

				_, err = b.GetCategory(cat.CategoryID)
				assert.ErrorIs(t, err, types.ErrNotFound)
			},
		},
		{
			name: "delete cascades to links and clears component display names",
			check: func(t *testing.T, b *Backend) {
				comp, err := b.InsertComponent(&types.Component{Identifier: "R10K"})
				require.NoError(t, err)
				cat, err := b.CreateCategory(&types.Category{Name: "passives"})
				require.NoError(t, err)
				require.NoError(t, b.AssignCategory(comp.ComponentID, cat.CategoryID))

				require.NoError(t, b.DeleteCategory(cat.CategoryID))

				got, err := b.FindComponent("R10K")
				require.NoError(t, err)
				assert.Empty(t, got.Category, "display name should revert to unset")

				cats, err := b.CategoriesFor(comp.ComponentID)
				require.NoError(t, err)
				assert.Empty(t, cats)
			},
		},
		{
			name: "delete returns ErrNotFound for unknown id",
			check: func(t *testing.T, b *Backend) {
				err := b.DeleteCategory("nonexistent-id")
				assert.ErrorIs(t, err, types.ErrNotFound)
			},
		},
		{
			name: "delete returns ErrInvalidID for empty id",
			check: func(t *testing.T, b *Backend) {
				err := b.DeleteCategory("")
				assert.ErrorIs(t, err, types.ErrInvalidID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setupBackend(t)
			tt.check(t, b)
		})
	}
}

func TestListCategories(t *testing.T) {
	t.Run("list returns categories ordered by name", func(t *testing.T) {
		b := setupBackend(t)

		_, err := b.CreateCategory(&types.Category{Name: "zeners"})
		require.NoError(t, err)
		_, err = b.CreateCategory(&types.Category{Name: "arduinos"})
		require.NoError(t, err)

		cats, err := b.ListCategories()
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(cats), 2)
		for i := 1; i < len(cats); i++ {
			assert.LessOrEqual(t, cats[i-1].Name, cats[i].Name, "list should be name-ordered")
		}
	})
}
