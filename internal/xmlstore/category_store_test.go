package xmlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func TestCategoryCRUD(t *testing.T) {
	store := newTestStore(t)
	categories := store.Categories()

	t.Run("create and read back round-trips", func(t *testing.T) {
		id, err := categories.Create(types.Category{Name: "Tools", Description: "Hand tools"})
		require.NoError(t, err)
		assert.Equal(t, 1, id, "first id should be 1")

		got, err := categories.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, types.Category{ID: 1, Name: "Tools", Description: "Hand tools"}, got)
	})

	t.Run("duplicate name is rejected and the collection unchanged", func(t *testing.T) {
		_, err := categories.Create(types.Category{Name: "Tools", Description: "again"})
		assert.ErrorIs(t, err, types.ErrDuplicateName)

		all, err := categories.List()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("name matching is case-sensitive", func(t *testing.T) {
		id, err := categories.Create(types.Category{Name: "tools"})
		require.NoError(t, err)
		assert.Equal(t, 2, id)
	})

	t.Run("update replaces every field but the id", func(t *testing.T) {
		err := categories.Update(types.Category{ID: 1, Name: "Hardware", Description: "Changed"})
		require.NoError(t, err)

		got, err := categories.GetByID(1)
		require.NoError(t, err)
		assert.Equal(t, "Hardware", got.Name)
		assert.Equal(t, "Changed", got.Description)
	})

	t.Run("update of an absent id reports not found", func(t *testing.T) {
		err := categories.Update(types.Category{ID: 99, Name: "Ghost"})
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, categories.Delete(2))
		_, err := categories.GetByID(2)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("delete of an absent id reports not found", func(t *testing.T) {
		assert.ErrorIs(t, categories.Delete(2), types.ErrNotFound)
	})
}

func TestCategoryIDAllocation(t *testing.T) {
	store := newTestStore(t)
	categories := store.Categories()

	// Allocation is max(current ids)+1, relative to current contents, not a
	// historical high-water mark.
	for i, name := range []string{"one", "two", "three"} {
		id, err := categories.Create(types.Category{Name: name})
		require.NoError(t, err)
		require.Equal(t, i+1, id)
	}

	require.NoError(t, categories.Delete(3))
	id, err := categories.Create(types.Category{Name: "four"})
	require.NoError(t, err)
	assert.Equal(t, 3, id, "id 3 should be reissued once its row is gone")

	// After all rows are deleted the sequence restarts at 1.
	for _, id := range []int{1, 2, 3} {
		require.NoError(t, categories.Delete(id))
	}
	id, err = categories.Create(types.Category{Name: "fresh"})
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestListWithProductCount(t *testing.T) {
	store := newTestStore(t)
	categories := store.Categories()
	products := store.Products()

	toolsID, err := categories.Create(types.Category{Name: "Tools"})
	require.NoError(t, err)
	gardenID, err := categories.Create(types.Category{Name: "Garden"})
	require.NoError(t, err)

	_, err = products.Create(types.Product{Name: "Hammer", CategoryID: toolsID})
	require.NoError(t, err)
	_, err = products.Create(types.Product{Name: "Saw", CategoryID: toolsID})
	require.NoError(t, err)

	counts, err := categories.ListWithProductCount()
	require.NoError(t, err)
	require.Len(t, counts, 2, "zero-product categories still appear")
	assert.Equal(t, types.CategoryWithProductCount{ID: toolsID, Name: "Tools", ProductCount: 2}, counts[0])
	assert.Equal(t, types.CategoryWithProductCount{ID: gardenID, Name: "Garden", ProductCount: 0}, counts[1])
}
