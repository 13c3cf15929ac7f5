package xmlstore

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestProductCRUD(t *testing.T) {
	store := newTestStore(t)
	products := store.Products()

	id, err := products.Create(types.Product{
		Name:        "Hammer",
		Description: "Claw hammer",
		Quantity:    5,
		Price:       price("9.99"),
		CategoryID:  1,
		SupplierID:  2,
	})
	require.NoError(t, err)
	require.Equal(t, 1, id)

	got, err := products.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Hammer", got.Name)
	assert.Equal(t, 5, got.Quantity)
	assert.True(t, got.Price.Equal(price("9.99")), "price should round-trip exactly")
	assert.Equal(t, 1, got.CategoryID)
	assert.Equal(t, 2, got.SupplierID)

	_, err = products.Create(types.Product{Name: "Hammer"})
	assert.ErrorIs(t, err, types.ErrDuplicateName)

	require.NoError(t, products.Update(types.Product{
		ID: id, Name: "Sledgehammer", Quantity: 2, Price: price("24.50"), CategoryID: 3, SupplierID: 4,
	}))
	got, err = products.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Sledgehammer", got.Name)
	assert.True(t, got.Price.Equal(price("24.50")))

	require.NoError(t, products.Delete(id))
	_, err = products.GetByID(id)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestSoftReferencesAreNotValidated(t *testing.T) {
	store := newTestStore(t)

	// No category 42 and no supplier 77 exist; the create still succeeds.
	id, err := store.Products().Create(types.Product{Name: "Orphan", CategoryID: 42, SupplierID: 77})
	require.NoError(t, err)

	got, err := store.Products().GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, 42, got.CategoryID)
	assert.Equal(t, 77, got.SupplierID)

	// The dangling references just produce empty joins downstream.
	details, err := store.Products().DetailsByID(id)
	require.NoError(t, err)
	assert.Empty(t, details)
}

func TestListByCategoryName(t *testing.T) {
	store := newTestStore(t)
	categories := store.Categories()
	products := store.Products()

	toolsID, err := categories.Create(types.Category{Name: "Tools"})
	require.NoError(t, err)
	gardenID, err := categories.Create(types.Category{Name: "Garden"})
	require.NoError(t, err)

	for _, p := range []types.Product{
		{Name: "Hammer", Price: price("9.99"), CategoryID: toolsID},
		{Name: "Wrench", Price: price("14.50"), CategoryID: toolsID},
		{Name: "Rake", Price: price("7.25"), CategoryID: gardenID},
		{Name: "Pliers", Price: price("9.99"), CategoryID: toolsID},
	} {
		_, err := products.Create(p)
		require.NoError(t, err)
	}

	t.Run("filters and sorts by price descending", func(t *testing.T) {
		got, err := products.ListByCategoryName("Tools")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Wrench", got[0].Name)
		// Equal prices keep document order.
		assert.Equal(t, "Hammer", got[1].Name)
		assert.Equal(t, "Pliers", got[2].Name)
	})

	t.Run("unknown category name yields empty, not an error", func(t *testing.T) {
		got, err := products.ListByCategoryName("Unknown")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("category name matching is exact", func(t *testing.T) {
		got, err := products.ListByCategoryName("tools")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestDetailsByID(t *testing.T) {
	store := newTestStore(t)

	categoryID, err := store.Categories().Create(types.Category{Name: "Tools"})
	require.NoError(t, err)
	supplierID, err := store.Suppliers().Create(types.Supplier{
		Name: "Acme", ContactPerson: "Ana", Email: "ana@acme.test", Phone: "555-0100",
	})
	require.NoError(t, err)
	productID, err := store.Products().Create(types.Product{
		Name: "Hammer", Description: "Claw hammer", Quantity: 5, Price: price("9.99"),
		CategoryID: categoryID, SupplierID: supplierID,
	})
	require.NoError(t, err)

	t.Run("no orders yields zero detail rows even when the product exists", func(t *testing.T) {
		details, err := store.Products().DetailsByID(productID)
		require.NoError(t, err)
		assert.Empty(t, details)
	})

	t.Run("one detail row per matched order", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			_, err := store.Orders().Create(types.Order{
				ProductID: productID, Quantity: 1, SupplierID: supplierID, Status: types.StatusPending,
			})
			require.NoError(t, err)
		}

		details, err := store.Products().DetailsByID(productID)
		require.NoError(t, err)
		require.Len(t, details, 2)
		row := details[0]
		assert.Equal(t, productID, row.ProductID)
		assert.Equal(t, "Hammer", row.Name)
		assert.Equal(t, "Claw hammer", row.Description)
		assert.Equal(t, 5, row.Quantity)
		assert.True(t, row.Price.Equal(price("9.99")))
		assert.Equal(t, "Tools", row.CategoryName)
		assert.Equal(t, "Acme", row.SupplierName)
		assert.Equal(t, "Ana", row.SupplierContactPerson)
	})

	t.Run("an order pointing at a missing supplier produces no row", func(t *testing.T) {
		_, err := store.Orders().Create(types.Order{
			ProductID: productID, Quantity: 1, SupplierID: 999, Status: types.StatusPending,
		})
		require.NoError(t, err)

		details, err := store.Products().DetailsByID(productID)
		require.NoError(t, err)
		assert.Len(t, details, 2, "the dangling order must not join")
	})
}

func TestMostOrdered(t *testing.T) {
	store := newTestStore(t)
	products := store.Products()
	orders := store.Orders()

	hammerID, err := products.Create(types.Product{Name: "Hammer"})
	require.NoError(t, err)
	sawID, err := products.Create(types.Product{Name: "Saw"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := orders.Create(types.Order{ProductID: sawID, Status: types.StatusPending})
		require.NoError(t, err)
	}
	_, err = orders.Create(types.Order{ProductID: hammerID, Status: types.StatusPending})
	require.NoError(t, err)

	t.Run("threshold is strictly greater-than", func(t *testing.T) {
		got, err := products.MostOrdered(2)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Saw", got[0].Name)

		got, err = products.MostOrdered(3)
		require.NoError(t, err)
		assert.Empty(t, got, "3 orders is not strictly greater than 3")
	})

	t.Run("result follows product document order", func(t *testing.T) {
		got, err := products.MostOrdered(0)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, hammerID, got[0].ID, "hammer comes first despite fewer orders")
		assert.Equal(t, sawID, got[1].ID)
	})
}

func TestListByMaxQuantity(t *testing.T) {
	store := newTestStore(t)
	products := store.Products()

	_, err := products.Create(types.Product{Name: "Hammer", Quantity: 5, Price: price("9.99"), CategoryID: 1})
	require.NoError(t, err)

	t.Run("quantity below the bound is returned", func(t *testing.T) {
		got, err := products.ListByMaxQuantity(10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Hammer", got[0].Name)
	})

	t.Run("bound is strictly less-than", func(t *testing.T) {
		got, err := products.ListByMaxQuantity(5)
		require.NoError(t, err)
		assert.Empty(t, got, "5 is not < 5")
	})
}
