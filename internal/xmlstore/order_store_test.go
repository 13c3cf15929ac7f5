package xmlstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/internal/xmldoc"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestOrderCRUD(t *testing.T) {
	store := newTestStore(t)
	orders := store.Orders()

	when := day("2024-03-01")
	id, err := orders.Create(types.Order{
		ProductID: 1, Quantity: 3, OrderDate: when, SupplierID: 2, Status: types.StatusPending,
	})
	require.NoError(t, err)
	require.Equal(t, 1, id)

	got, err := orders.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ProductID)
	assert.Equal(t, 3, got.Quantity)
	assert.True(t, got.OrderDate.Equal(when), "order date should round-trip")
	assert.Equal(t, types.StatusPending, got.Status)

	require.NoError(t, orders.Update(types.Order{
		ID: id, ProductID: 1, Quantity: 5, OrderDate: when, SupplierID: 2, Status: types.StatusShipped,
	}))
	got, err = orders.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Quantity)
	assert.Equal(t, types.StatusShipped, got.Status)

	assert.ErrorIs(t, orders.Update(types.Order{ID: 9, Status: types.StatusPending}), types.ErrNotFound)

	require.NoError(t, orders.Delete(id))
	_, err = orders.GetByID(id)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestOrderCreateHasNoUniquenessConstraint(t *testing.T) {
	store := newTestStore(t)
	orders := store.Orders()

	// Two identical orders are both accepted; orders have no natural name.
	o := types.Order{ProductID: 1, Quantity: 1, OrderDate: day("2024-03-01"), SupplierID: 1, Status: types.StatusPending}
	first, err := orders.Create(o)
	require.NoError(t, err)
	second, err := orders.Create(o)
	require.NoError(t, err)
	assert.Equal(t, first+1, second)
}

func TestOrderCreateRejectsUnknownStatus(t *testing.T) {
	store := newTestStore(t)
	orders := store.Orders()

	_, err := orders.Create(types.Order{ProductID: 1, Status: types.OrderStatus("Lost")})
	assert.ErrorIs(t, err, types.ErrInvalidStatus)

	all, err := orders.List()
	require.NoError(t, err)
	assert.Empty(t, all, "rejected create must leave the store unchanged")
}

func TestListBySupplierAndStatus(t *testing.T) {
	store := newTestStore(t)
	orders := store.Orders()

	for _, o := range []types.Order{
		{ProductID: 1, OrderDate: day("2024-03-01"), SupplierID: 1, Status: types.StatusPending},
		{ProductID: 2, OrderDate: day("2024-03-02"), SupplierID: 1, Status: types.StatusShipped},
		{ProductID: 3, OrderDate: day("2024-03-03"), SupplierID: 2, Status: types.StatusPending},
		{ProductID: 4, OrderDate: day("2024-03-04"), SupplierID: 1, Status: types.StatusPending},
	} {
		_, err := orders.Create(o)
		require.NoError(t, err)
	}

	got, err := orders.ListBySupplierAndStatus(1, types.StatusPending)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ProductID)
	assert.Equal(t, 4, got[1].ProductID)

	got, err = orders.ListBySupplierAndStatus(3, types.StatusPending)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListByDateRange(t *testing.T) {
	store := newTestStore(t)
	orders := store.Orders()

	for _, d := range []string{"2024-03-01", "2024-03-05", "2024-03-10"} {
		_, err := orders.Create(types.Order{ProductID: 1, OrderDate: day(d), SupplierID: 1, Status: types.StatusPending})
		require.NoError(t, err)
	}

	t.Run("bounds are inclusive", func(t *testing.T) {
		got, err := orders.ListByDateRange(day("2024-03-01"), day("2024-03-10"))
		require.NoError(t, err)
		assert.Len(t, got, 3, "orders dated exactly at start and end are included")

		got, err = orders.ListByDateRange(day("2024-03-02"), day("2024-03-09"))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].OrderDate.Equal(day("2024-03-05")))
	})

	t.Run("empty range yields empty", func(t *testing.T) {
		got, err := orders.ListByDateRange(day("2024-04-01"), day("2024-04-30"))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

// seedMalformedOrders writes a document containing one good order and two
// rows with unparseable field text, bypassing the store's write-side
// validation the way a hand-edited file would.
func seedMalformedOrders(t *testing.T, store *Store) {
	t.Helper()
	doc := &xmldoc.Document{
		Orders: xmldoc.OrderList{Items: []xmldoc.OrderRecord{
			{ID: 1, ProductID: 1, Quantity: 1, OrderDate: "2024-03-01T00:00:00Z", SupplierID: 1, Status: "Pending"},
			{ID: 2, ProductID: 1, Quantity: 1, OrderDate: "03/05/2024", SupplierID: 1, Status: "Pending"},
			{ID: 3, ProductID: 1, Quantity: 1, OrderDate: "2024-03-07T00:00:00Z", SupplierID: 1, Status: "Misplaced"},
		}},
	}
	require.NoError(t, xmldoc.Save(store.Path(), doc))
}

func TestMalformedRowsAreSkippedInBulkReads(t *testing.T) {
	store := newTestStore(t)
	seedMalformedOrders(t, store)
	orders := store.Orders()

	all, err := orders.List()
	require.NoError(t, err)
	require.Len(t, all, 1, "bad date and bad status rows are excluded")
	assert.Equal(t, 1, all[0].ID)

	byStatus, err := orders.ListBySupplierAndStatus(1, types.StatusPending)
	require.NoError(t, err)
	assert.Len(t, byStatus, 1)

	byDate, err := orders.ListByDateRange(day("2024-03-01"), day("2024-03-31"))
	require.NoError(t, err)
	assert.Len(t, byDate, 1, "one bad row must not abort the whole query")
}

func TestMalformedRowSurfacesOnSingleRead(t *testing.T) {
	store := newTestStore(t)
	seedMalformedOrders(t, store)
	orders := store.Orders()

	_, err := orders.GetByID(2)
	assert.ErrorIs(t, err, types.ErrMalformedRow)
	assert.NotErrorIs(t, err, types.ErrNotFound)

	_, err = orders.GetByID(3)
	assert.ErrorIs(t, err, types.ErrMalformedRow)
}
