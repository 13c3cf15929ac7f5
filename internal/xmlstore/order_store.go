package xmlstore

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/stockroom/internal/xmldoc"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// OrderStore provides CRUD and the supplier/date filters over the orders
// collection.
type OrderStore struct {
	store *Store
}

// List returns all orders in document order. Rows whose date or status
// does not parse are skipped; a bulk read never fails on one bad row.
func (ot *OrderStore) List() ([]types.Order, error) {
	out := []types.Order{}
	err := ot.store.view(func(doc *xmldoc.Document) error {
		for _, rec := range doc.Orders.Items {
			o, err := orderFromRecord(rec)
			if err != nil {
				continue
			}
			out = append(out, o)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns the order with the given id. Returns ErrNotFound if no
// such order exists, or an ErrMalformedRow-wrapped error when the row is
// present but its date or status does not parse.
func (ot *OrderStore) GetByID(id int) (types.Order, error) {
	var out types.Order
	err := ot.store.view(func(doc *xmldoc.Document) error {
		for _, rec := range doc.Orders.Items {
			if rec.ID == id {
				o, err := orderFromRecord(rec)
				if err != nil {
					return err
				}
				out = o
				return nil
			}
		}
		return types.ErrNotFound
	})
	return out, err
}

// Create appends a new order and returns the allocated id (current
// collection maximum plus one). Orders carry no name, so no uniqueness
// constraint applies. The status must be a recognized value; an unknown
// status is rejected with ErrInvalidStatus before the file is touched.
func (ot *OrderStore) Create(o types.Order) (int, error) {
	if !o.Status.Valid() {
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidStatus, o.Status)
	}
	var id int
	err := ot.store.mutate(func(doc *xmldoc.Document) (bool, error) {
		id = maxOrderID(doc) + 1
		doc.Orders.Items = append(doc.Orders.Items, orderToRecord(id, o))
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update replaces every field except the id on the order matching o.ID.
// Returns ErrNotFound if no such order exists and ErrInvalidStatus when
// the new status is not a recognized value.
func (ot *OrderStore) Update(o types.Order) error {
	if !o.Status.Valid() {
		return fmt.Errorf("%w: %q", types.ErrInvalidStatus, o.Status)
	}
	return ot.store.mutate(func(doc *xmldoc.Document) (bool, error) {
		for i := range doc.Orders.Items {
			if doc.Orders.Items[i].ID == o.ID {
				doc.Orders.Items[i] = orderToRecord(o.ID, o)
				return true, nil
			}
		}
		return false, types.ErrNotFound
	})
}

// Delete removes the order with the given id.
// Returns ErrNotFound if no such order exists.
func (ot *OrderStore) Delete(id int) error {
	return ot.store.mutate(func(doc *xmldoc.Document) (bool, error) {
		for i, rec := range doc.Orders.Items {
			if rec.ID == id {
				doc.Orders.Items = append(doc.Orders.Items[:i], doc.Orders.Items[i+1:]...)
				return true, nil
			}
		}
		return false, types.ErrNotFound
	})
}

// ListBySupplierAndStatus returns the orders for one supplier whose
// persisted status equals the requested status. Rows with an unparseable
// status or date are silently excluded, matching the bulk-read policy.
func (ot *OrderStore) ListBySupplierAndStatus(supplierID int, status types.OrderStatus) ([]types.Order, error) {
	out := []types.Order{}
	err := ot.store.view(func(doc *xmldoc.Document) error {
		for _, rec := range doc.Orders.Items {
			if rec.SupplierID != supplierID {
				continue
			}
			o, err := orderFromRecord(rec)
			if err != nil {
				continue
			}
			if o.Status == status {
				out = append(out, o)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByDateRange returns the orders dated within [start, end]; both
// bounds are inclusive. Rows with an unparseable date or status are
// silently excluded.
func (ot *OrderStore) ListByDateRange(start, end time.Time) ([]types.Order, error) {
	out := []types.Order{}
	err := ot.store.view(func(doc *xmldoc.Document) error {
		for _, rec := range doc.Orders.Items {
			o, err := orderFromRecord(rec)
			if err != nil {
				continue
			}
			if o.OrderDate.Before(start) || o.OrderDate.After(end) {
				continue
			}
			out = append(out, o)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func orderFromRecord(rec xmldoc.OrderRecord) (types.Order, error) {
	when, err := time.Parse(time.RFC3339, rec.OrderDate)
	if err != nil {
		return types.Order{}, fmt.Errorf("%w: order %d: bad date %q", types.ErrMalformedRow, rec.ID, rec.OrderDate)
	}
	status, err := types.ParseOrderStatus(rec.Status)
	if err != nil {
		return types.Order{}, fmt.Errorf("%w: order %d: %v", types.ErrMalformedRow, rec.ID, err)
	}
	return types.Order{
		ID:         rec.ID,
		ProductID:  rec.ProductID,
		Quantity:   rec.Quantity,
		OrderDate:  when,
		SupplierID: rec.SupplierID,
		Status:     status,
	}, nil
}

func orderToRecord(id int, o types.Order) xmldoc.OrderRecord {
	return xmldoc.OrderRecord{
		ID:         id,
		ProductID:  o.ProductID,
		Quantity:   o.Quantity,
		OrderDate:  o.OrderDate.Format(time.RFC3339),
		SupplierID: o.SupplierID,
		Status:     string(o.Status),
	}
}

func maxOrderID(doc *xmldoc.Document) int {
	max := 0
	for _, rec := range doc.Orders.Items {
		if rec.ID > max {
			max = rec.ID
		}
	}
	return max
}
