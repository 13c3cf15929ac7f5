package xmlstore

import (
	"github.com/mesh-intelligence/stockroom/internal/xmldoc"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// SupplierStore provides CRUD and the product-quantity join over the
// suppliers collection.
type SupplierStore struct {
	store *Store
}

// List returns all suppliers in document order.
func (ss *SupplierStore) List() ([]types.Supplier, error) {
	out := []types.Supplier{}
	err := ss.store.view(func(doc *xmldoc.Document) error {
		for _, rec := range doc.Suppliers.Items {
			out = append(out, supplierFromRecord(rec))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns the supplier with the given id.
// Returns ErrNotFound if no such supplier exists.
func (ss *SupplierStore) GetByID(id int) (types.Supplier, error) {
	var out types.Supplier
	err := ss.store.view(func(doc *xmldoc.Document) error {
		for _, rec := range doc.Suppliers.Items {
			if rec.ID == id {
				out = supplierFromRecord(rec)
				return nil
			}
		}
		return types.ErrNotFound
	})
	return out, err
}

// Create appends a new supplier and returns the allocated id (current
// collection maximum plus one). Returns ErrDuplicateName when a supplier
// with the same name already exists; the document is left unchanged.
func (ss *SupplierStore) Create(s types.Supplier) (int, error) {
	var id int
	err := ss.store.mutate(func(doc *xmldoc.Document) (bool, error) {
		for _, rec := range doc.Suppliers.Items {
			if rec.Name == s.Name {
				return false, types.ErrDuplicateName
			}
		}
		id = maxSupplierID(doc) + 1
		doc.Suppliers.Items = append(doc.Suppliers.Items, xmldoc.SupplierRecord{
			ID:            id,
			Name:          s.Name,
			ContactPerson: s.ContactPerson,
			Email:         s.Email,
			Phone:         s.Phone,
		})
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update replaces every field except the id on the supplier matching s.ID.
// Returns ErrNotFound if no such supplier exists.
func (ss *SupplierStore) Update(s types.Supplier) error {
	return ss.store.mutate(func(doc *xmldoc.Document) (bool, error) {
		for i := range doc.Suppliers.Items {
			if doc.Suppliers.Items[i].ID == s.ID {
				doc.Suppliers.Items[i].Name = s.Name
				doc.Suppliers.Items[i].ContactPerson = s.ContactPerson
				doc.Suppliers.Items[i].Email = s.Email
				doc.Suppliers.Items[i].Phone = s.Phone
				return true, nil
			}
		}
		return false, types.ErrNotFound
	})
}

// Delete removes the supplier with the given id.
// Returns ErrNotFound if no such supplier exists.
func (ss *SupplierStore) Delete(id int) error {
	return ss.store.mutate(func(doc *xmldoc.Document) (bool, error) {
		for i, rec := range doc.Suppliers.Items {
			if rec.ID == id {
				doc.Suppliers.Items = append(doc.Suppliers.Items[:i], doc.Suppliers.Items[i+1:]...)
				return true, nil
			}
		}
		return false, types.ErrNotFound
	})
}

// ListWithMinProductQuantity inner-joins suppliers with their products and
// keeps the rows whose product quantity is at least minQuantity. A supplier
// with several qualifying products appears once per product; duplicates are
// expected and not collapsed.
func (ss *SupplierStore) ListWithMinProductQuantity(minQuantity int) ([]types.Supplier, error) {
	out := []types.Supplier{}
	err := ss.store.view(func(doc *xmldoc.Document) error {
		for _, srec := range doc.Suppliers.Items {
			for _, prec := range doc.Products.Items {
				if prec.SupplierID == srec.ID && prec.Quantity >= minQuantity {
					out = append(out, supplierFromRecord(srec))
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func supplierFromRecord(rec xmldoc.SupplierRecord) types.Supplier {
	return types.Supplier{
		ID:            rec.ID,
		Name:          rec.Name,
		ContactPerson: rec.ContactPerson,
		Email:         rec.Email,
		Phone:         rec.Phone,
	}
}

func maxSupplierID(doc *xmldoc.Document) int {
	max := 0
	for _, rec := range doc.Suppliers.Items {
		if rec.ID > max {
			max = rec.ID
		}
	}
	return max
}
