package xmlstore

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/stockroom/internal/xmldoc"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// ProductStore provides CRUD and the cross-collection queries over the
// products collection.
type ProductStore struct {
	store *Store
}

// List returns all products in document order. Rows with an unparseable
// price are skipped.
func (ps *ProductStore) List() ([]types.Product, error) {
	out := []types.Product{}
	err := ps.store.view(func(doc *xmldoc.Document) error {
		for _, rec := range doc.Products.Items {
			p, err := productFromRecord(rec)
			if err != nil {
				continue
			}
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns the product with the given id. Returns ErrNotFound if no
// such product exists, or an ErrMalformedRow-wrapped error when the row is
// present but its price does not parse.
func (ps *ProductStore) GetByID(id int) (types.Product, error) {
	var out types.Product
	err := ps.store.view(func(doc *xmldoc.Document) error {
		for _, rec := range doc.Products.Items {
			if rec.ID == id {
				p, err := productFromRecord(rec)
				if err != nil {
					return err
				}
				out = p
				return nil
			}
		}
		return types.ErrNotFound
	})
	return out, err
}

// Create appends a new product and returns the allocated id (current
// collection maximum plus one). Returns ErrDuplicateName when a product
// with the same name already exists; the document is left unchanged.
// CategoryID and SupplierID are stored as given, without checking the
// referenced collections.
func (ps *ProductStore) Create(p types.Product) (int, error) {
	var id int
	err := ps.store.mutate(func(doc *xmldoc.Document) (bool, error) {
		for _, rec := range doc.Products.Items {
			if rec.Name == p.Name {
				return false, types.ErrDuplicateName
			}
		}
		id = maxProductID(doc) + 1
		doc.Products.Items = append(doc.Products.Items, productToRecord(id, p))
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update replaces every field except the id on the product matching p.ID.
// Returns ErrNotFound if no such product exists.
func (ps *ProductStore) Update(p types.Product) error {
	return ps.store.mutate(func(doc *xmldoc.Document) (bool, error) {
		for i := range doc.Products.Items {
			if doc.Products.Items[i].ID == p.ID {
				doc.Products.Items[i] = productToRecord(p.ID, p)
				return true, nil
			}
		}
		return false, types.ErrNotFound
	})
}

// Delete removes the product with the given id.
// Returns ErrNotFound if no such product exists.
func (ps *ProductStore) Delete(id int) error {
	return ps.store.mutate(func(doc *xmldoc.Document) (bool, error) {
		for i, rec := range doc.Products.Items {
			if rec.ID == id {
				doc.Products.Items = append(doc.Products.Items[:i], doc.Products.Items[i+1:]...)
				return true, nil
			}
		}
		return false, types.ErrNotFound
	})
}

// ListByCategoryName resolves the category by exact name (first match) and
// returns its products sorted by price, highest first; price ties keep
// document order. An unknown category name yields an empty result, not an
// error.
func (ps *ProductStore) ListByCategoryName(categoryName string) ([]types.Product, error) {
	out := []types.Product{}
	err := ps.store.view(func(doc *xmldoc.Document) error {
		categoryID := 0
		found := false
		for _, rec := range doc.Categories.Items {
			if rec.Name == categoryName {
				categoryID = rec.ID
				found = true
				break
			}
		}
		if !found {
			return nil
		}
		for _, rec := range doc.Products.Items {
			if rec.CategoryID != categoryID {
				continue
			}
			p, err := productFromRecord(rec)
			if err != nil {
				continue
			}
			out = append(out, p)
		}
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.GreaterThan(out[j].Price)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DetailsByID inner-joins the product with its category, its orders, and
// the supplier of each order. The join runs through orders, so a product
// with no order history yields an empty result even when it exists;
// callers cannot tell "no product" from "no orders yet" here.
func (ps *ProductStore) DetailsByID(productID int) ([]types.ProductDetails, error) {
	out := []types.ProductDetails{}
	err := ps.store.view(func(doc *xmldoc.Document) error {
		for _, prec := range doc.Products.Items {
			if prec.ID != productID {
				continue
			}
			p, err := productFromRecord(prec)
			if err != nil {
				continue
			}
			for _, crec := range doc.Categories.Items {
				if crec.ID != p.CategoryID {
					continue
				}
				for _, orec := range doc.Orders.Items {
					if orec.ProductID != p.ID {
						continue
					}
					for _, srec := range doc.Suppliers.Items {
						if srec.ID != orec.SupplierID {
							continue
						}
						out = append(out, types.ProductDetails{
							ProductID:             p.ID,
							Name:                  p.Name,
							Description:           p.Description,
							Price:                 p.Price,
							Quantity:              p.Quantity,
							CategoryName:          crec.Name,
							SupplierName:          srec.Name,
							SupplierContactPerson: srec.ContactPerson,
						})
					}
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

// MostOrdered groups orders by product id and returns the products ordered
// strictly more than minOrders times. The result follows product document
// order, not order frequency.
func (ps *ProductStore) MostOrdered(minOrders int) ([]types.Product, error) {
	out := []types.Product{}
	err := ps.store.view(func(doc *xmldoc.Document) error {
		counts := make(map[int]int)
		for _, rec := range doc.Orders.Items {
			counts[rec.ProductID]++
		}
		for _, rec := range doc.Products.Items {
			if counts[rec.ID] <= minOrders {
				continue
			}
			p, err := productFromRecord(rec)
			if err != nil {
				continue
			}
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByMaxQuantity returns the products whose quantity is strictly less
// than maxQuantity.
func (ps *ProductStore) ListByMaxQuantity(maxQuantity int) ([]types.Product, error) {
	out := []types.Product{}
	err := ps.store.view(func(doc *xmldoc.Document) error {
		for _, rec := range doc.Products.Items {
			if rec.Quantity >= maxQuantity {
				continue
			}
			p, err := productFromRecord(rec)
			if err != nil {
				continue
			}
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func productFromRecord(rec xmldoc.ProductRecord) (types.Product, error) {
	price, err := decimal.NewFromString(rec.Price)
	if err != nil {
		return types.Product{}, fmt.Errorf("%w: product %d: bad price %q", types.ErrMalformedRow, rec.ID, rec.Price)
	}
	return types.Product{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Quantity:    rec.Quantity,
		Price:       price,
		CategoryID:  rec.CategoryID,
		SupplierID:  rec.SupplierID,
	}, nil
}

func productToRecord(id int, p types.Product) xmldoc.ProductRecord {
	return xmldoc.ProductRecord{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
		Quantity:    p.Quantity,
		Price:       p.Price.String(),
		CategoryID:  p.CategoryID,
		SupplierID:  p.SupplierID,
	}
}

func maxProductID(doc *xmldoc.Document) int {
	max := 0
	for _, rec := range doc.Products.Items {
		if rec.ID > max {
			max = rec.ID
		}
	}
	return max
}
