package xmlstore

import (
	"github.com/mesh-intelligence/stockroom/internal/xmldoc"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// CategoryStore provides CRUD and reporting over the categories collection.
type CategoryStore struct {
	store *Store
}

// List returns all categories in document order.
func (cs *CategoryStore) List() ([]types.Category, error) {
	out := []types.Category{}
	err := cs.store.view(func(doc *xmldoc.Document) error {
		for _, rec := range doc.Categories.Items {
			out = append(out, categoryFromRecord(rec))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns the category with the given id.
// Returns ErrNotFound if no such category exists.
func (cs *CategoryStore) GetByID(id int) (types.Category, error) {
	var out types.Category
	err := cs.store.view(func(doc *xmldoc.Document) error {
		for _, rec := range doc.Categories.Items {
			if rec.ID == id {
				out = categoryFromRecord(rec)
				return nil
			}
		}
		return types.ErrNotFound
	})
	return out, err
}

// Create appends a new category and returns the allocated id. The id is
// one more than the current maximum in the collection, so ids restart from
// 1 once the collection empties. Returns ErrDuplicateName when a category
// with the same name already exists; the document is left unchanged.
func (cs *CategoryStore) Create(c types.Category) (int, error) {
	var id int
	err := cs.store.mutate(func(doc *xmldoc.Document) (bool, error) {
		for _, rec := range doc.Categories.Items {
			if rec.Name == c.Name {
				return false, types.ErrDuplicateName
			}
		}
		id = maxCategoryID(doc) + 1
		doc.Categories.Items = append(doc.Categories.Items, xmldoc.CategoryRecord{
			ID:          id,
			Name:        c.Name,
			Description: c.Description,
		})
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update replaces every field except the id on the category matching c.ID.
// Returns ErrNotFound if no such category exists.
func (cs *CategoryStore) Update(c types.Category) error {
	return cs.store.mutate(func(doc *xmldoc.Document) (bool, error) {
		for i := range doc.Categories.Items {
			if doc.Categories.Items[i].ID == c.ID {
				doc.Categories.Items[i].Name = c.Name
				doc.Categories.Items[i].Description = c.Description
				return true, nil
			}
		}
		return false, types.ErrNotFound
	})
}

// Delete removes the category with the given id.
// Returns ErrNotFound if no such category exists.
func (cs *CategoryStore) Delete(id int) error {
	return cs.store.mutate(func(doc *xmldoc.Document) (bool, error) {
		for i, rec := range doc.Categories.Items {
			if rec.ID == id {
				doc.Categories.Items = append(doc.Categories.Items[:i], doc.Categories.Items[i+1:]...)
				return true, nil
			}
		}
		return false, types.ErrNotFound
	})
}

// ListWithProductCount returns every category, in document order, with the
// number of products referencing it. Categories with no products are
// included with a zero count.
func (cs *CategoryStore) ListWithProductCount() ([]types.CategoryWithProductCount, error) {
	out := []types.CategoryWithProductCount{}
	err := cs.store.view(func(doc *xmldoc.Document) error {
		for _, rec := range doc.Categories.Items {
			count := 0
			for _, p := range doc.Products.Items {
				if p.CategoryID == rec.ID {
					count++
				}
			}
			out = append(out, types.CategoryWithProductCount{
				ID:           rec.ID,
				Name:         rec.Name,
				ProductCount: count,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func categoryFromRecord(rec xmldoc.CategoryRecord) types.Category {
	return types.Category{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
	}
}

func maxCategoryID(doc *xmldoc.Document) int {
	max := 0
	for _, rec := range doc.Categories.Items {
		if rec.ID > max {
			max = rec.ID
		}
	}
	return max
}
