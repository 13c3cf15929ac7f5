// Package xmlstore implements the four entity stores over one shared XML
// document. Every operation reloads the document fresh; every mutation
// rewrites it in full behind the store lock, so two overlapping writers
// cannot lose each other's changes.
package xmlstore

import (
	"fmt"
	"sync"

	"github.com/mesh-intelligence/stockroom/internal/xmldoc"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Store is the handle for one data document. All four entity stores share
// it; the embedded lock is the single serialization point for the file.
type Store struct {
	mu   sync.RWMutex
	path string
}

// Open returns a store handle for the document at cfg.DataPath. When the
// file is missing or empty it is initialized with an empty document.
func Open(cfg types.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := xmldoc.Init(cfg.DataPath); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrStoreUnavailable, err)
	}
	return &Store{path: cfg.DataPath}, nil
}

// Path returns the document location the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Categories returns the category store over this handle.
func (s *Store) Categories() *CategoryStore {
	return &CategoryStore{store: s}
}

// Products returns the product store over this handle.
func (s *Store) Products() *ProductStore {
	return &ProductStore{store: s}
}

// Suppliers returns the supplier store over this handle.
func (s *Store) Suppliers() *SupplierStore {
	return &SupplierStore{store: s}
}

// Orders returns the order store over this handle.
func (s *Store) Orders() *OrderStore {
	return &OrderStore{store: s}
}

// view runs fn against a freshly loaded document under the read lock.
func (s *Store) view(fn func(doc *xmldoc.Document) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(doc)
}

// mutate runs fn against a freshly loaded document under the write lock
// and persists the tree when fn reports it changed. A failing fn leaves
// the file untouched.
func (s *Store) mutate(fn func(doc *xmldoc.Document) (changed bool, err error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	changed, err := fn(doc)
	if err != nil || !changed {
		return err
	}
	if err := xmldoc.Save(s.path, doc); err != nil {
		return fmt.Errorf("%w: %v", types.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Store) load() (*xmldoc.Document, error) {
	doc, err := xmldoc.Load(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrStoreUnavailable, err)
	}
	return doc, nil
}
