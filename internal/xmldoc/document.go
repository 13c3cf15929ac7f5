// Package xmldoc holds the wire representation of the shared data document
// and the load-whole / replace-whole access over it. Field values that need
// parsing (price, date, status) stay as text here; the store layer converts
// them and applies the row-skip policy.
package xmldoc

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

// Document is the in-memory tree of the whole data file. The root element
// is <source> with one child element per collection.
type Document struct {
	XMLName    xml.Name     `xml:"source"`
	Categories CategoryList `xml:"categories"`
	Products   ProductList  `xml:"products"`
	Suppliers  SupplierList `xml:"suppliers"`
	Orders     OrderList    `xml:"orders"`
}

// The list structs carry an XMLName field so Load can tell an absent
// collection element apart from a present-but-empty one.

// CategoryList is the <categories> collection.
type CategoryList struct {
	XMLName xml.Name         `xml:"categories"`
	Items   []CategoryRecord `xml:"category"`
}

// ProductList is the <products> collection.
type ProductList struct {
	XMLName xml.Name        `xml:"products"`
	Items   []ProductRecord `xml:"product"`
}

// SupplierList is the <suppliers> collection.
type SupplierList struct {
	XMLName xml.Name         `xml:"suppliers"`
	Items   []SupplierRecord `xml:"supplier"`
}

// OrderList is the <orders> collection.
type OrderList struct {
	XMLName xml.Name      `xml:"orders"`
	Items   []OrderRecord `xml:"order"`
}

// CategoryRecord is one persisted category row.
type CategoryRecord struct {
	ID          int    `xml:"id"`
	Name        string `xml:"name"`
	Description string `xml:"description"`
}

// ProductRecord is one persisted product row. Price stays textual so a
// money value survives round-trips without float drift.
type ProductRecord struct {
	ID          int    `xml:"id"`
	Name        string `xml:"name"`
	Description string `xml:"description"`
	Quantity    int    `xml:"quantity"`
	Price       string `xml:"price"`
	CategoryID  int    `xml:"categoryId"`
	SupplierID  int    `xml:"supplierId"`
}

// SupplierRecord is one persisted supplier row.
type SupplierRecord struct {
	ID            int    `xml:"id"`
	Name          string `xml:"name"`
	ContactPerson string `xml:"contactPerson"`
	Email         string `xml:"email"`
	Phone         string `xml:"phone"`
}

// OrderRecord is one persisted order row. OrderDate and Status stay
// textual; rows with unparseable values are still loadable.
type OrderRecord struct {
	ID         int    `xml:"id"`
	ProductID  int    `xml:"productId"`
	Quantity   int    `xml:"quantity"`
	OrderDate  string `xml:"orderDate"`
	SupplierID int    `xml:"supplierId"`
	Status     string `xml:"status"`
}

// Load reads and parses the whole document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	// A document missing a collection element is broken, not empty.
	for name, present := range map[string]bool{
		"categories": doc.Categories.XMLName.Local != "",
		"products":   doc.Products.XMLName.Local != "",
		"suppliers":  doc.Suppliers.XMLName.Local != "",
		"orders":     doc.Orders.XMLName.Local != "",
	} {
		if !present {
			return nil, fmt.Errorf("parsing %s: missing <%s> collection", path, name)
		}
	}
	return &doc, nil
}

// Save atomically replaces the document at path using the temp-file,
// fsync, rename pattern. Readers never observe a half-written file.
func Save(path string, doc *Document) error {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".source-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(xml.Header); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing document: %w", err)
	}
	if _, err := tmp.WriteString("\n"); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing trailing newline: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Init writes an empty document, all four collections present, when the
// file at path is missing or empty. An existing non-empty file is left
// untouched.
func Init(path string) error {
	info, err := os.Stat(path)
	if err == nil && info.Size() > 0 {
		return nil
	}
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	return Save(path, &Document{})
}
