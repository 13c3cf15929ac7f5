package types

import "github.com/shopspring/decimal"

// Product is a stocked item. CategoryID and SupplierID are soft references:
// they are never validated against the referenced collections, and dangling
// values simply produce empty join results downstream.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int             `json:"categoryId"`
	SupplierID  int             `json:"supplierId"`
}

// ProductDetails is a product row joined across categories, orders, and
// suppliers. The join runs through orders, so a product with no order
// history yields zero detail rows even when the product exists.
type ProductDetails struct {
	ProductID             int             `json:"productId"`
	Name                  string          `json:"name"`
	Description           string          `json:"description"`
	Price                 decimal.Decimal `json:"price"`
	Quantity              int             `json:"quantity"`
	CategoryName          string          `json:"categoryName"`
	SupplierName          string          `json:"supplierName"`
	SupplierContactPerson string          `json:"supplierContactPerson"`
}
