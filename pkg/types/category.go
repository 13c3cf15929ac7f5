package types

// Category groups products for browsing and reporting. Name is unique
// among categories; uniqueness is enforced on creation.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryWithProductCount is a category list row enriched with the number
// of products referencing the category. Derived, never persisted.
type CategoryWithProductCount struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ProductCount int    `json:"productCount"`
}
