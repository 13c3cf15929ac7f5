package types

// Supplier is a product source. Name is unique among suppliers; uniqueness
// is enforced on creation.
type Supplier struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}
