package types

import "errors"

// Store operation errors. ErrNotFound and ErrDuplicateName are expected,
// recoverable outcomes; ErrStoreUnavailable wraps I/O and document-parse
// failures so callers can tell "no data" from "broken store".
var (
	ErrNotFound         = errors.New("entity not found")
	ErrDuplicateName    = errors.New("name already exists")
	ErrInvalidID        = errors.New("invalid entity ID")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Row-level errors. ErrMalformedRow marks a persisted record whose field
// text cannot be parsed (bad date, price, or status). Bulk queries skip
// such rows; single-row reads surface the error.
var (
	ErrMalformedRow  = errors.New("malformed row")
	ErrInvalidStatus = errors.New("invalid order status")
)

// Config validation errors.
var (
	ErrDataPathEmpty = errors.New("data path must not be empty")
)
