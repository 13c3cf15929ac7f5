// Package types defines the persisted entities, derived query rows,
// store configuration, and standard errors for the stockroom system.
package types
