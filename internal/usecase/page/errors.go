// Package page provides use cases for the page pipeline: ingesting detected
// pages, archiving, read state, and deletion across the live and archive
// stores.
package page

import "errors"

// Sentinel errors for page use case operations.
var (
	// ErrPageNotFound indicates that the requested page was not found in
	// either store.
	ErrPageNotFound = errors.New("page not found")

	// ErrInvalidPageID indicates that the provided page ID is invalid.
	// Page IDs must be positive integers.
	ErrInvalidPageID = errors.New("invalid page ID")
)
