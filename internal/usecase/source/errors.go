// Package source provides use cases for registering, updating, and removing
// monitored sources, keeping the persisted records and the running watchers
// in step.
package source

import "errors"

// Sentinel errors for source use case operations.
var (
	// ErrInvalidSourceID indicates that the provided source ID is invalid.
	// Source IDs must be positive integers.
	ErrInvalidSourceID = errors.New("invalid source ID")
)
