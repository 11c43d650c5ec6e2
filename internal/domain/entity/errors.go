package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain layer operations. Concrete error types below
// implement Is against these so callers can branch with errors.Is without
// losing the contextual fields.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyExists indicates a uniqueness conflict on insert
	ErrAlreadyExists = errors.New("entity already exists")
)

// ValidationError represents a validation error with detailed field information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NotFoundError reports that a mutation or lookup targeted an id or name
// absent from the store. It is always surfaced to the caller, never swallowed.
type NotFoundError struct {
	Resource string // "source", "page", "category"
	ID       int64
	Name     string
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s not found (name: %s)", e.Resource, e.Name)
	}
	return fmt.Sprintf("%s not found (id: %d)", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// CrawlTargetError reports that a source's configured crawl URL was
// unreachable or unparseable at registration-verification time.
type CrawlTargetError struct {
	CrawlURL string
	Err      error
}

func (e *CrawlTargetError) Error() string {
	return fmt.Sprintf("invalid crawl URL %q: %v", e.CrawlURL, e.Err)
}

func (e *CrawlTargetError) Unwrap() error { return e.Err }

func (e *CrawlTargetError) Is(target error) bool { return target == ErrInvalidInput }

// SelectorError reports that a selector rule matched nothing, or that the
// matched element lacked the expected link attribute.
type SelectorError struct {
	Selector string
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("invalid selector %q: no matching item link", e.Selector)
}

func (e *SelectorError) Is(target error) bool { return target == ErrInvalidInput }

// RemoteURLError reports a failed metadata-extraction fetch for a URL supplied
// by a caller or discovered by a watcher.
type RemoteURLError struct {
	URL string
	Err error
}

func (e *RemoteURLError) Error() string {
	return fmt.Sprintf("invalid page URL %q: %v", e.URL, e.Err)
}

func (e *RemoteURLError) Unwrap() error { return e.Err }

func (e *RemoteURLError) Is(target error) bool { return target == ErrInvalidInput }

// AlreadyExistsError reports a uniqueness conflict, e.g. inserting a category
// name that is already registered without the ignore-if-exists option.
type AlreadyExistsError struct {
	Resource string
	Name     string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Resource, e.Name)
}

func (e *AlreadyExistsError) Is(target error) bool { return target == ErrAlreadyExists }

// MissingFieldsError reports that a caller-supplied record omits one or more
// mandatory fields. All missing names are carried so the caller sees the full
// list at once.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields (%s)", strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Is(target error) bool { return target == ErrInvalidInput }
