// Package errors provides the error types used outside the planner core.
//
// The planner itself never fails: its transitions absorb invalid input.
// Errors only arise at the edges of the application, when a catalog file is
// read or when a command line names an item that does not exist.
//
// # Error Types
//
//   - CatalogError: a catalog file could not be read, parsed or validated
//   - NotFoundError: a named catalog entry does not exist
//
// # Usage
//
//	err := errors.NewCatalogError("invalid entry", errors.ErrNegativeCost).
//		WithPath("catalog.yaml").
//		WithItem("venue", "Auditorium Hall")
//
//	if errors.Is(err, errors.ErrNegativeCost) { ... }
//
//	var catErr *errors.CatalogError
//	if errors.As(err, &catErr) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Catalog-related sentinel errors
var (
	// ErrEmptyCatalog indicates a catalog without any entries.
	ErrEmptyCatalog = New("catalog has no entries")
	// ErrMissingName indicates an entry without a name.
	ErrMissingName = New("entry name is required")
	// ErrDuplicateName indicates two entries with the same name in one section.
	ErrDuplicateName = New("duplicate entry name")
	// ErrNegativeCost indicates an entry with a cost below zero.
	ErrNegativeCost = New("cost must not be negative")
	// ErrNegativeCap indicates a venue entry with a cap below zero.
	ErrNegativeCap = New("cap must not be negative")
	// ErrUnsupportedVersion indicates a catalog file format this build cannot read.
	ErrUnsupportedVersion = New("unsupported catalog version")
)

// General sentinel errors
var (
	// ErrNotFound indicates that a named resource does not exist.
	ErrNotFound = New("not found")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// CatalogError describes a problem with a catalog file or one of its entries.
//
// Example:
//
//	err := errors.NewCatalogError("invalid entry", errors.ErrDuplicateName).WithItem("av", "Speaker")
//	fmt.Println(err) // "catalog error [section=av, item=Speaker]: invalid entry: duplicate entry name"
type CatalogError struct {
	Message string
	Path    string
	Section string
	Item    string
	cause   error
}

// NewCatalogError creates a new CatalogError.
func NewCatalogError(message string, cause error) *CatalogError {
	return &CatalogError{Message: message, cause: cause}
}

// WithPath adds the catalog file path to the error context.
func (e *CatalogError) WithPath(path string) *CatalogError {
	e.Path = path
	return e
}

// WithItem adds the offending section and entry name to the error context.
func (e *CatalogError) WithItem(section, name string) *CatalogError {
	e.Section = section
	e.Item = name
	return e
}

// Error returns the formatted error message.
func (e *CatalogError) Error() string {
	var parts []string
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}
	if e.Section != "" {
		parts = append(parts, fmt.Sprintf("section=%s", e.Section))
	}
	if e.Item != "" {
		parts = append(parts, fmt.Sprintf("item=%s", e.Item))
	}

	prefix := "catalog error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("catalog error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying error.
func (e *CatalogError) Unwrap() error {
	return e.cause
}

// NotFoundError indicates that a named entry does not exist.
type NotFoundError struct {
	Kind string
	Name string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(kind, name string) *NotFoundError {
	return &NotFoundError{Kind: kind, Name: name}
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IsNotFound reports whether any error in err's chain is a not-found error.
func IsNotFound(err error) bool {
	return Is(err, ErrNotFound)
}

// IsCatalogError reports whether any error in err's chain is a CatalogError.
func IsCatalogError(err error) bool {
	var catErr *CatalogError
	return As(err, &catErr)
}
