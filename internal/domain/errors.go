package domain

import "errors"

var (
	// ErrNotFound is returned when a by-id lookup, update or delete has no target.
	ErrNotFound = errors.New("not found")
	// ErrReferenceNotFound is returned when a foreign key does not resolve.
	ErrReferenceNotFound = errors.New("reference not found")
	// ErrInvalidFilterValue is returned when a filter parameter cannot be parsed.
	ErrInvalidFilterValue = errors.New("invalid filter value")
	// ErrInvalidPagination is returned when offset or limit is out of range.
	ErrInvalidPagination = errors.New("invalid pagination")
	ErrInvalidInput      = errors.New("invalid input")
	// ErrConflict is returned when a delete would leave dangling references.
	ErrConflict = errors.New("conflict")
)
