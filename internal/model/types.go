// Package model defines core data structures for FormPages.
package model

import "errors"

var (
	// ErrIndexOutOfRange is returned when a position does not address an existing page.
	ErrIndexOutOfRange = errors.New("page index out of range")
	// ErrLastPage is returned when deleting would leave the collection empty.
	ErrLastPage = errors.New("cannot delete the last page")
	// ErrDuplicateID is returned when a new page would reuse an existing id.
	ErrDuplicateID = errors.New("page id already exists")
	// ErrInvalidPages is returned by Validate when an invariant is broken.
	ErrInvalidPages = errors.New("invalid page collection")
)

const (
	// CopySuffix is appended to the name of a duplicated page.
	CopySuffix = " Copy"
	// NewPageNameFormat names pages created by InsertAfter.
	NewPageNameFormat = "Page %d"
)
