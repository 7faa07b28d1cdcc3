// Package store provides page collection stores for FormPages.
package store

import (
	"context"
	"errors"

	"github.com/lazyvibe/formpages/internal/model"
)

// ErrNotFound is returned when no page has the requested id.
var ErrNotFound = errors.New("not found")

// PageStore owns the canonical, ordered page collection.
type PageStore interface {
	// List returns the pages in display order.
	List(ctx context.Context) ([]model.Page, error)
	// SetActive makes the page with the given id the only active page.
	SetActive(ctx context.Context, id string) error
	// Reorder moves the page at from to position to (post-removal index).
	Reorder(ctx context.Context, from, to int) error
	// InsertAfter creates a new page right after index.
	InsertAfter(ctx context.Context, index int) (*model.Page, error)
	// Rename changes the name of a page.
	Rename(ctx context.Context, id, name string) error
	// Duplicate copies a page and places the copy right after it.
	Duplicate(ctx context.Context, id string) (*model.Page, error)
	// Delete removes a page, refusing to remove the last one.
	Delete(ctx context.Context, id string) error
	// MoveToFront makes a page the first page.
	MoveToFront(ctx context.Context, id string) error
	// Close releases any resources held by the store.
	Close() error
}

// Reloader is implemented by stores backed by a file that may change
// outside the application.
type Reloader interface {
	// Reload re-reads the backing file and reports whether the pages changed.
	Reload(ctx context.Context) (bool, error)
}
