package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/lazyvibe/formpages/internal/logger"
	"github.com/lazyvibe/formpages/internal/model"
	"go.uber.org/zap"
)

// maxIDAttempts bounds retries when the id generator returns a taken id.
const maxIDAttempts = 8

// Option configures a store.
type Option func(*MemoryStore)

// WithIDFunc overrides the page id generator.
func WithIDFunc(fn func() string) Option {
	return func(s *MemoryStore) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithLogger sets the logger used for mutation tracing.
func WithLogger(l *zap.Logger) Option {
	return func(s *MemoryStore) {
		s.log = logger.Module(l, "store")
	}
}

// MemoryStore implements PageStore in memory.
type MemoryStore struct {
	pages model.Pages
	newID func() string
	log   *zap.Logger
}

// NewMemoryStore creates a store holding seed, or the default seed pages
// when seed is empty.
func NewMemoryStore(seed []model.Page, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		newID: model.NewPageID,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Replace(seed)
	return s
}

// Replace swaps the whole collection, normalizing it first.
func (s *MemoryStore) Replace(pages []model.Page) {
	if len(pages) == 0 {
		s.pages = model.SeedPages()
		return
	}
	normalized, changed := model.Pages(pages).Normalize()
	if changed {
		s.log.Warn("normalized page collection", zap.Int("count", len(normalized)))
	}
	s.pages = normalized
}

// Pages returns a copy of the current collection.
func (s *MemoryStore) Pages() model.Pages {
	out := make(model.Pages, len(s.pages))
	copy(out, s.pages)
	return out
}

// List returns the pages in display order.
func (s *MemoryStore) List(_ context.Context) ([]model.Page, error) {
	return s.Pages(), nil
}

// SetActive makes the page with the given id active.
func (s *MemoryStore) SetActive(_ context.Context, id string) error {
	if s.pages.IndexOf(id) < 0 {
		return s.notFound("set active", id)
	}
	s.pages = s.pages.SetActive(id)
	s.log.Debug("page activated", zap.String("page_id", id))
	return nil
}

// Reorder moves the page at from to position to.
func (s *MemoryStore) Reorder(_ context.Context, from, to int) error {
	pages, err := s.pages.Reorder(from, to)
	if err != nil {
		s.log.Error("reorder rejected", zap.Int("from", from), zap.Int("to", to), zap.Error(err))
		return err
	}
	s.pages = pages
	s.log.Debug("page reordered", zap.Int("from", from), zap.Int("to", to))
	return nil
}

// InsertAfter creates a new page right after index.
func (s *MemoryStore) InsertAfter(_ context.Context, index int) (*model.Page, error) {
	id, err := s.freshID()
	if err != nil {
		return nil, err
	}
	pages, err := s.pages.InsertAfter(index, id)
	if err != nil {
		s.log.Error("insert rejected", zap.Int("after", index), zap.Error(err))
		return nil, err
	}
	s.pages = pages
	page := pages[index+1]
	s.log.Debug("page inserted", zap.String("page_id", id), zap.Int("after", index))
	return &page, nil
}

// Rename changes the name of a page.
func (s *MemoryStore) Rename(_ context.Context, id, name string) error {
	if s.pages.IndexOf(id) < 0 {
		return s.notFound("rename", id)
	}
	s.pages = s.pages.Rename(id, name)
	s.log.Debug("page renamed", zap.String("page_id", id), zap.String("name", name))
	return nil
}

// Duplicate copies a page and places the copy right after it.
func (s *MemoryStore) Duplicate(_ context.Context, id string) (*model.Page, error) {
	index := s.pages.IndexOf(id)
	if index < 0 {
		return nil, s.notFound("duplicate", id)
	}
	newID, err := s.freshID()
	if err != nil {
		return nil, err
	}
	pages, err := s.pages.Duplicate(id, newID)
	if err != nil {
		return nil, err
	}
	s.pages = pages
	page := pages[index+1]
	s.log.Debug("page duplicated", zap.String("page_id", id), zap.String("copy_id", newID))
	return &page, nil
}

// Delete removes a page. The last remaining page is never removed.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	if len(s.pages) > 1 && s.pages.IndexOf(id) < 0 {
		return s.notFound("delete", id)
	}
	pages, err := s.pages.Delete(id)
	if err != nil {
		s.log.Debug("delete refused", zap.String("page_id", id), zap.Error(err))
		return err
	}
	s.pages = pages
	s.log.Debug("page deleted", zap.String("page_id", id))
	return nil
}

// MoveToFront makes a page the first page.
func (s *MemoryStore) MoveToFront(_ context.Context, id string) error {
	if s.pages.IndexOf(id) < 0 {
		return s.notFound("move to front", id)
	}
	s.pages = s.pages.MoveToFront(id)
	s.log.Debug("page moved to front", zap.String("page_id", id))
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) freshID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.newID()
		if id != "" && s.pages.IndexOf(id) < 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("generate page id: %w", model.ErrDuplicateID)
}

func (s *MemoryStore) notFound(op, id string) error {
	s.log.Debug("unknown page", zap.String("op", op), zap.String("page_id", id))
	return fmt.Errorf("%s %q: %w", op, id, ErrNotFound)
}

// IsIgnorable reports whether err is one of the store's refusals that the
// UI swallows silently rather than surfacing.
func IsIgnorable(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, model.ErrLastPage)
}
