package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lazyvibe/formpages/internal/model"
	"go.uber.org/zap"
)

// DataFileName is the name of the pages file inside the data directory.
const DataFileName = "pages.json"

// data represents the JSON file structure.
type data struct {
	Pages []model.Page `json:"pages"`
}

// JSONStore implements PageStore on top of MemoryStore, persisting every
// successful mutation to a JSON file.
type JSONStore struct {
	path      string
	mem       *MemoryStore
	lastSaved []byte
	modified  bool
}

// NewJSONStore creates a JSON file-based store in dataDir.
func NewJSONStore(dataDir string, opts ...Option) (*JSONStore, error) {
	// Ensure data directory exists
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &JSONStore{
		path: filepath.Join(dataDir, DataFileName),
		mem:  NewMemoryStore(nil, opts...),
	}

	// Load existing data if file exists
	if _, err := os.Stat(s.path); err == nil {
		if err := s.load(); err != nil {
			return nil, err
		}
	} else if err := s.save(); err != nil {
		return nil, err
	}

	return s, nil
}

// Path returns the location of the backing file.
func (s *JSONStore) Path() string {
	return s.path
}

// load reads data from the JSON file.
func (s *JSONStore) load() error {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read pages: %w", err)
	}
	var d data
	if err := json.Unmarshal(content, &d); err != nil {
		return fmt.Errorf("decode %s: %w", s.path, err)
	}
	if len(d.Pages) == 0 {
		s.mem.Replace(nil)
		return s.save()
	}
	s.mem.Replace(d.Pages)
	s.lastSaved = content
	if _, changed := model.Pages(d.Pages).Normalize(); changed {
		return s.save()
	}
	return nil
}

// save writes data to the JSON file.
func (s *JSONStore) save() error {
	content, err := json.MarshalIndent(data{Pages: s.mem.Pages()}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, content, 0644); err != nil {
		s.modified = true
		return fmt.Errorf("write pages: %w", err)
	}
	s.lastSaved = content
	s.modified = false
	return nil
}

// Reload re-reads the file and reports whether its pages differ from what
// this store last wrote.
func (s *JSONStore) Reload(_ context.Context) (bool, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return false, fmt.Errorf("read pages: %w", err)
	}
	if bytes.Equal(content, s.lastSaved) {
		return false, nil
	}
	var d data
	if err := json.Unmarshal(content, &d); err != nil {
		// Editors may write the file in several steps; keep the current pages.
		s.mem.log.Warn("ignoring unreadable pages file", zap.String("path", s.path), zap.Error(err))
		return false, nil
	}
	if len(d.Pages) == 0 {
		return false, nil
	}
	s.mem.Replace(d.Pages)
	s.lastSaved = content
	s.mem.log.Info("pages reloaded from disk", zap.Int("count", len(d.Pages)))
	return true, nil
}

// Reset replaces the collection with the seed pages.
func (s *JSONStore) Reset(_ context.Context) error {
	s.mem.Replace(nil)
	return s.save()
}

// Close persists any pending changes.
func (s *JSONStore) Close() error {
	if s.modified {
		return s.save()
	}
	return nil
}

// List returns the pages in display order.
func (s *JSONStore) List(ctx context.Context) ([]model.Page, error) {
	return s.mem.List(ctx)
}

// SetActive makes the page with the given id active.
func (s *JSONStore) SetActive(ctx context.Context, id string) error {
	return s.persist(s.mem.SetActive(ctx, id))
}

// Reorder moves the page at from to position to.
func (s *JSONStore) Reorder(ctx context.Context, from, to int) error {
	return s.persist(s.mem.Reorder(ctx, from, to))
}

// InsertAfter creates a new page right after index.
func (s *JSONStore) InsertAfter(ctx context.Context, index int) (*model.Page, error) {
	page, err := s.mem.InsertAfter(ctx, index)
	if err := s.persist(err); err != nil {
		return page, err
	}
	return page, nil
}

// Rename changes the name of a page.
func (s *JSONStore) Rename(ctx context.Context, id, name string) error {
	return s.persist(s.mem.Rename(ctx, id, name))
}

// Duplicate copies a page and places the copy right after it.
func (s *JSONStore) Duplicate(ctx context.Context, id string) (*model.Page, error) {
	page, err := s.mem.Duplicate(ctx, id)
	if err := s.persist(err); err != nil {
		return page, err
	}
	return page, nil
}

// Delete removes a page.
func (s *JSONStore) Delete(ctx context.Context, id string) error {
	return s.persist(s.mem.Delete(ctx, id))
}

// MoveToFront makes a page the first page.
func (s *JSONStore) MoveToFront(ctx context.Context, id string) error {
	return s.persist(s.mem.MoveToFront(ctx, id))
}

// persist saves after a successful mutation and passes refusals through.
func (s *JSONStore) persist(err error) error {
	if err != nil {
		return err
	}
	return s.save()
}
