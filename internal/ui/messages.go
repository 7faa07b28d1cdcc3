// Package ui provides the terminal user interface for FormPages.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyvibe/formpages/internal/model"
)

// ---------- Page Messages ----------

// PagesLoadedMsg is sent when pages are loaded from the store.
type PagesLoadedMsg struct {
	Pages []model.Page
	Err   error
}

// PagesFileChangedMsg is sent when the pages file changed on disk.
type PagesFileChangedMsg struct{}

// ---------- Command Functions ----------

// LoadPages returns a command to load pages from the store.
func LoadPages(ctx context.Context, loader func(context.Context) ([]model.Page, error)) tea.Cmd {
	return func() tea.Msg {
		pages, err := loader(ctx)
		return PagesLoadedMsg{Pages: pages, Err: err}
	}
}

// WaitForFileChange returns a command that blocks until the watcher reports
// a change. It returns nil once the watcher is closed.
func WaitForFileChange(events <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return PagesFileChangedMsg{}
	}
}
