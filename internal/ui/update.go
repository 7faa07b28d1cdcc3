package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyvibe/formpages/internal/model"
	"github.com/lazyvibe/formpages/internal/store"
	"github.com/lazyvibe/formpages/internal/ui/components/pagetabs"
	"go.uber.org/zap"
)

// Update handles all messages for the application.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// If a dialog is open, only intercept key input; allow other messages through.
	if a.dialogMode != DialogNone {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			if msg.Type == tea.KeyCtrlC {
				a.quitting = true
				return a, tea.Quit
			}
			return a.handleDialogUpdate(msg)
		case tea.MouseMsg:
			return a, nil
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// quit and help stay global; everything else belongs to the tab bar
		if key.Matches(msg, a.keys.Quit) && (!a.tabs.MenuOpen() || msg.Type == tea.KeyCtrlC) {
			a.quitting = true
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.Help) {
			a.statusBar.ToggleHelp()
			return a, nil
		}
		if key.Matches(msg, a.keys.Reload) {
			a.reload()
			return a, nil
		}
		var cmd tea.Cmd
		a.tabs, cmd = a.tabs.Update(msg)
		return a, cmd

	case tea.MouseMsg:
		if a.windowTooSmall() {
			return a, nil
		}
		var cmd tea.Cmd
		a.tabs, cmd = a.tabs.Update(msg)
		return a, cmd

	case PagesLoadedMsg:
		if msg.Err != nil {
			a.log.Error("load pages", zap.Error(msg.Err))
			a.statusBar.SetMessage("Error loading pages: "+msg.Err.Error(), true)
			return a, nil
		}
		a.setPages(msg.Pages)
		return a, nil

	case PagesFileChangedMsg:
		a.reload()
		if a.watcher != nil {
			return a, WaitForFileChange(a.watcher.Events())
		}
		return a, nil

	// ---------- Page hooks ----------

	case pagetabs.SetActivePageMsg:
		err := a.store.SetActive(a.ctx, msg.ID)
		a.afterMutation("set active", err, zap.String("page_id", msg.ID))
		return a, nil

	case pagetabs.ReorderPagesMsg:
		err := a.store.Reorder(a.ctx, msg.From, msg.To)
		if a.afterMutation("reorder", err, zap.Int("from", msg.From), zap.Int("to", msg.To)) {
			a.statusBar.ClearMessage()
		}
		return a, nil

	case pagetabs.AddPageMsg:
		page, err := a.store.InsertAfter(a.ctx, msg.AfterIndex)
		if a.afterMutation("insert", err, zap.Int("after", msg.AfterIndex)) {
			a.statusBar.SetMessage("Added "+page.DisplayName(), false)
		}
		return a, nil

	case pagetabs.RenamePageMsg:
		err := a.store.Rename(a.ctx, msg.ID, msg.Name)
		a.afterMutation("rename", err, zap.String("page_id", msg.ID))
		return a, nil

	case pagetabs.DuplicatePageMsg:
		page, err := a.store.Duplicate(a.ctx, msg.ID)
		if a.afterMutation("duplicate", err, zap.String("page_id", msg.ID)) {
			a.statusBar.SetMessage("Duplicated as "+page.DisplayName(), false)
		}
		return a, nil

	case pagetabs.DeletePageMsg:
		name := a.pageName(msg.ID)
		err := a.store.Delete(a.ctx, msg.ID)
		if a.afterMutation("delete", err, zap.String("page_id", msg.ID)) {
			a.statusBar.SetMessage("Deleted "+name, false)
		}
		return a, nil

	case pagetabs.CopyPageMsg:
		if err := a.copyText(msg.Name); err != nil {
			a.log.Warn("copy to clipboard", zap.String("page_id", msg.ID), zap.Error(err))
			a.statusBar.SetMessage("Clipboard unavailable: "+err.Error(), true)
			return a, nil
		}
		a.statusBar.SetMessage(fmt.Sprintf("Copied %q", msg.Name), false)
		return a, nil

	case pagetabs.RenameRequestedMsg:
		a.showRenameDialog(msg.ID, msg.Name)
		return a, nil
	}

	return a, nil
}

// afterMutation logs the outcome of a store call and refreshes the tabs.
// Refusals (unknown page, last page) are silent. It reports whether the
// mutation was applied.
func (a *App) afterMutation(op string, err error, fields ...zap.Field) bool {
	switch {
	case err == nil:
		a.log.Debug(op, fields...)
		a.refresh()
		return true
	case store.IsIgnorable(err):
		a.log.Debug(op+" refused", append(fields, zap.Error(err))...)
	case errors.Is(err, model.ErrIndexOutOfRange):
		a.log.Warn(op+" out of range", append(fields, zap.Error(err))...)
	default:
		a.log.Error(op, append(fields, zap.Error(err))...)
		a.statusBar.SetMessage("Error: "+err.Error(), true)
	}
	// state may have changed on disk even when the call failed
	a.refresh()
	return false
}

// reload picks up external edits of the pages file.
func (a *App) reload() {
	r, ok := a.store.(store.Reloader)
	if !ok {
		return
	}
	changed, err := r.Reload(a.ctx)
	if err != nil {
		a.log.Error("reload pages", zap.Error(err))
		a.statusBar.SetMessage("Error reloading pages: "+err.Error(), true)
		return
	}
	if changed {
		a.log.Info("pages file changed, reloaded")
		a.refresh()
		a.statusBar.SetMessage("Reloaded pages from disk", false)
	}
}

func (a App) pageName(id string) string {
	if p, ok := model.Pages(a.pages).Find(id); ok {
		return p.DisplayName()
	}
	return ""
}

// handleDialogUpdate routes messages to the open dialog.
func (a App) handleDialogUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.dialogMode {
	case DialogRename:
		var cmd tea.Cmd
		a.renameDialog, cmd = a.renameDialog.Update(msg)

		if a.renameDialog.IsSubmitted() {
			id := a.renameID
			name := strings.TrimSpace(a.renameDialog.Value())
			a.hideDialog()
			return a, func() tea.Msg {
				return pagetabs.RenamePageMsg{ID: id, Name: name}
			}
		}
		if a.renameDialog.IsCancelled() {
			a.hideDialog()
			return a, nil
		}
		return a, cmd
	}
	return a, nil
}
