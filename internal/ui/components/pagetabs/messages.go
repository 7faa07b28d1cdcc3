package pagetabs

import tea "github.com/charmbracelet/bubbletea"

// The widget never changes its own page list. Each gesture is reported to
// the host as one of these messages; the host applies it and calls SetPages.

// SetActivePageMsg asks the host to make a page active.
type SetActivePageMsg struct {
	ID string
}

// ReorderPagesMsg asks the host to move the page at From to To.
// To is the position after removal.
type ReorderPagesMsg struct {
	From int
	To   int
}

// AddPageMsg asks the host to insert a new page after AfterIndex.
type AddPageMsg struct {
	AfterIndex int
}

// RenamePageMsg asks the host to rename a page.
type RenamePageMsg struct {
	ID   string
	Name string
}

// DuplicatePageMsg asks the host to duplicate a page.
type DuplicatePageMsg struct {
	ID string
}

// DeletePageMsg asks the host to delete a page.
type DeletePageMsg struct {
	ID string
}

// CopyPageMsg asks the host to copy a page to the clipboard.
type CopyPageMsg struct {
	ID   string
	Name string
}

// RenameRequestedMsg asks the host to prompt for a new page name.
type RenameRequestedMsg struct {
	ID   string
	Name string
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
