package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/formpages/internal/model"
	"github.com/lazyvibe/formpages/internal/ui/styles"
)

// View renders the entire application.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	if !a.ready {
		loading := lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Accent).
			Render("Loading FormPages...")
		return lipgloss.NewStyle().
			Width(a.width).
			Height(a.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(loading)
	}

	if a.windowTooSmall() {
		msg := fmt.Sprintf("Window too small, need at least %dx%d (now %dx%d)", minAppWidth, minAppHeight, a.width, a.height)
		notice := lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Accent).
			Render(msg)
		return lipgloss.NewStyle().
			Width(a.width).
			Height(a.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(notice)
	}

	header := styles.RenderFancyHeader("Pages", a.width)
	tabs := a.tabs.View()
	statusBar := a.statusBar.View()

	bodyHeight := a.height - headerHeight - a.tabs.Height() - lipgloss.Height(statusBar)
	body := a.renderBody(max(bodyHeight, 0))

	fullView := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		tabs,
		body,
		statusBar,
	)

	// Overlay dialog if open
	if a.dialogMode != DialogNone {
		return a.renderWithDialog(fullView)
	}
	return fullView
}

// renderBody renders the area below the tabs, which shows the active page.
func (a App) renderBody(height int) string {
	if height == 0 {
		return ""
	}

	var msg string
	if i := model.Pages(a.pages).ActiveIndex(); i >= 0 {
		title := styles.PanelTitle.Render(a.pages[i].DisplayName())
		hint := styles.PanelPlaceholder.Render(
			fmt.Sprintf("Page %d of %d. Drag tabs to reorder, click a gap to insert.", i+1, len(a.pages)))
		msg = lipgloss.JoinVertical(lipgloss.Center, title, hint)
	} else {
		msg = styles.PanelPlaceholder.Render("No pages")
	}

	return lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(msg)
}

func (a App) renderWithDialog(_ string) string {
	var dialogView string
	switch a.dialogMode {
	case DialogRename:
		dialogView = a.renameDialog.View()
	}

	// Overlay dialog in center
	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Center,
		lipgloss.Center,
		dialogView,
		lipgloss.WithWhitespaceChars(" "),
	)
}
