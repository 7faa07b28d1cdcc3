// Package statusbar provides the status bar UI component.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/formpages/internal/ui/keys"
	"github.com/lazyvibe/formpages/internal/ui/styles"
)

// Model is the status bar component.
type Model struct {
	width      int
	message    string
	isError    bool
	keyMap     keys.KeyMap
	help       help.Model
	pageCount  int
	activeName string
	activePos  int
}

// New creates a new status bar component.
func New() Model {
	h := help.New()
	h.Styles.ShortKey = styles.StatusBarKey
	h.Styles.ShortDesc = styles.StatusBarDesc
	h.Styles.FullKey = styles.StatusBarKey
	h.Styles.FullDesc = styles.StatusBarDesc
	return Model{
		keyMap: keys.DefaultKeyMap(),
		help:   h,
	}
}

// SetWidth updates the status bar width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetMessage sets a temporary message.
func (m *Model) SetMessage(msg string, isError bool) {
	m.message = msg
	m.isError = isError
}

// ClearMessage clears the temporary message.
func (m *Model) ClearMessage() {
	m.message = ""
	m.isError = false
}

// Message returns the current message and whether it is an error.
func (m Model) Message() (string, bool) {
	return m.message, m.isError
}

// SetPageInfo updates the page counter. pos is zero based.
func (m *Model) SetPageInfo(count, pos int, activeName string) {
	m.pageCount = count
	m.activePos = pos
	m.activeName = activeName
}

// ToggleHelp switches between the short and the full key help.
func (m *Model) ToggleHelp() {
	m.help.ShowAll = !m.help.ShowAll
}

// ShowingFullHelp reports whether the full key help is shown.
func (m Model) ShowingFullHelp() bool {
	return m.help.ShowAll
}

// Height returns the number of rows View renders.
func (m Model) Height() int {
	return lipgloss.Height(m.View())
}

// View renders the status bar.
func (m Model) View() string {
	brand := styles.StatusBarBrand.Render(" FormPages ")

	pageInfo := ""
	if m.pageCount > 0 {
		pageInfo = lipgloss.NewStyle().
			Foreground(styles.Secondary).
			Render(fmt.Sprintf(" %s %d/%d %s ", styles.IconDot, m.activePos+1, m.pageCount, m.activeName))
	}

	var msgArea string
	if m.message != "" {
		msgStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
		if m.isError {
			msgStyle = lipgloss.NewStyle().Foreground(styles.Danger).Bold(true)
		}
		msgArea = msgStyle.Render(" " + m.message + " ")
	}

	leftContent := brand + pageInfo
	barStyle := styles.StatusBarStyle.Width(m.width)

	if m.help.ShowAll {
		top := leftContent + msgArea
		return lipgloss.JoinVertical(lipgloss.Left,
			barStyle.Render(top),
			barStyle.Render(m.help.FullHelpView(m.keyMap.FullHelp())),
		)
	}

	leftWidth := lipgloss.Width(leftContent)
	middleWidth := lipgloss.Width(msgArea)

	h := m.help
	if m.width > 0 {
		// the bar's horizontal padding takes two cells
		h.Width = max(m.width-leftWidth-middleWidth-2, 0)
	}
	rightContent := h.ShortHelpView(m.keyMap.ShortHelp())
	rightWidth := lipgloss.Width(rightContent)

	padding := max(m.width-2-leftWidth-middleWidth-rightWidth, 0)
	leftPad := padding / 2
	rightPad := padding - leftPad

	content := leftContent +
		strings.Repeat(" ", leftPad) +
		msgArea +
		strings.Repeat(" ", rightPad) +
		rightContent

	return barStyle.Render(content)
}
