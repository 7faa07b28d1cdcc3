package pagetabs

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the tab row and, when open, the settings menu below the
// active tab.
func (m Model) View() string {
	segs := m.layout()
	if len(segs) == 0 {
		return ""
	}

	views := make([]string, len(segs))
	for i, s := range segs {
		views[i] = s.view
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, views...)

	if m.menuID == "" {
		return row
	}
	menu := lipgloss.NewStyle().MarginLeft(m.menuX(segs)).Render(m.renderMenu())
	return lipgloss.JoinVertical(lipgloss.Left, row, menu)
}
