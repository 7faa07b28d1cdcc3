package pagetabs

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/formpages/internal/ui/styles"
)

// TabStyles defines the visual appearance of the page tabs.
// Tab styles must share padding and border so that every tab state has the
// same width; hit testing relies on it.
type TabStyles struct {
	Tab           lipgloss.Style
	TabActive     lipgloss.Style
	TabDragging   lipgloss.Style
	TabDropTarget lipgloss.Style
	Icon          lipgloss.Style
	IconActive    lipgloss.Style
	Trigger       lipgloss.Style
	TriggerOpen   lipgloss.Style

	Gap      lipgloss.Style
	GapHover lipgloss.Style

	AddButton lipgloss.Style

	Menu             lipgloss.Style
	MenuHeader       lipgloss.Style
	MenuItem         lipgloss.Style
	MenuItemSelected lipgloss.Style
	MenuItemDisabled lipgloss.Style
	MenuDanger       lipgloss.Style
	MenuDivider      lipgloss.Style
}

// DefaultTabStyles returns the default tab styles.
func DefaultTabStyles() TabStyles {
	tab := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Border)

	menuItem := lipgloss.NewStyle().
		Foreground(styles.TextCol).
		Width(menuInnerWidth).
		Padding(0, 1)

	return TabStyles{
		Tab: tab,

		TabActive: tab.
			Foreground(styles.TextCol).
			Bold(true).
			BorderForeground(styles.BorderFocus),

		TabDragging: tab.
			Foreground(styles.Muted).
			Faint(true).
			BorderForeground(styles.Surface2),

		TabDropTarget: tab.
			Foreground(styles.TextCol).
			BorderForeground(styles.Accent),

		Icon:       lipgloss.NewStyle().Foreground(styles.Muted),
		IconActive: lipgloss.NewStyle().Foreground(styles.Warning),

		Trigger: lipgloss.NewStyle().
			Foreground(styles.TextMuted),

		TriggerOpen: lipgloss.NewStyle().
			Foreground(styles.Primary).
			Bold(true),

		Gap: lipgloss.NewStyle().
			Foreground(styles.Surface1).
			Width(gapWidth),

		GapHover: lipgloss.NewStyle().
			Foreground(styles.Accent).
			Bold(true).
			Width(gapWidth),

		AddButton: lipgloss.NewStyle().
			Foreground(styles.Accent).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2),

		Menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.Border).
			Background(styles.Background),

		MenuHeader: lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Bold(true).
			Width(menuInnerWidth).
			Padding(0, 1),

		MenuItem: menuItem,

		MenuItemSelected: menuItem.
			Foreground(styles.Background).
			Background(styles.Primary).
			Bold(true),

		MenuItemDisabled: menuItem.
			Foreground(styles.Surface2),

		MenuDanger: menuItem.
			Foreground(styles.Danger),

		MenuDivider: lipgloss.NewStyle().
			Foreground(styles.Border),
	}
}
