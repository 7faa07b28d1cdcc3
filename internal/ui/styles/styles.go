// Package styles defines the visual appearance for the FormPages TUI.
// Using Catppuccin Mocha color palette.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha color palette
var (
	Pink     = lipgloss.Color("#F5C2E7")
	Mauve    = lipgloss.Color("#CBA6F7")
	Red      = lipgloss.Color("#F38BA8")
	Peach    = lipgloss.Color("#FAB387")
	Green    = lipgloss.Color("#A6E3A1")
	Sapphire = lipgloss.Color("#74C7EC")

	// Surface colors
	Text     = lipgloss.Color("#CDD6F4")
	Subtext0 = lipgloss.Color("#A6ADC8")
	Overlay0 = lipgloss.Color("#6C7086")
	Surface2 = lipgloss.Color("#585B70")
	Surface1 = lipgloss.Color("#45475A")
	Surface0 = lipgloss.Color("#313244")
	Base     = lipgloss.Color("#1E1E2E")
	Mantle   = lipgloss.Color("#181825")
)

// Semantic colors (using the palette)
var (
	Primary     = Mauve
	Secondary   = Green
	Accent      = Sapphire
	Danger      = Red
	Warning     = Peach
	Muted       = Overlay0
	Background  = Base
	SurfaceCol  = Surface0
	TextCol     = Text
	TextMuted   = Subtext0
	Border      = Surface1
	BorderFocus = Mauve
)

// Panel styles
var (
	// PanelTitle for panel headers
	PanelTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextCol).
			Padding(0, 1)

	// PanelPlaceholder for empty panel bodies
	PanelPlaceholder = lipgloss.NewStyle().
				Foreground(TextMuted).
				Italic(true)
)

// StatusBar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Background(Mantle).
			Padding(0, 1)

	StatusBarKey = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	StatusBarDesc = lipgloss.NewStyle().
			Foreground(TextMuted)

	StatusBarBrand = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// DialogBox frames modal dialogs.
var DialogBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Primary).
	Padding(1, 2).
	Background(SurfaceCol)

// Icons
var (
	IconFirst  = "ⓘ"
	IconMiddle = "▤"
	IconLast   = "✓"
	IconMenu   = "⋮"
	IconAdd    = "+"
	IconDot    = "●"
)

// Box drawing characters for custom borders
var (
	BoxHorizontal = "─"
	BoxDotted     = "┄"
)

// RenderFancyHeader renders a title centered in a decorated rule.
func RenderFancyHeader(title string, width int) string {
	left := lipgloss.NewStyle().Foreground(Mauve).Render("╭─")
	right := lipgloss.NewStyle().Foreground(Mauve).Render("─╮")
	titleStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(TextCol).
		Background(Surface0).
		Padding(0, 1).
		Render(title)

	fillWidth := width - lipgloss.Width(titleStyled) - lipgloss.Width(left) - lipgloss.Width(right)
	if fillWidth < 0 {
		fillWidth = 0
	}

	leftFill := fillWidth / 2
	rightFill := fillWidth - leftFill

	leftLine := lipgloss.NewStyle().Foreground(Surface1).Render(strings.Repeat(BoxHorizontal, leftFill))
	rightLine := lipgloss.NewStyle().Foreground(Surface1).Render(strings.Repeat(BoxHorizontal, rightFill))

	return left + leftLine + titleStyled + rightLine + right
}
