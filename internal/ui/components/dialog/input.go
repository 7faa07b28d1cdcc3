// Package dialog provides modal dialog components for FormPages.
package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/formpages/internal/ui/styles"
)

// InputField describes the text field of the dialog.
type InputField struct {
	Label       string
	Placeholder string
	Value       string
	CharLimit   int
}

// InputDialog is a modal dialog for a single line of text input.
type InputDialog struct {
	title     string
	input     textinput.Model
	label     string
	width     int
	height    int
	submitted bool
	cancelled bool
	styles    InputStyles
}

// InputStyles defines the visual appearance of the dialog.
type InputStyles struct {
	Box          lipgloss.Style
	Title        lipgloss.Style
	Label        lipgloss.Style
	Input        lipgloss.Style
	Help         lipgloss.Style
}

// DefaultInputStyles returns the default dialog styles.
func DefaultInputStyles() InputStyles {
	return InputStyles{
		Box: styles.DialogBox,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Accent).
			Padding(0, 1),

		Label: lipgloss.NewStyle().
			Foreground(styles.Pink).
			Bold(true),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.BorderFocus).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(styles.Muted).
			MarginTop(1),
	}
}

// NewInputDialog creates a new input dialog with a focused field.
func NewInputDialog(title string, field InputField) InputDialog {
	ti := textinput.New()
	ti.Placeholder = field.Placeholder
	ti.CharLimit = 256
	if field.CharLimit > 0 {
		ti.CharLimit = field.CharLimit
	}
	ti.Width = 40
	ti.SetValue(field.Value)
	ti.CursorEnd()
	ti.Focus()

	return InputDialog{
		title:  title,
		input:  ti,
		label:  field.Label,
		styles: DefaultInputStyles(),
	}
}

// SetSize updates the dialog dimensions.
func (d *InputDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Update handles input dialog messages.
func (d InputDialog) Update(msg tea.Msg) (InputDialog, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			d.submitted = true
			return d, nil
		case tea.KeyEsc:
			d.cancelled = true
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// View renders the dialog.
func (d InputDialog) View() string {
	var b strings.Builder

	b.WriteString(d.styles.Title.Render(d.title))
	b.WriteString("\n\n")
	b.WriteString(d.styles.Label.Render(d.label))
	b.WriteString("\n")
	b.WriteString(d.styles.Input.Render(d.input.View()))
	b.WriteString("\n")
	b.WriteString(d.styles.Help.Render("Enter: Confirm • Esc: Cancel"))

	content := d.styles.Box.Render(b.String())

	// Center in screen
	if d.width > 0 && d.height > 0 {
		content = lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// IsSubmitted returns true if the user submitted the dialog.
func (d InputDialog) IsSubmitted() bool {
	return d.submitted
}

// IsCancelled returns true if the user cancelled the dialog.
func (d InputDialog) IsCancelled() bool {
	return d.cancelled
}

// Value returns the current text.
func (d InputDialog) Value() string {
	return d.input.Value()
}
