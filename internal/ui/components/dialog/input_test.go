package dialog

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestInputDialogSubmit(t *testing.T) {
	d := NewInputDialog("Rename page", InputField{Label: "Name", Value: "Info"})
	assert.Equal(t, "Info", d.Value())

	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, "Infx", d.Value())
	assert.False(t, d.IsSubmitted())

	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, d.IsSubmitted())
	assert.False(t, d.IsCancelled())
	assert.Equal(t, "Infx", d.Value())
}

func TestInputDialogCancel(t *testing.T) {
	d := NewInputDialog("Rename page", InputField{Label: "Name"})
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, d.IsCancelled())
	assert.False(t, d.IsSubmitted())
}

func TestInputDialogCharLimit(t *testing.T) {
	d := NewInputDialog("Rename page", InputField{Label: "Name", CharLimit: 3})
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abcdef")})
	assert.Equal(t, "abc", d.Value())
}

func TestInputDialogView(t *testing.T) {
	d := NewInputDialog("Rename page", InputField{Label: "Name", Value: "Info"})
	view := d.View()
	assert.Contains(t, view, "Rename page")
	assert.Contains(t, view, "Name")
	assert.Contains(t, view, "Esc: Cancel")
}
