// Package pagetabs provides the horizontal page tab bar of the form builder.
//
// The widget renders an ordered list of pages as tabs and turns mouse and
// keyboard gestures into messages (see messages.go). It owns only transient
// interaction state: the drag in progress, the hovered gap and the open
// settings menu. The page list itself is replaced by the host via SetPages.
package pagetabs

import (
	"slices"

	"github.com/lazyvibe/formpages/internal/model"
	"github.com/lazyvibe/formpages/internal/ui/keys"
)

// DefaultMaxNameWidth is the default number of cells a tab label may use.
const DefaultMaxNameWidth = 16

// Model is the page tabs component.
type Model struct {
	pages   []model.Page
	offset  int
	width   int
	originX int
	originY int
	focused bool
	maxName int

	drag       DragState
	dragID     string
	hoverGap   int
	menuID     string
	menuCursor int

	keys   keys.KeyMap
	styles TabStyles
}

// Option configures the component.
type Option func(*Model)

// WithKeyMap overrides the default key bindings.
func WithKeyMap(k keys.KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// WithMaxNameWidth sets the number of cells a tab label may use before it
// is truncated.
func WithMaxNameWidth(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.maxName = n
		}
	}
}

// New creates a new page tabs component.
func New(opts ...Option) Model {
	m := Model{
		maxName:  DefaultMaxNameWidth,
		drag:     NewDragState(),
		hoverGap: NoIndex,
		keys:     keys.DefaultKeyMap(),
		styles:   DefaultTabStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// SetPages replaces the rendered pages. Interaction state that no longer
// matches the new list is dropped.
func (m *Model) SetPages(pages []model.Page) {
	changed := len(pages) != len(m.pages)
	m.pages = slices.Clone(pages)

	if changed {
		m.drag.Cancel()
	}
	// the held tab must still be the page that was grabbed
	if m.drag.Active() && (m.drag.Source >= len(m.pages) || m.drag.Target >= len(m.pages) ||
		m.pages[m.drag.Source].ID != m.dragID) {
		m.drag.Cancel()
	}
	if m.hoverGap >= len(m.pages)-1 {
		m.hoverGap = NoIndex
	}
	if i := m.indexOf(m.menuID); i < 0 || !m.pages[i].Active {
		m.CloseMenu()
	} else if !m.menuEnabled(menuActions[m.menuCursor]) {
		m.moveMenuCursor(1)
	}
	m.ensureVisible()
}

// SetWidth sets the component width. Zero disables scrolling.
func (m *Model) SetWidth(width int) {
	m.width = width
	m.ensureVisible()
}

// SetOrigin sets the screen cell of the widget's top-left corner, used to
// translate mouse coordinates.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// SetFocused sets the focus state. Keys are ignored while unfocused.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// Focused reports whether the component receives keys.
func (m Model) Focused() bool {
	return m.focused
}

// OpenMenu opens the settings menu of the page with the given id.
// Only the active page has a menu.
func (m *Model) OpenMenu(id string) {
	i := m.indexOf(id)
	if i < 0 || !m.pages[i].Active {
		return
	}
	m.menuID = id
	m.menuCursor = 0
	m.hoverGap = NoIndex
}

// CloseMenu closes the settings menu.
func (m *Model) CloseMenu() {
	m.menuID = ""
	m.menuCursor = 0
}

// MenuOpen reports whether a settings menu is shown.
func (m Model) MenuOpen() bool {
	return m.menuID != ""
}

// MenuPageID returns the id of the page whose menu is open.
func (m Model) MenuPageID() string {
	return m.menuID
}

// MenuCursor returns the entry selected with the keyboard.
func (m Model) MenuCursor() MenuAction {
	return menuActions[m.menuCursor]
}

// Drag returns the current drag state.
func (m Model) Drag() DragState {
	return m.drag
}

// HoveredGap returns the gap under the pointer as the index of the page on
// its left, or NoIndex.
func (m Model) HoveredGap() int {
	return m.hoverGap
}

// Pages returns a copy of the rendered pages.
func (m Model) Pages() []model.Page {
	return slices.Clone(m.pages)
}

// ActiveIndex returns the index of the active page, or NoIndex.
func (m Model) ActiveIndex() int {
	return model.Pages(m.pages).ActiveIndex()
}

// ActivePage returns the active page.
func (m Model) ActivePage() (model.Page, bool) {
	i := m.ActiveIndex()
	if i < 0 {
		return model.Page{}, false
	}
	return m.pages[i], true
}

// Offset returns the index of the first visible tab.
func (m Model) Offset() int {
	return m.offset
}

// Height returns the number of rows View renders.
func (m Model) Height() int {
	if m.menuID != "" {
		return tabHeight + menuHeight
	}
	return tabHeight
}

func (m Model) indexOf(id string) int {
	if id == "" {
		return NoIndex
	}
	return model.Pages(m.pages).IndexOf(id)
}
