package pagetabs

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles mouse and key messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	h := m.hitTest(msg.X-m.originX, msg.Y-m.originY)

	switch msg.Action {
	case tea.MouseActionMotion:
		return m.handleMotion(msg, h), nil
	case tea.MouseActionRelease:
		return m.handleRelease(h)
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		m.ScrollBy(-1)
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		m.ScrollBy(1)
	case tea.MouseButtonLeft:
		return m.handlePress(h)
	}
	return m, nil
}

func (m Model) handleMotion(msg tea.MouseMsg, h hit) Model {
	if m.drag.Active() {
		// a held button while dragging; tabs under the pointer become targets
		if msg.Button == tea.MouseButtonLeft && (h.kind == hitTab || h.kind == hitTrigger) {
			m.drag.Over(h.index)
		}
		m.hoverGap = NoIndex
		return m
	}

	if msg.Button == tea.MouseButtonNone && h.kind == hitGap && m.menuID == "" {
		m.hoverGap = h.index
	} else {
		m.hoverGap = NoIndex
	}
	return m
}

func (m Model) handlePress(h hit) (Model, tea.Cmd) {
	// an open menu captures the press: entries are chosen, anything outside
	// the menu only closes it
	if m.menuID != "" {
		switch h.kind {
		case hitMenuItem:
			return m.choose(MenuAction(h.index))
		case hitMenu:
			return m, nil
		}
		m.CloseMenu()
		return m, nil
	}

	switch h.kind {
	case hitTrigger:
		m.OpenMenu(m.pages[h.index].ID)
	case hitTab:
		m.drag.Start(h.index)
		m.dragID = m.pages[h.index].ID
	case hitGap:
		m.hoverGap = NoIndex
		return m, emit(AddPageMsg{AfterIndex: h.index})
	case hitAdd:
		return m, emit(AddPageMsg{AfterIndex: len(m.pages) - 1})
	}
	return m, nil
}

func (m Model) handleRelease(h hit) (Model, tea.Cmd) {
	if !m.drag.Active() {
		return m, nil
	}
	if h.kind != hitTab && h.kind != hitTrigger {
		m.drag.Cancel()
		return m, nil
	}

	phase, source := m.drag.Phase, m.drag.Source
	if from, to, ok := m.drag.Drop(h.index); ok {
		return m, emit(ReorderPagesMsg{From: from, To: to})
	}
	// press and release on the same tab without visiting another is a click
	if h.index == source && phase == Dragging && source < len(m.pages) {
		return m, emit(SetActivePageMsg{ID: m.pages[source].ID})
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.menuID != "" {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.moveMenuCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveMenuCursor(1)
		case key.Matches(msg, m.keys.Select):
			return m.choose(menuActions[m.menuCursor])
		case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Menu):
			m.CloseMenu()
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Cancel) {
		m.drag.Cancel()
		m.hoverGap = NoIndex
		return m, nil
	}

	active := m.ActiveIndex()
	if active < 0 {
		return m, nil
	}
	page := m.pages[active]

	switch {
	case key.Matches(msg, m.keys.Prev):
		if active > 0 {
			return m, emit(SetActivePageMsg{ID: m.pages[active-1].ID})
		}
	case key.Matches(msg, m.keys.Next):
		if active < len(m.pages)-1 {
			return m, emit(SetActivePageMsg{ID: m.pages[active+1].ID})
		}
	case key.Matches(msg, m.keys.MoveLeft):
		if active > 0 {
			return m, emit(ReorderPagesMsg{From: active, To: active - 1})
		}
	case key.Matches(msg, m.keys.MoveRight):
		if active < len(m.pages)-1 {
			return m, emit(ReorderPagesMsg{From: active, To: active + 1})
		}
	case key.Matches(msg, m.keys.Insert):
		return m, emit(AddPageMsg{AfterIndex: active})
	case key.Matches(msg, m.keys.Append):
		return m, emit(AddPageMsg{AfterIndex: len(m.pages) - 1})
	case key.Matches(msg, m.keys.Rename):
		return m, emit(RenameRequestedMsg{ID: page.ID, Name: page.Name})
	case key.Matches(msg, m.keys.Duplicate):
		return m, emit(DuplicatePageMsg{ID: page.ID})
	case key.Matches(msg, m.keys.Delete):
		if len(m.pages) > 1 {
			return m, emit(DeletePageMsg{ID: page.ID})
		}
	case key.Matches(msg, m.keys.Copy):
		return m, emit(CopyPageMsg{ID: page.ID, Name: page.Name})
	case key.Matches(msg, m.keys.Menu):
		m.OpenMenu(page.ID)
	}
	return m, nil
}

// choose runs a menu entry for the page whose menu is open.
func (m Model) choose(a MenuAction) (Model, tea.Cmd) {
	i := m.indexOf(m.menuID)
	if i < 0 {
		m.CloseMenu()
		return m, nil
	}
	if !m.menuEnabled(a) {
		return m, nil
	}

	page := m.pages[i]
	m.CloseMenu()

	switch a {
	case MenuSetFirst:
		return m, emit(ReorderPagesMsg{From: i, To: 0})
	case MenuRename:
		return m, emit(RenameRequestedMsg{ID: page.ID, Name: page.Name})
	case MenuCopy:
		return m, emit(CopyPageMsg{ID: page.ID, Name: page.Name})
	case MenuDuplicate:
		return m, emit(DuplicatePageMsg{ID: page.ID})
	case MenuDelete:
		return m, emit(DeletePageMsg{ID: page.ID})
	}
	return m, nil
}
