package pagetabs

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/formpages/internal/ui/styles"
)

// MenuAction is an entry of the page settings menu.
type MenuAction int

const (
	MenuSetFirst MenuAction = iota
	MenuRename
	MenuCopy
	MenuDuplicate
	MenuDelete
)

var menuLabels = map[MenuAction]string{
	MenuSetFirst:  "Set as first page",
	MenuRename:    "Rename",
	MenuCopy:      "Copy",
	MenuDuplicate: "Duplicate",
	MenuDelete:    "Delete",
}

func (a MenuAction) String() string {
	return menuLabels[a]
}

// menuActions lists the entries in display order.
var menuActions = []MenuAction{MenuSetFirst, MenuRename, MenuCopy, MenuDuplicate, MenuDelete}

const (
	menuTitle      = "Settings"
	menuInnerWidth = 22
	menuWidth      = menuInnerWidth + 2
	// border, title, four entries, divider, delete, border
	menuHeight = 9
	// the menu opens directly below the tab row
	menuTop = tabHeight
)

// menuRowAction maps a row inside the menu box to its entry.
func menuRowAction(row int) (MenuAction, bool) {
	switch {
	case row >= 2 && row <= 5:
		return menuActions[row-2], true
	case row == 7:
		return MenuDelete, true
	default:
		return 0, false
	}
}

func (m Model) menuEnabled(a MenuAction) bool {
	if a == MenuDelete {
		return len(m.pages) > 1
	}
	return true
}

// moveMenuCursor moves the keyboard cursor by delta, skipping disabled entries.
func (m *Model) moveMenuCursor(delta int) {
	n := len(menuActions)
	cur := m.menuCursor
	for range n {
		cur = (cur + delta + n) % n
		if m.menuEnabled(menuActions[cur]) {
			m.menuCursor = cur
			return
		}
	}
}

func (m Model) renderMenu() string {
	row := func(i int, a MenuAction) string {
		switch {
		case !m.menuEnabled(a):
			return m.styles.MenuItemDisabled.Render(a.String())
		case i == m.menuCursor:
			return m.styles.MenuItemSelected.Render(a.String())
		case a == MenuDelete:
			return m.styles.MenuDanger.Render(a.String())
		default:
			return m.styles.MenuItem.Render(a.String())
		}
	}

	lines := []string{m.styles.MenuHeader.Render(menuTitle)}
	for i, a := range menuActions {
		if a == MenuDelete {
			lines = append(lines, m.styles.MenuDivider.Render(strings.Repeat(styles.BoxHorizontal, menuInnerWidth)))
		}
		lines = append(lines, row(i, a))
	}
	return m.styles.Menu.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
