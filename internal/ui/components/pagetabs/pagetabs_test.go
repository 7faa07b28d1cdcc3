package pagetabs

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/formpages/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTabs(pages model.Pages) Model {
	m := New()
	m.SetPages(pages)
	m.SetFocused(true)
	return m
}

func findSegment(t *testing.T, m Model, kind hitKind, index int) segment {
	t.Helper()
	for _, s := range m.layout() {
		if s.kind == kind && s.index == index {
			return s
		}
	}
	t.Fatalf("no segment %d/%d", kind, index)
	return segment{}
}

// tabBody is a cell inside tab i away from its menu trigger.
func tabBody(t *testing.T, m Model, i int) (int, int) {
	s := findSegment(t, m, hitTab, i)
	return s.x0 + 1, 1
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func dragTo(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func hover(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) (Model, tea.Msg) {
	var out tea.Msg
	for _, msg := range msgs {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		out = nil
		if cmd != nil {
			out = cmd()
		}
	}
	return m, out
}

func menuRow(t *testing.T, m Model, row int) (int, int) {
	t.Helper()
	require.True(t, m.MenuOpen())
	return m.menuX(m.layout()) + 2, menuTop + row
}

func TestClickActivatesTab(t *testing.T) {
	m := newTabs(model.SeedPages())
	x, y := tabBody(t, m, 2)

	m, out := send(m, press(x, y))
	assert.Nil(t, out)
	assert.Equal(t, Dragging, m.Drag().Phase)

	m, out = send(m, release(x, y))
	assert.Equal(t, SetActivePageMsg{ID: "other"}, out)
	assert.False(t, m.Drag().Active())
}

func TestDragReordersPages(t *testing.T) {
	pages := model.SeedPages()
	m := newTabs(pages)
	x0, y := tabBody(t, m, 0)
	x2, _ := tabBody(t, m, 2)

	m, _ = send(m, press(x0, y), dragTo(x2, y))
	assert.Equal(t, DragState{Phase: DraggingOver, Source: 0, Target: 2}, m.Drag())
	assert.Equal(t, NoIndex, m.HoveredGap())

	m, out := send(m, release(x2, y))
	require.Equal(t, ReorderPagesMsg{From: 0, To: 2}, out)
	assert.False(t, m.Drag().Active())

	reordered, err := pages.Reorder(0, 2)
	require.NoError(t, err)
	m.SetPages(reordered)
	assert.Equal(t, []string{"Details", "Other", "Info", "Ending"}, model.Pages(m.Pages()).Names())
	assert.Equal(t, 2, m.ActiveIndex(), "the active page keeps its active state")
}

func TestDragBackToSourceCancels(t *testing.T) {
	m := newTabs(model.SeedPages())
	x1, y := tabBody(t, m, 1)
	x3, _ := tabBody(t, m, 3)

	m, out := send(m, press(x1, y), dragTo(x3, y), dragTo(x1, y), release(x1, y))
	assert.Nil(t, out)
	assert.False(t, m.Drag().Active())
}

func TestReleaseOutsideCancelsDrag(t *testing.T) {
	m := newTabs(model.SeedPages())
	x, y := tabBody(t, m, 1)
	x3, _ := tabBody(t, m, 3)

	m, out := send(m, press(x, y), dragTo(x3, y), release(x3, 10))
	assert.Nil(t, out)
	assert.False(t, m.Drag().Active())
}

func TestEscapeCancelsDrag(t *testing.T) {
	m := newTabs(model.SeedPages())
	x, y := tabBody(t, m, 1)

	m, _ = send(m, press(x, y), tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Drag().Active())

	_, out := send(m, release(x, y))
	assert.Nil(t, out, "the release after a cancel is not a click")
}

func TestHoverGapShowsAddAffordance(t *testing.T) {
	m := newTabs(model.SeedPages())
	gap := findSegment(t, m, hitGap, 1)

	m, _ = send(m, hover(gap.x0+1, 1))
	assert.Equal(t, 1, m.HoveredGap())
	assert.Contains(t, m.renderGap(1), "+")
	assert.NotContains(t, m.renderGap(0), "+")

	x, y := tabBody(t, m, 0)
	m, _ = send(m, hover(x, y))
	assert.Equal(t, NoIndex, m.HoveredGap())
}

func TestPressGapInsertsBetween(t *testing.T) {
	m := newTabs(model.SeedPages())
	gap := findSegment(t, m, hitGap, 1)

	_, out := send(m, press(gap.x0+1, 1))
	assert.Equal(t, AddPageMsg{AfterIndex: 1}, out)
}

func TestAddButtonAppends(t *testing.T) {
	m := newTabs(model.SeedPages())
	add := findSegment(t, m, hitAdd, NoIndex)

	_, out := send(m, press(add.x0+2, 1))
	assert.Equal(t, AddPageMsg{AfterIndex: 3}, out)
}

func TestTriggerTogglesMenu(t *testing.T) {
	m := newTabs(model.SeedPages())
	s := findSegment(t, m, hitTab, 0)
	trigger := s.x1 - 3

	m, _ = send(m, press(trigger, 1))
	require.True(t, m.MenuOpen())
	assert.Equal(t, "info", m.MenuPageID())
	assert.Equal(t, tabHeight+menuHeight, m.Height())
	assert.False(t, m.Drag().Active(), "the trigger does not start a drag")

	m, _ = send(m, press(trigger, 1))
	assert.False(t, m.MenuOpen())
	assert.Equal(t, tabHeight, m.Height())
}

func TestTriggerOnlyOnActiveTab(t *testing.T) {
	m := newTabs(model.SeedPages())
	s := findSegment(t, m, hitTab, 2)

	m, _ = send(m, press(s.x1-3, 1))
	assert.False(t, m.MenuOpen())
	assert.Equal(t, Dragging, m.Drag().Phase)
}

func TestPressOutsideOnlyClosesMenu(t *testing.T) {
	m := newTabs(model.SeedPages())
	m.OpenMenu("info")

	gap := findSegment(t, m, hitGap, 1)
	m, out := send(m, press(gap.x0+1, 1))
	assert.Nil(t, out)
	assert.False(t, m.MenuOpen())

	m.OpenMenu("info")
	x, y := tabBody(t, m, 2)
	m, out = send(m, press(x, y), release(x, y))
	assert.Nil(t, out)
	assert.False(t, m.Drag().Active())
}

func TestPressMenuChrome(t *testing.T) {
	m := newTabs(model.SeedPages())
	m.OpenMenu("info")

	x, y := menuRow(t, m, 1)
	m, out := send(m, press(x, y))
	assert.Nil(t, out)
	assert.True(t, m.MenuOpen(), "the title row keeps the menu open")
}

func TestMenuEntries(t *testing.T) {
	pages := model.SeedPages().SetActive("other")

	tests := []struct {
		name string
		row  int
		want tea.Msg
	}{
		{"set as first", 2, ReorderPagesMsg{From: 2, To: 0}},
		{"rename", 3, RenameRequestedMsg{ID: "other", Name: "Other"}},
		{"copy", 4, CopyPageMsg{ID: "other", Name: "Other"}},
		{"duplicate", 5, DuplicatePageMsg{ID: "other"}},
		{"delete", 7, DeletePageMsg{ID: "other"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTabs(pages)
			m.OpenMenu("other")
			x, y := menuRow(t, m, tt.row)

			m, out := send(m, press(x, y))
			assert.Equal(t, tt.want, out)
			assert.False(t, m.MenuOpen())
		})
	}
}

func TestDeleteDisabledForLastPage(t *testing.T) {
	m := newTabs(model.SeedPages()[:1])
	m.OpenMenu("info")

	x, y := menuRow(t, m, 7)
	m, out := send(m, press(x, y))
	assert.Nil(t, out)
	assert.True(t, m.MenuOpen())

	m.CloseMenu()
	_, out = send(m, runes("x"))
	assert.Nil(t, out)
}

func TestOpenMenuRequiresActivePage(t *testing.T) {
	m := newTabs(model.SeedPages())
	m.OpenMenu("details")
	assert.False(t, m.MenuOpen())
	m.OpenMenu("missing")
	assert.False(t, m.MenuOpen())
}

func TestKeyboardNavigation(t *testing.T) {
	pages := model.SeedPages().SetActive("details")

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want tea.Msg
	}{
		{"prev", tea.KeyMsg{Type: tea.KeyLeft}, SetActivePageMsg{ID: "info"}},
		{"next", runes("l"), SetActivePageMsg{ID: "other"}},
		{"move left", tea.KeyMsg{Type: tea.KeyShiftLeft}, ReorderPagesMsg{From: 1, To: 0}},
		{"move right", tea.KeyMsg{Type: tea.KeyShiftRight}, ReorderPagesMsg{From: 1, To: 2}},
		{"insert", runes("n"), AddPageMsg{AfterIndex: 1}},
		{"append", runes("a"), AddPageMsg{AfterIndex: 3}},
		{"rename", runes("r"), RenameRequestedMsg{ID: "details", Name: "Details"}},
		{"duplicate", runes("c"), DuplicatePageMsg{ID: "details"}},
		{"delete", runes("x"), DeletePageMsg{ID: "details"}},
		{"copy", runes("y"), CopyPageMsg{ID: "details", Name: "Details"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out := send(newTabs(pages), tt.msg)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestKeyboardStopsAtEdges(t *testing.T) {
	m := newTabs(model.SeedPages())
	_, out := send(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, out)
	_, out = send(m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	assert.Nil(t, out)

	m.SetPages(model.SeedPages().SetActive("ending"))
	_, out = send(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, out)
}

func TestKeyboardMenu(t *testing.T) {
	m := newTabs(model.SeedPages())

	m, _ = send(m, runes("m"))
	require.True(t, m.MenuOpen())
	assert.Equal(t, MenuSetFirst, m.MenuCursor())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, MenuDuplicate, m.MenuCursor())

	_, out := send(m, runes("n"))
	assert.Nil(t, out, "page keys are inactive while the menu is open")

	m, out = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, DuplicatePageMsg{ID: "info"}, out)
	assert.False(t, m.MenuOpen())

	m, _ = send(m, runes("m"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.MenuOpen())
}

func TestKeyboardMenuSkipsDisabledDelete(t *testing.T) {
	m := newTabs(model.SeedPages()[:1])
	m, _ = send(m, runes("m"), tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, MenuDuplicate, m.MenuCursor())
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	m := newTabs(model.SeedPages())
	m.SetFocused(false)
	_, out := send(m, runes("a"))
	assert.Nil(t, out)
}

func TestOriginTranslatesMouse(t *testing.T) {
	m := newTabs(model.SeedPages())
	x, y := tabBody(t, m, 3)
	m.SetOrigin(4, 2)

	m, _ = send(m, press(x+4, y+2))
	_, out := send(m, release(x+4, y+2))
	assert.Equal(t, SetActivePageMsg{ID: "ending"}, out)
}

func TestSetPagesDropsStaleState(t *testing.T) {
	pages := model.SeedPages()
	m := newTabs(pages)
	x, y := tabBody(t, m, 3)
	m, _ = send(m, press(x, y))
	m.OpenMenu("info")

	shorter, err := pages.Delete("info")
	require.NoError(t, err)
	m.SetPages(shorter)

	assert.False(t, m.Drag().Active())
	assert.False(t, m.MenuOpen())
}

func TestSetPagesReorderedCancelsDrag(t *testing.T) {
	pages := model.SeedPages()
	m := newTabs(pages)
	x0, y := tabBody(t, m, 0)
	x2, _ := tabBody(t, m, 2)
	m, _ = send(m, press(x0, y), dragTo(x2, y))

	// reloading the same order keeps the drag
	m.SetPages(pages)
	require.True(t, m.Drag().Active())

	// same length, but another page now sits under the held tab
	reordered, err := pages.Reorder(3, 0)
	require.NoError(t, err)
	m.SetPages(reordered)
	assert.False(t, m.Drag().Active())

	x2, _ = tabBody(t, m, 2)
	_, out := send(m, release(x2, y))
	assert.Nil(t, out, "no page is moved")
}

func TestManyPagesScroll(t *testing.T) {
	var pages model.Pages
	for i := range 12 {
		pages = append(pages, model.Page{ID: string(rune('a' + i)), Name: "Pg" + string(rune('A'+i)), Order: i})
	}
	pages[11].Active = true

	m := New()
	m.SetWidth(60)
	m.SetPages(pages)

	assert.Positive(t, m.Offset())
	findSegment(t, m, hitTab, 11)
	for _, line := range strings.Split(m.View(), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}

	m, _ = send(m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, pagesLimit(m)-1, m.Offset())

	m.ScrollBy(-100)
	assert.Equal(t, 0, m.Offset())
	findSegment(t, m, hitTab, 0)

	m.ScrollBy(100)
	assert.Equal(t, pagesLimit(m), m.Offset())

	m.SetPages(pages.SetActive("a"))
	assert.Equal(t, 0, m.Offset())
}

func pagesLimit(m Model) int {
	return m.shiftLeftToFit(len(m.pages)-1, m.tabWidths())
}

func TestViewRendersTabs(t *testing.T) {
	pages := model.SeedPages().Rename("details", "A very long page name indeed")
	m := newTabs(pages)
	view := m.View()

	assert.Equal(t, tabHeight, lipgloss.Height(view))
	assert.Contains(t, view, "Info")
	assert.Contains(t, view, "ⓘ")
	assert.Contains(t, view, "▤")
	assert.Contains(t, view, "✓")
	assert.Contains(t, view, "⋮")
	assert.Contains(t, view, "+ Add page")
	assert.Contains(t, view, "…")
	assert.NotContains(t, view, "indeed")

	m.OpenMenu("info")
	view = m.View()
	assert.Equal(t, tabHeight+menuHeight, lipgloss.Height(view))
	for _, label := range []string{"Settings", "Set as first page", "Rename", "Copy", "Duplicate", "Delete"} {
		assert.Contains(t, view, label)
	}
}

func TestViewEmpty(t *testing.T) {
	assert.Empty(t, New().View())
}
