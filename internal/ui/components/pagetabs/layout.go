package pagetabs

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lazyvibe/formpages/internal/ui/styles"
)

const (
	// rounded border boxes: top border, label, bottom border
	tabHeight = 3
	gapWidth  = 3
	addLabel  = "+ Add page"
)

type hitKind int

const (
	hitNone hitKind = iota
	hitTab
	hitTrigger
	hitGap
	hitAdd
	hitSpacer
	hitMenu
	hitMenuItem
)

type hit struct {
	kind  hitKind
	index int
}

// segment is one horizontally placed piece of the tab row.
type segment struct {
	kind  hitKind
	index int
	x0    int // inclusive
	x1    int // exclusive
	view  string
}

func (m Model) icon(i int) string {
	switch i {
	case 0:
		return styles.IconFirst
	case len(m.pages) - 1:
		return styles.IconLast
	default:
		return styles.IconMiddle
	}
}

func (m Model) renderTab(i int) string {
	p := m.pages[i]

	iconStyle := m.styles.Icon
	if p.Active {
		iconStyle = m.styles.IconActive
	}
	content := iconStyle.Render(m.icon(i)) + " " + ansi.Truncate(p.DisplayName(), m.maxName, "…")
	if p.Active {
		trigger := m.styles.Trigger
		if m.menuID == p.ID {
			trigger = m.styles.TriggerOpen
		}
		content += " " + trigger.Render(styles.IconMenu)
	}

	var style lipgloss.Style
	switch {
	case m.drag.Active() && m.drag.Source == i:
		style = m.styles.TabDragging
	case m.drag.Phase == DraggingOver && m.drag.Target == i:
		style = m.styles.TabDropTarget
	case p.Active:
		style = m.styles.TabActive
	default:
		style = m.styles.Tab
	}
	return style.Render(content)
}

func (m Model) renderGap(i int) string {
	if i == m.hoverGap {
		return m.styles.GapHover.Render(strings.Join([]string{"", " " + styles.IconAdd + " ", ""}, "\n"))
	}
	return m.styles.Gap.Render(strings.Join([]string{"", strings.Repeat(styles.BoxDotted, gapWidth), ""}, "\n"))
}

func (m Model) renderAdd() string {
	return m.styles.AddButton.Render(addLabel)
}

func (m Model) tabWidths() []int {
	widths := make([]int, len(m.pages))
	for i := range m.pages {
		widths[i] = lipgloss.Width(m.renderTab(i))
	}
	return widths
}

// tabSpace is the width available to tabs and gaps. Zero means unlimited.
func (m Model) tabSpace() int {
	if m.width <= 0 {
		return 0
	}
	space := m.width - lipgloss.Width(m.renderAdd()) - 1
	if space < 1 {
		space = 1
	}
	return space
}

// layout places the visible tabs, the gaps between them and the add button.
func (m Model) layout() []segment {
	if len(m.pages) == 0 {
		return nil
	}

	views := make([]string, len(m.pages))
	widths := make([]int, len(m.pages))
	for i := range m.pages {
		views[i] = m.renderTab(i)
		widths[i] = lipgloss.Width(views[i])
	}
	start, end := m.visibleRange(widths)

	segs := make([]segment, 0, 2*(end-start)+2)
	x := 0
	for i := start; i < end; i++ {
		if i > start {
			segs = append(segs, segment{kind: hitGap, index: i - 1, x0: x, x1: x + gapWidth, view: m.renderGap(i - 1)})
			x += gapWidth
		}
		segs = append(segs, segment{kind: hitTab, index: i, x0: x, x1: x + widths[i], view: views[i]})
		x += widths[i]
	}

	spacer := lipgloss.NewStyle().Width(1).Height(tabHeight).Render("")
	segs = append(segs, segment{kind: hitSpacer, index: NoIndex, x0: x, x1: x + 1, view: spacer})
	x++

	add := m.renderAdd()
	segs = append(segs, segment{kind: hitAdd, index: NoIndex, x0: x, x1: x + lipgloss.Width(add), view: add})
	return segs
}

// menuX is the left edge of the open menu: under its tab, kept inside the width.
func (m Model) menuX(segs []segment) int {
	x := 0
	i := m.indexOf(m.menuID)
	for _, s := range segs {
		if s.kind == hitTab && s.index == i {
			x = s.x0
			break
		}
	}
	if m.width > 0 && x+menuWidth > m.width {
		x = m.width - menuWidth
	}
	if x < 0 {
		x = 0
	}
	return x
}

// hitTest resolves a position relative to the widget origin.
func (m Model) hitTest(x, y int) hit {
	segs := m.layout()

	if m.menuID != "" {
		mx := m.menuX(segs)
		if x >= mx && x < mx+menuWidth && y >= menuTop && y < menuTop+menuHeight {
			if a, ok := menuRowAction(y - menuTop); ok {
				return hit{kind: hitMenuItem, index: int(a)}
			}
			return hit{kind: hitMenu, index: NoIndex}
		}
	}

	if y < 0 || y >= tabHeight {
		return hit{kind: hitNone, index: NoIndex}
	}
	for _, s := range segs {
		if x < s.x0 || x >= s.x1 {
			continue
		}
		// the trigger glyph sits before the right padding and border; the
		// space in front of it counts too
		if s.kind == hitTab && m.pages[s.index].Active && x >= s.x1-4 && x <= s.x1-2 {
			return hit{kind: hitTrigger, index: s.index}
		}
		return hit{kind: s.kind, index: s.index}
	}
	return hit{kind: hitNone, index: NoIndex}
}

// visibleRange returns the tabs [start, end) that fit from the scroll offset.
func (m Model) visibleRange(widths []int) (int, int) {
	if len(widths) == 0 {
		return 0, 0
	}
	if m.tabSpace() == 0 {
		return 0, len(widths)
	}
	start := m.offset
	if start < 0 {
		start = 0
	}
	if start >= len(widths) {
		start = len(widths) - 1
	}
	return start, m.fitFrom(start, widths)
}

func (m Model) fitFrom(start int, widths []int) int {
	space := m.tabSpace()
	used := 0
	end := start
	for end < len(widths) {
		need := widths[end]
		if end > start {
			need += gapWidth
		}
		if space > 0 && used+need > space {
			break
		}
		used += need
		end++
	}
	// always show at least one tab
	if end == start && start < len(widths) {
		end = start + 1
	}
	return end
}

func (m Model) shiftLeftToFit(last int, widths []int) int {
	space := m.tabSpace()
	used := widths[last]
	start := last
	for start > 0 && used+gapWidth+widths[start-1] <= space {
		used += gapWidth + widths[start-1]
		start--
	}
	return start
}

// ensureVisible moves the scroll offset so the active tab is shown and no
// space is wasted at the right end.
func (m *Model) ensureVisible() {
	if len(m.pages) == 0 || m.tabSpace() == 0 {
		m.offset = 0
		return
	}
	widths := m.tabWidths()
	if m.offset >= len(widths) {
		m.offset = len(widths) - 1
	}
	if m.offset < 0 {
		m.offset = 0
	}

	active := m.ActiveIndex()
	if active >= 0 {
		_, end := m.visibleRange(widths)
		if active < m.offset {
			m.offset = active
		} else if active >= end {
			m.offset = m.shiftLeftToFit(active, widths)
		}
	}

	if limit := m.shiftLeftToFit(len(widths)-1, widths); m.offset > limit {
		m.offset = limit
	}
}

// ScrollBy moves the scroll offset by delta tabs.
func (m *Model) ScrollBy(delta int) {
	if len(m.pages) == 0 || m.tabSpace() == 0 {
		return
	}
	widths := m.tabWidths()
	m.offset += delta
	if limit := m.shiftLeftToFit(len(widths)-1, widths); m.offset > limit {
		m.offset = limit
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
