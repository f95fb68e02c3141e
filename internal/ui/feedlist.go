package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/feedline/internal/feeds"
	"github.com/abelbrown/feedline/internal/filter"
)

// listModel is the combined feed list screen.
type listModel struct {
	items   []feeds.CombinedItem // full combined sequence, unfiltered
	visible []feeds.CombinedItem // after the recency filter
	mode    filter.Mode

	cursor int
	offset int // index of first visible row
	width  int
	height int

	loading bool
	spin    spinner.Model
	status  string // "could not refresh" indicator, empty when fine
}

func newListModel(mode filter.Mode) listModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorHighlight)

	return listModel{
		mode: mode,
		spin: sp,
	}
}

func (m *listModel) setSize(width, height int) {
	m.width = width
	m.height = height
}

// setItems replaces the combined sequence and re-applies the filter.
func (m *listModel) setItems(items []feeds.CombinedItem) {
	m.items = items
	m.applyFilter()
}

// cycleMode advances the recency filter: all -> today -> week.
func (m *listModel) cycleMode() {
	m.mode = m.mode.Next()
	m.applyFilter()
}

func (m *listModel) applyFilter() {
	m.visible = filter.ByRecency(m.items, m.mode, time.Now())

	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
	m.ensureCursorVisible()
}

func (m listModel) selected() (feeds.CombinedItem, bool) {
	if m.cursor >= 0 && m.cursor < len(m.visible) {
		return m.visible[m.cursor], true
	}
	return feeds.CombinedItem{}, false
}

func (m *listModel) moveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
	m.ensureCursorVisible()
}

func (m *listModel) moveDown() {
	if m.cursor < len(m.visible)-1 {
		m.cursor++
	}
	m.ensureCursorVisible()
}

func (m *listModel) ensureCursorVisible() {
	visible := m.visibleLines()
	if visible <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m listModel) visibleLines() int {
	// Reserve lines for title, chips, subheader, status bar
	return max(1, m.height-6)
}

func (m listModel) view() string {
	var b strings.Builder

	b.WriteString(TitleBar.Render("feedline"))
	b.WriteString("\n")
	b.WriteString(m.renderChips())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(ErrorStyle.Render(m.status))
		b.WriteString("\n")
	} else {
		b.WriteString(Subheader.Render(fmt.Sprintf("%d items", len(m.visible))))
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString(HelpStyle.Render(m.spin.View() + " Refreshing feeds..."))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.visible) == 0 {
		b.WriteString(HelpStyle.Render("No items. Add feeds with [m], refresh with [r]."))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.offset+m.visibleLines(), len(m.visible))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	return b.String()
}

func (m listModel) renderChips() string {
	chips := make([]string, 0, 3)
	for _, mode := range []filter.Mode{filter.All, filter.Today, filter.Week} {
		if mode == m.mode {
			chips = append(chips, FilterChipActive.Render(mode.Label()))
		} else {
			chips = append(chips, FilterChip.Render(mode.Label()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m listModel) renderRow(i int) string {
	item := m.visible[i]

	title := item.Title
	if title == "" {
		title = item.Link
	}

	// Truncate before styling so ANSI sequences stay intact
	line := title + " · " + item.SourceTitle
	if m.width > 4 {
		line = truncateLine(line, m.width-2)
	}

	if i == m.cursor {
		return SelectedItem.Render(line)
	}
	return NormalItem.Render(line)
}

// truncateLine caps a rendered row at width runes.
func truncateLine(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
