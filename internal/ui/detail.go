package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/feedline/internal/feeds"
)

// detailModel is the article detail screen: resolved item content
// rendered as terminal text in a scrollable viewport.
type detailModel struct {
	item feeds.CombinedItem
	vp   viewport.Model

	showImages bool
	width      int
	height     int
	ready      bool
}

func newDetailModel(showImages bool) detailModel {
	return detailModel{showImages: showImages}
}

func (m *detailModel) setSize(width, height int) {
	m.width = width
	m.height = height

	// Title bar + status bar
	vpHeight := max(1, height-3)
	if !m.ready {
		m.vp = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.vp.Width = width
		m.vp.Height = vpHeight
	}
	m.setContent()
}

func (m *detailModel) setItem(item feeds.CombinedItem, showImages bool) {
	m.item = item
	m.showImages = showImages
	m.vp.GotoTop()
	m.setContent()
}

func (m *detailModel) setContent() {
	if !m.ready {
		return
	}

	var b strings.Builder
	b.WriteString(m.item.Title)
	b.WriteString("\n")
	if m.item.Link != "" {
		b.WriteString(HelpStyle.Render(m.item.Link))
		b.WriteString("\n")
	}
	b.WriteString(SourceBadge.Render(m.item.SourceTitle))
	b.WriteString("\n\n")
	b.WriteString(RenderHTML(m.item.Content, m.showImages))

	m.vp.SetContent(b.String())
}

func (m *detailModel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return cmd
}

func (m detailModel) view() string {
	var b strings.Builder

	b.WriteString(TitleBar.Render("Article"))
	b.WriteString("\n")
	if m.ready {
		b.WriteString(m.vp.View())
	}
	b.WriteString("\n")

	return b.String()
}
