package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/feedline/internal/store"
)

// manageModel is the add/remove feeds screen.
type manageModel struct {
	titleInput textinput.Model
	urlInput   textinput.Model
	focus      int // 0 = title, 1 = url
	editing    bool

	sources []store.Source
	cursor  int

	width  int
	height int
	status string
}

func newManageModel() manageModel {
	ti := textinput.New()
	ti.Placeholder = "Title (optional)"
	ti.CharLimit = 200
	ti.Width = 50

	ui := textinput.New()
	ui.Placeholder = "Feed URL"
	ui.CharLimit = 500
	ui.Width = 50

	return manageModel{
		titleInput: ti,
		urlInput:   ui,
	}
}

func (m *manageModel) setSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *manageModel) setSources(sources []store.Source) {
	m.sources = sources
	if m.cursor >= len(sources) {
		m.cursor = max(0, len(sources)-1)
	}
}

// startEditing focuses the input pair.
func (m *manageModel) startEditing() tea.Cmd {
	m.editing = true
	m.focus = 0
	m.status = ""
	m.titleInput.Focus()
	m.urlInput.Blur()
	return textinput.Blink
}

func (m *manageModel) stopEditing() {
	m.editing = false
	m.titleInput.Blur()
	m.urlInput.Blur()
	m.titleInput.Reset()
	m.urlInput.Reset()
}

func (m *manageModel) switchFocus() tea.Cmd {
	m.focus = (m.focus + 1) % 2
	if m.focus == 0 {
		m.urlInput.Blur()
		return m.titleInput.Focus()
	}
	m.titleInput.Blur()
	return m.urlInput.Focus()
}

// submit validates the inputs and returns the source to add. The URL
// is required; validation happens before any store call.
func (m *manageModel) submit() (store.Source, bool) {
	url := strings.TrimSpace(m.urlInput.Value())
	if url == "" {
		m.status = "Feed URL is required"
		return store.Source{}, false
	}

	title := strings.TrimSpace(m.titleInput.Value())
	if title == "" {
		title = url
	}

	return store.Source{Title: title, URL: url}, true
}

func (m *manageModel) moveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *manageModel) moveDown() {
	if m.cursor < len(m.sources)-1 {
		m.cursor++
	}
}

func (m manageModel) selectedURL() (string, bool) {
	if m.cursor >= 0 && m.cursor < len(m.sources) {
		return m.sources[m.cursor].URL, true
	}
	return "", false
}

func (m *manageModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.titleInput, cmd = m.titleInput.Update(msg)
	cmds = append(cmds, cmd)
	m.urlInput, cmd = m.urlInput.Update(msg)
	cmds = append(cmds, cmd)

	return tea.Batch(cmds...)
}

func (m manageModel) view() string {
	var b strings.Builder

	b.WriteString(TitleBar.Render("Manage feeds"))
	b.WriteString("\n\n")

	if m.editing {
		b.WriteString("  " + m.titleInput.View())
		b.WriteString("\n")
		b.WriteString("  " + m.urlInput.View())
		b.WriteString("\n")
		if m.status != "" {
			b.WriteString(ErrorStyle.Render(m.status))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(Subheader.Render("Saved feeds"))
	b.WriteString("\n")

	if len(m.sources) == 0 {
		b.WriteString(HelpStyle.Render("No feeds yet. Press [a] to add one."))
		b.WriteString("\n")
		return b.String()
	}

	for i, src := range m.sources {
		line := fmt.Sprintf("%s · %s", src.Title, src.URL)
		if m.width > 4 {
			line = truncateLine(line, m.width-2)
		}
		if i == m.cursor && !m.editing {
			b.WriteString(SelectedItem.Render(line))
		} else {
			b.WriteString(NormalItem.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
