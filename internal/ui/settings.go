package ui

import (
	"fmt"
	"strings"

	"github.com/abelbrown/feedline/internal/store"
)

// settingsModel is the settings screen. Edits are written through to
// the store on every toggle, mirroring the switch-flip behavior of
// the original screen.
type settingsModel struct {
	settings store.Settings
	cursor   int // 0 = show images, 1 = default filter
	width    int
	height   int
	saved    bool
}

func newSettingsModel(settings store.Settings) settingsModel {
	return settingsModel{settings: settings}
}

func (m *settingsModel) setSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *settingsModel) moveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *settingsModel) moveDown() {
	if m.cursor < 1 {
		m.cursor++
	}
}

// toggle flips the value under the cursor and returns the settings to
// persist.
func (m *settingsModel) toggle() store.Settings {
	switch m.cursor {
	case 0:
		m.settings.ShowImages = !m.settings.ShowImages
	case 1:
		if m.settings.DefaultFilter == "all" {
			m.settings.DefaultFilter = "unread"
		} else {
			m.settings.DefaultFilter = "all"
		}
	}
	m.saved = false
	return m.settings
}

func (m settingsModel) view() string {
	var b strings.Builder

	b.WriteString(TitleBar.Render("Settings"))
	b.WriteString("\n\n")

	rows := []struct {
		name  string
		value string
	}{
		{"Show images in content", onOff(m.settings.ShowImages)},
		{"Default filter", m.settings.DefaultFilter},
	}

	for i, row := range rows {
		line := fmt.Sprintf("%s: %s", row.name, row.value)
		if i == m.cursor {
			b.WriteString(SelectedItem.Render(line))
		} else {
			b.WriteString(NormalItem.Render(line))
		}
		b.WriteString("\n")
	}

	if m.saved {
		b.WriteString("\n")
		b.WriteString(SuccessStyle.Render("Saved"))
		b.WriteString("\n")
	}

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
