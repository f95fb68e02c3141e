package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/feedline/internal/feeds"
	"github.com/abelbrown/feedline/internal/filter"
	"github.com/abelbrown/feedline/internal/store"
)

// screen identifies which view is active.
type screen int

const (
	screenList screen = iota
	screenManage
	screenSettings
	screenDetail
)

// App is the top-level Bubble Tea model. It owns screen switching and
// routes messages to the per-screen sub-models.
type App struct {
	store     store.Store
	agg       *feeds.Aggregator
	itemLimit int

	screen screen
	width  int
	height int

	list     listModel
	manage   manageModel
	settings settingsModel
	detail   detailModel
}

// New creates the app. The persisted settings decide the initial
// recency filter and whether images render in the detail view.
func New(st store.Store, agg *feeds.Aggregator, settings store.Settings, itemLimit int) App {
	list := newListModel(filter.ParseMode(settings.DefaultFilter))
	list.loading = true

	return App{
		store:     st,
		agg:       agg,
		itemLimit: itemLimit,
		screen:    screenList,
		list:      list,
		manage:    newManageModel(),
		settings:  newSettingsModel(settings),
		detail:    newDetailModel(settings.ShowImages),
	}
}

// Init kicks off the first aggregation pass.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.list.spin.Tick,
		loadItemsCmd(a.agg, a.itemLimit),
		loadSourcesCmd(a.store),
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.setSize(msg.Width, msg.Height)
		a.manage.setSize(msg.Width, msg.Height)
		a.settings.setSize(msg.Width, msg.Height)
		a.detail.setSize(msg.Width, msg.Height)
		return a, nil

	case spinner.TickMsg:
		if a.list.loading {
			var cmd tea.Cmd
			a.list.spin, cmd = a.list.spin.Update(msg)
			return a, cmd
		}
		return a, nil

	case ItemsLoaded:
		a.list.loading = false
		if msg.Err != nil {
			// Retryable: keep the stale list on screen
			a.list.status = "Could not refresh feeds. Press r to retry."
			return a, nil
		}
		a.list.status = ""
		a.list.setItems(msg.Items)
		return a, nil

	case SourcesLoaded:
		if msg.Err == nil {
			a.manage.setSources(msg.Sources)
		}
		return a, nil

	case SourceAdded, SourceRemoved:
		// Source list changed: re-read it and refresh the items
		a.list.loading = true
		return a, tea.Batch(
			loadSourcesCmd(a.store),
			a.list.spin.Tick,
			loadItemsCmd(a.agg, a.itemLimit),
		)

	case SettingsSaved:
		if msg.Err == nil {
			a.settings.settings = msg.Settings
			a.settings.saved = true
			a.detail.showImages = msg.Settings.ShowImages
			a.detail.setContent()
		}
		return a, nil

	case LinkOpened:
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.screen {
	case screenList:
		return a.handleListKey(msg)
	case screenManage:
		return a.handleManageKey(msg)
	case screenSettings:
		return a.handleSettingsKey(msg)
	case screenDetail:
		return a.handleDetailKey(msg)
	}
	return a, nil
}

func (a App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit

	case "up", "k":
		a.list.moveUp()

	case "down", "j":
		a.list.moveDown()

	case "enter":
		if item, ok := a.list.selected(); ok {
			a.detail.setItem(item, a.settings.settings.ShowImages)
			a.screen = screenDetail
		}

	case "f":
		a.list.cycleMode()

	case "r":
		if !a.list.loading {
			a.list.loading = true
			a.list.status = ""
			return a, tea.Batch(a.list.spin.Tick, loadItemsCmd(a.agg, a.itemLimit))
		}

	case "m":
		a.screen = screenManage
		return a, loadSourcesCmd(a.store)

	case "s":
		a.settings.saved = false
		a.screen = screenSettings
	}

	return a, nil
}

func (a App) handleManageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.manage.editing {
		switch msg.String() {
		case "esc":
			a.manage.stopEditing()
			return a, nil

		case "tab":
			return a, a.manage.switchFocus()

		case "enter":
			// Enter on the title input advances to the URL input;
			// enter on the URL input submits.
			if a.manage.focus == 0 {
				return a, a.manage.switchFocus()
			}
			src, ok := a.manage.submit()
			if !ok {
				return a, nil
			}
			a.manage.stopEditing()
			return a, addSourceCmd(a.store, src)

		default:
			return a, a.manage.updateInputs(msg)
		}
	}

	switch msg.String() {
	case "q", "esc":
		a.screen = screenList

	case "a":
		return a, a.manage.startEditing()

	case "up", "k":
		a.manage.moveUp()

	case "down", "j":
		a.manage.moveDown()

	case "d", "x":
		if url, ok := a.manage.selectedURL(); ok {
			return a, removeSourceCmd(a.store, url)
		}
	}

	return a, nil
}

func (a App) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		a.screen = screenList
		// Re-apply the default filter in case it changed
		a.list.mode = filter.ParseMode(a.settings.settings.DefaultFilter)
		a.list.applyFilter()

	case "up", "k":
		a.settings.moveUp()

	case "down", "j":
		a.settings.moveDown()

	case "enter", " ":
		next := a.settings.toggle()
		return a, saveSettingsCmd(a.store, next)
	}

	return a, nil
}

func (a App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "backspace":
		a.screen = screenList
		return a, nil

	case "o":
		return a, openLinkCmd(a.detail.item.Link)
	}

	return a, a.detail.update(msg)
}

// View implements tea.Model.
func (a App) View() string {
	var body string
	switch a.screen {
	case screenList:
		body = a.list.view()
	case screenManage:
		body = a.manage.view()
	case screenSettings:
		body = a.settings.view()
	case screenDetail:
		body = a.detail.view()
	}

	return body + a.statusBar()
}

func (a App) statusBar() string {
	var hints []string
	switch a.screen {
	case screenList:
		hints = []string{"↑↓ navigate", "enter open", "f filter", "r refresh", "m feeds", "s settings", "q quit"}
	case screenManage:
		if a.manage.editing {
			hints = []string{"tab next field", "enter add", "esc cancel"}
		} else {
			hints = []string{"a add", "d remove", "esc back"}
		}
	case screenSettings:
		hints = []string{"↑↓ navigate", "enter toggle", "esc back"}
	case screenDetail:
		hints = []string{"↑↓ scroll", "o open link", "esc back"}
	}

	for i, h := range hints {
		key, rest, found := strings.Cut(h, " ")
		if found {
			hints[i] = StatusBarKey.Render(key) + " " + rest
		}
	}
	return StatusBar.Render(strings.Join(hints, " · "))
}
