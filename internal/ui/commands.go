package ui

import (
	"context"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/feedline/internal/feeds"
	"github.com/abelbrown/feedline/internal/logging"
	"github.com/abelbrown/feedline/internal/store"
)

// loadItemsCmd runs a full aggregation pass. A failed pass returns
// the error for the list screen to surface as a retryable condition;
// the stale list stays on screen.
func loadItemsCmd(agg *feeds.Aggregator, limit int) tea.Cmd {
	return func() tea.Msg {
		items, err := agg.LoadAll(context.Background())
		if err != nil {
			logging.Warn("refresh failed", "error", err)
			return ItemsLoaded{Err: err}
		}
		if limit > 0 && len(items) > limit {
			items = items[:limit]
		}
		logging.Debug("refresh complete", "items", len(items))
		return ItemsLoaded{Items: items}
	}
}

func loadSourcesCmd(st store.Store) tea.Cmd {
	return func() tea.Msg {
		sources, err := st.ListSources()
		return SourcesLoaded{Sources: sources, Err: err}
	}
}

func addSourceCmd(st store.Store, src store.Source) tea.Cmd {
	return func() tea.Msg {
		err := st.AddSource(src)
		if err != nil {
			logging.Error("add source failed", "url", src.URL, "error", err)
		} else {
			logging.Info("source added", "url", src.URL)
		}
		return SourceAdded{Err: err}
	}
}

func removeSourceCmd(st store.Store, url string) tea.Cmd {
	return func() tea.Msg {
		err := st.RemoveSource(url)
		if err != nil {
			logging.Error("remove source failed", "url", url, "error", err)
		} else {
			logging.Info("source removed", "url", url)
		}
		return SourceRemoved{Err: err}
	}
}

func saveSettingsCmd(st store.Store, s store.Settings) tea.Cmd {
	return func() tea.Msg {
		err := st.SaveSettings(s)
		if err != nil {
			logging.Error("save settings failed", "error", err)
		}
		return SettingsSaved{Settings: s, Err: err}
	}
}

// openLinkCmd opens url in the system browser.
func openLinkCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if url == "" {
			return LinkOpened{}
		}

		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
		default:
			cmd = exec.Command("xdg-open", url)
		}

		err := cmd.Start()
		if err != nil {
			logging.Warn("open link failed", "url", url, "error", err)
		}
		return LinkOpened{Err: err}
	}
}
