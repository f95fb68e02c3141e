// feedline is a terminal RSS reader: add feed URLs, refresh them all
// at once, filter the combined list by recency, and read articles in a
// scrollable detail view.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/feedline/internal/config"
	"github.com/abelbrown/feedline/internal/feeds"
	"github.com/abelbrown/feedline/internal/fetch"
	"github.com/abelbrown/feedline/internal/logging"
	"github.com/abelbrown/feedline/internal/store"
	"github.com/abelbrown/feedline/internal/ui"
)

func main() {
	dataDir := config.DataDir()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		fatal("Failed to create data directory: %v", err)
	}

	if err := logging.Init(dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Close()

	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		fatal("Failed to load config: %v", err)
	}

	dbPath := filepath.Join(dataDir, "feedline.db")
	st, err := store.Open(dbPath)
	if err != nil {
		fatal("Failed to open store: %v", err)
	}
	defer st.Close()
	logging.Info("store opened", "path", dbPath)

	settings, err := st.GetSettings()
	if err != nil {
		// Corrupt settings blob: fall back to defaults, keep running
		logging.Warn("settings unreadable, using defaults", "error", err)
		settings = store.DefaultSettings()
	}

	fetcher := fetch.NewFetcher(cfg.Timeout(), cfg.Fetch.RatePerSecond, cfg.Fetch.UserAgent)
	agg := feeds.NewAggregator(st, fetcher)

	app := ui.New(st, agg, settings, cfg.UI.ItemLimit)

	p := tea.NewProgram(app, tea.WithAltScreen())

	logging.Info("starting UI")
	if _, err := p.Run(); err != nil {
		logging.Error("application error", "error", err)
		fatal("Error: %v", err)
	}

	logging.Info("feedline exiting normally")
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
