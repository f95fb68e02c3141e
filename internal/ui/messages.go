// Package ui provides the Bubble Tea TUI for feedline.
package ui

import (
	"github.com/abelbrown/feedline/internal/feeds"
	"github.com/abelbrown/feedline/internal/store"
)

// ItemsLoaded is sent when an aggregation pass finishes.
type ItemsLoaded struct {
	Items []feeds.CombinedItem
	Err   error
}

// SourcesLoaded is sent when the saved source list is read back.
type SourcesLoaded struct {
	Sources []store.Source
	Err     error
}

// SourceAdded is sent after an add attempt.
type SourceAdded struct {
	Err error
}

// SourceRemoved is sent after a remove attempt.
type SourceRemoved struct {
	Err error
}

// SettingsSaved is sent after the settings record is written.
type SettingsSaved struct {
	Settings store.Settings
	Err      error
}

// LinkOpened is sent after trying to open an item link in the browser.
type LinkOpened struct {
	Err error
}
