// Package store persists the feed source list and reader settings.
//
// Both records are whole-value JSON blobs under fixed keys: writes
// replace the entire record, last write wins. There are no partial
// updates and no transaction semantics beyond that.
package store

import "fmt"

// Record keys. Fixed; there is no schema versioning.
const (
	keyFeeds    = "feeds"
	keySettings = "settings"
)

// Source is a user-registered feed endpoint. URL is the identity:
// no two sources in the list share a URL.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Settings is the singleton reader settings record.
type Settings struct {
	ShowImages    bool   `json:"showImages"`
	DefaultFilter string `json:"defaultFilter"` // "all" or "unread"
}

// DefaultSettings is what GetSettings returns before anything has
// been saved.
func DefaultSettings() Settings {
	return Settings{ShowImages: true, DefaultFilter: "all"}
}

// Store is the persistence contract the rest of the app programs
// against. SQLite backs production; Memory backs tests.
type Store interface {
	// ListSources returns the saved sources in insertion order,
	// or an empty slice when nothing has been persisted.
	ListSources() ([]Source, error)

	// AddSource appends src unless a source with the same URL
	// (after trimming) already exists, in which case it is a no-op.
	AddSource(src Source) error

	// RemoveSource deletes the source with the exact URL. Absent
	// URLs are a no-op, not an error.
	RemoveSource(url string) error

	// GetSettings returns the saved settings, or DefaultSettings
	// when none have been saved.
	GetSettings() (Settings, error)

	// SaveSettings replaces the settings record.
	SaveSettings(s Settings) error

	Close() error
}

// StorageError indicates a persisted record could not be read back
// (corrupt or unreadable blob). Absent records are not errors.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: corrupt record %q: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
