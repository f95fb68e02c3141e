package store

import (
	"errors"
	"testing"
)

// openStores returns one of each Store implementation so every
// contract test runs against both backends.
func openStores(t *testing.T) map[string]Store {
	t.Helper()

	sq, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { sq.Close() })

	return map[string]Store{
		"sqlite": sq,
		"memory": NewMemory(),
	}
}

func TestOpenCreatesTable(t *testing.T) {
	sq, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer sq.Close()

	var name string
	err = sq.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='kv'").Scan(&name)
	if err != nil {
		t.Fatalf("kv table not created: %v", err)
	}
}

func TestListSourcesEmpty(t *testing.T) {
	for name, st := range openStores(t) {
		sources, err := st.ListSources()
		if err != nil {
			t.Fatalf("%s: ListSources failed: %v", name, err)
		}
		if len(sources) != 0 {
			t.Errorf("%s: expected empty list, got %d sources", name, len(sources))
		}
	}
}

func TestAddSourcePreservesInsertionOrder(t *testing.T) {
	for name, st := range openStores(t) {
		if err := st.AddSource(Source{Title: "A", URL: "http://a.example/feed"}); err != nil {
			t.Fatalf("%s: AddSource failed: %v", name, err)
		}
		if err := st.AddSource(Source{Title: "B", URL: "http://b.example/feed"}); err != nil {
			t.Fatalf("%s: AddSource failed: %v", name, err)
		}

		sources, err := st.ListSources()
		if err != nil {
			t.Fatalf("%s: ListSources failed: %v", name, err)
		}
		if len(sources) != 2 {
			t.Fatalf("%s: expected 2 sources, got %d", name, len(sources))
		}
		if sources[0].Title != "A" || sources[1].Title != "B" {
			t.Errorf("%s: insertion order not preserved: %+v", name, sources)
		}
	}
}

func TestAddSourceDuplicateURLIsNoOp(t *testing.T) {
	for name, st := range openStores(t) {
		st.AddSource(Source{Title: "First", URL: "http://x.example/feed"})
		st.AddSource(Source{Title: "Second", URL: "http://x.example/feed"})
		// Trimmed comparison: whitespace variants are the same URL
		st.AddSource(Source{Title: "Third", URL: "  http://x.example/feed  "})

		sources, _ := st.ListSources()
		if len(sources) != 1 {
			t.Fatalf("%s: expected 1 source, got %d", name, len(sources))
		}
		if sources[0].Title != "First" {
			t.Errorf("%s: duplicate add should not replace, got %+v", name, sources[0])
		}
	}
}

func TestRemoveSource(t *testing.T) {
	for name, st := range openStores(t) {
		st.AddSource(Source{Title: "A", URL: "http://a.example/feed"})
		st.AddSource(Source{Title: "B", URL: "http://b.example/feed"})
		st.AddSource(Source{Title: "C", URL: "http://c.example/feed"})

		if err := st.RemoveSource("http://b.example/feed"); err != nil {
			t.Fatalf("%s: RemoveSource failed: %v", name, err)
		}

		sources, _ := st.ListSources()
		if len(sources) != 2 {
			t.Fatalf("%s: expected 2 sources after remove, got %d", name, len(sources))
		}
		if sources[0].Title != "A" || sources[1].Title != "C" {
			t.Errorf("%s: relative order changed after remove: %+v", name, sources)
		}
	}
}

func TestRemoveSourceAbsentURLIsNoOp(t *testing.T) {
	for name, st := range openStores(t) {
		st.AddSource(Source{Title: "A", URL: "http://a.example/feed"})

		if err := st.RemoveSource("http://missing.example/feed"); err != nil {
			t.Fatalf("%s: RemoveSource of absent URL errored: %v", name, err)
		}

		sources, _ := st.ListSources()
		if len(sources) != 1 {
			t.Errorf("%s: expected list unchanged, got %d sources", name, len(sources))
		}
	}
}

func TestGetSettingsDefault(t *testing.T) {
	for name, st := range openStores(t) {
		settings, err := st.GetSettings()
		if err != nil {
			t.Fatalf("%s: GetSettings failed: %v", name, err)
		}
		if !settings.ShowImages {
			t.Errorf("%s: default ShowImages should be true", name)
		}
		if settings.DefaultFilter != "all" {
			t.Errorf("%s: default filter should be %q, got %q", name, "all", settings.DefaultFilter)
		}
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	for name, st := range openStores(t) {
		want := Settings{ShowImages: false, DefaultFilter: "unread"}
		if err := st.SaveSettings(want); err != nil {
			t.Fatalf("%s: SaveSettings failed: %v", name, err)
		}

		got, err := st.GetSettings()
		if err != nil {
			t.Fatalf("%s: GetSettings failed: %v", name, err)
		}
		if got != want {
			t.Errorf("%s: round trip mismatch: got %+v, want %+v", name, got, want)
		}
	}
}

func TestCorruptBlobIsStorageError(t *testing.T) {
	sq, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer sq.Close()

	if _, err := sq.db.Exec("INSERT INTO kv (key, value) VALUES (?, ?)", "feeds", "{corrupt"); err != nil {
		t.Fatal(err)
	}
	if _, err := sq.db.Exec("INSERT INTO kv (key, value) VALUES (?, ?)", "settings", "[]nope"); err != nil {
		t.Fatal(err)
	}

	var storageErr *StorageError

	_, err = sq.ListSources()
	if !errors.As(err, &storageErr) {
		t.Errorf("expected StorageError from ListSources, got %v", err)
	}

	_, err = sq.GetSettings()
	if !errors.As(err, &storageErr) {
		t.Errorf("expected StorageError from GetSettings, got %v", err)
	}
}

func TestSQLiteListPersistsAcrossWrites(t *testing.T) {
	sq, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer sq.Close()

	// Whole-list replace-on-write: each mutation rewrites the blob
	sq.AddSource(Source{Title: "A", URL: "http://a.example/feed"})
	sq.AddSource(Source{Title: "B", URL: "http://b.example/feed"})
	sq.RemoveSource("http://a.example/feed")
	sq.AddSource(Source{Title: "C", URL: "http://c.example/feed"})

	sources, err := sq.ListSources()
	if err != nil {
		t.Fatalf("ListSources failed: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(sources))
	}
	if sources[0].Title != "B" || sources[1].Title != "C" {
		t.Errorf("unexpected list contents: %+v", sources)
	}
}
