package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLite is the production Store. Records live in a two-row key-value
// table; each read and write handles the full serialized blob.
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type SQLite struct {
	db *sql.DB
	mu sync.RWMutex // Protects all database operations
}

// Compile-time interface check.
var _ Store = (*SQLite)(nil)

// Open creates a SQLite store at the given database path.
// Creates the table if it doesn't exist.
// Uses WAL mode for better concurrent read performance (file-based DBs only).
func Open(dbPath string) (*SQLite, error) {
	// Build connection string based on database type
	connStr := dbPath
	if dbPath == ":memory:" {
		// For in-memory databases, use shared cache mode so all connections
		// in the pool see the same database
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// For in-memory databases, limit to 1 connection to avoid issues
	// with multiple connections getting different databases
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Enable WAL mode for file-based databases (not :memory:)
	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &SQLite{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

func (s *SQLite) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
// Thread-safe: acquires write lock to prevent closing during in-flight operations.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// get reads the raw value for key. Absent keys return ok=false, not an error.
// Caller must hold s.mu (read lock is sufficient).
func (s *SQLite) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %q: %w", key, err)
	}
	return value, true, nil
}

// put replaces the value for key.
// Caller must hold s.mu (write lock).
func (s *SQLite) put(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// ListSources returns the saved source list in insertion order.
// Thread-safe: acquires read lock.
func (s *SQLite) ListSources() ([]Source, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readSources()
}

func (s *SQLite) readSources() ([]Source, error) {
	raw, ok, err := s.get(keyFeeds)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Source{}, nil
	}

	var sources []Source
	if err := json.Unmarshal([]byte(raw), &sources); err != nil {
		return nil, &StorageError{Key: keyFeeds, Err: err}
	}
	if sources == nil {
		sources = []Source{}
	}
	return sources, nil
}

func (s *SQLite) writeSources(sources []Source) error {
	data, err := json.Marshal(sources)
	if err != nil {
		return fmt.Errorf("marshal sources: %w", err)
	}
	return s.put(keyFeeds, string(data))
}

// AddSource appends src to the list unless its URL (trimmed) is
// already present. Persists the full list.
// Thread-safe: acquires write lock.
func (s *SQLite) AddSource(src Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sources, err := s.readSources()
	if err != nil {
		return err
	}

	candidate := strings.TrimSpace(src.URL)
	for _, existing := range sources {
		if strings.TrimSpace(existing.URL) == candidate {
			return nil
		}
	}

	return s.writeSources(append(sources, src))
}

// RemoveSource deletes the source whose URL matches exactly.
// Thread-safe: acquires write lock.
func (s *SQLite) RemoveSource(url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sources, err := s.readSources()
	if err != nil {
		return err
	}

	next := sources[:0]
	for _, existing := range sources {
		if existing.URL != url {
			next = append(next, existing)
		}
	}
	if len(next) == len(sources) {
		return nil
	}

	return s.writeSources(next)
}

// GetSettings returns the saved settings record, or defaults when
// nothing has been saved.
// Thread-safe: acquires read lock.
func (s *SQLite) GetSettings() (Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok, err := s.get(keySettings)
	if err != nil {
		return Settings{}, err
	}
	if !ok {
		return DefaultSettings(), nil
	}

	var settings Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return Settings{}, &StorageError{Key: keySettings, Err: err}
	}
	return settings, nil
}

// SaveSettings replaces the settings record.
// Thread-safe: acquires write lock.
func (s *SQLite) SaveSettings(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return s.put(keySettings, string(data))
}
