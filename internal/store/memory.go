package store

import (
	"strings"
	"sync"
)

// Memory is an in-memory Store with the same semantics as SQLite.
// Used by tests and anywhere a throwaway store is handy.
type Memory struct {
	mu       sync.RWMutex
	sources  []Source
	settings *Settings // nil until SaveSettings
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// ListSources returns a copy of the saved sources in insertion order.
func (m *Memory) ListSources() ([]Source, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sources := make([]Source, len(m.sources))
	copy(sources, m.sources)
	return sources, nil
}

// AddSource appends src unless its URL (trimmed) is already present.
func (m *Memory) AddSource(src Source) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	candidate := strings.TrimSpace(src.URL)
	for _, existing := range m.sources {
		if strings.TrimSpace(existing.URL) == candidate {
			return nil
		}
	}

	m.sources = append(m.sources, src)
	return nil
}

// RemoveSource deletes the source whose URL matches exactly.
func (m *Memory) RemoveSource(url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := make([]Source, 0, len(m.sources))
	for _, existing := range m.sources {
		if existing.URL != url {
			next = append(next, existing)
		}
	}
	m.sources = next
	return nil
}

// GetSettings returns the saved settings, or defaults.
func (m *Memory) GetSettings() (Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.settings == nil {
		return DefaultSettings(), nil
	}
	return *m.settings, nil
}

// SaveSettings replaces the settings record.
func (m *Memory) SaveSettings(s Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings = &s
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
