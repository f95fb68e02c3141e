package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Config is the persistent application configuration.
//
// This is the app-level config (paths, network knobs, UI limits). The
// user-facing reader settings (show images, default filter) live in the
// feed store, not here.
type Config struct {
	// Fetch settings
	Fetch FetchConfig `json:"fetch"`

	// UI preferences
	UI UIConfig `json:"ui"`
}

// FetchConfig holds outbound HTTP settings for feed fetching.
type FetchConfig struct {
	TimeoutSeconds int     `json:"timeout_seconds"` // Per-request HTTP timeout
	RatePerSecond  float64 `json:"rate_per_second"` // Outbound request rate cap, 0 = unlimited
	UserAgent      string  `json:"user_agent"`
}

// UIConfig holds UI preferences.
type UIConfig struct {
	ItemLimit int `json:"item_limit"` // Max combined items shown in the list
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Fetch: FetchConfig{
			TimeoutSeconds: 15,
			RatePerSecond:  4,
			UserAgent:      "feedline/0.1 (+https://github.com/abelbrown/feedline)",
		},
		UI: UIConfig{
			ItemLimit: 500,
		},
	}
}

// Timeout returns the fetch timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.Fetch.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

// DataDir returns the feedline data directory.
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".feedline")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.json")
}

// Load reads config from path, or returns defaults when the file is
// absent or unreadable as JSON.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}

	// Zero values from hand-edited files fall back to defaults
	def := DefaultConfig()
	if cfg.Fetch.TimeoutSeconds <= 0 {
		cfg.Fetch.TimeoutSeconds = def.Fetch.TimeoutSeconds
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = def.Fetch.UserAgent
	}
	if cfg.UI.ItemLimit <= 0 {
		cfg.UI.ItemLimit = def.UI.ItemLimit
	}

	return &cfg, nil
}

// Save writes config to path.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
