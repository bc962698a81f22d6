// Package config resolves the demo binary's settings from the XDG base
// directories.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const appName = "tasktree"

// Settings controls the demo renderer.
type Settings struct {
	// IntervalMS is the spinner frame delay in milliseconds.
	IntervalMS int `json:"interval_ms"`

	// Plain disables colored glyphs.
	Plain bool `json:"plain,omitempty"`
}

// Defaults returns the settings used when no config file exists.
func Defaults() Settings {
	return Settings{IntervalMS: 100}
}

// Path returns the settings file location under XDG config home.
func Path() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.json")
}

// Load reads the settings file, falling back to defaults when it does not
// exist.
func Load() (Settings, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return Settings{}, err
	}

	s := Defaults()
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	if s.IntervalMS <= 0 {
		s.IntervalMS = Defaults().IntervalMS
	}
	return s, nil
}

// Save writes the settings to Path, creating the directory if needed.
func (s Settings) Save() error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Interval returns the spinner frame delay as a duration.
func (s Settings) Interval() time.Duration {
	return time.Duration(s.IntervalMS) * time.Millisecond
}
