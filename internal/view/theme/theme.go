// Package theme persists the light/dark display preference.
package theme

import (
	"os"
	"path/filepath"
	"strings"
)

// Theme is a display preference value.
type Theme string

const (
	// Light is the light preference.
	Light Theme = "light"
	// Dark is the default preference.
	Dark Theme = "dark"
)

// Store keeps the preference in a single file, the durable analog of the
// one browser-storage key the admin pages use.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the saved preference. A missing file or an unknown value
// yields Dark, matching the page default.
func (s *Store) Load() Theme {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Dark
	}
	if Theme(strings.TrimSpace(string(data))) == Light {
		return Light
	}
	return Dark
}

// Save writes the preference, creating parent directories as needed.
func (s *Store) Save(t Theme) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(t), 0o644)
}

// Toggle flips the saved preference and returns the new value.
func (s *Store) Toggle() (Theme, error) {
	next := Light
	if s.Load() == Light {
		next = Dark
	}
	if err := s.Save(next); err != nil {
		return "", err
	}
	return next, nil
}
