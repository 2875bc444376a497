package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings are the persisted per-user preferences: the last port a
// programmer handshake succeeded on, and where avrdude lives. Loaded once at
// process start; saved only after a successful mutation.
type Settings struct {
	Port        string `json:"port,omitempty"`
	AvrdudePath string `json:"avrdude-path,omitempty"`

	path string
}

// DefaultPath returns the settings file location (~/.firestarter/config.json).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".firestarter", "config.json"), nil
}

// HomeDir returns the tool's data directory (~/.firestarter), creating it if
// needed. Downloaded firmware images land here too.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".firestarter")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return dir, nil
}

// Load reads settings from path. A missing file yields empty settings.
func Load(path string) (*Settings, error) {
	s := &Settings{path: path}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return s, nil
}

// LoadDefault loads settings from the default path.
func LoadDefault() (*Settings, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Save writes the settings back to the file they were loaded from.
func (s *Settings) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
