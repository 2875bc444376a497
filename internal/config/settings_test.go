package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() on missing file error = %v", err)
	}
	if s.Port != "" {
		t.Fatalf("missing file should yield empty settings, got port %q", s.Port)
	}

	s.Port = "/dev/ttyACM0"
	s.AvrdudePath = "/usr/bin/avrdude"
	if err := s.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Port != "/dev/ttyACM0" {
		t.Errorf("port = %q, want /dev/ttyACM0", loaded.Port)
	}
	if loaded.AvrdudePath != "/usr/bin/avrdude" {
		t.Errorf("avrdude path = %q", loaded.AvrdudePath)
	}
}

func TestSettingsRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() on corrupt file should fail")
	}
}
