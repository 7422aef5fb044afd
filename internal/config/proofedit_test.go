package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProofeditConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadProofeditConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Cols != 80 || cfg.Rows != 24 || cfg.IndentBase != 4 {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.SSHAddr != "0.0.0.0:2323" {
		t.Errorf("SSHAddr = %q", cfg.SSHAddr)
	}
}

func TestLoadProofeditConfig_PartialOverlayPreservesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proofedit.json")
	if err := os.WriteFile(path, []byte(`{"sshAddr": "127.0.0.1:9999"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadProofeditConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SSHAddr != "127.0.0.1:9999" {
		t.Errorf("SSHAddr = %q, want override", cfg.SSHAddr)
	}
	if cfg.Cols != 80 || cfg.LibraryPath != "data/library.json" {
		t.Errorf("unoverlaid fields changed: %+v", cfg)
	}
}

func TestLoadProofeditConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proofedit.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProofeditConfig(path); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}
