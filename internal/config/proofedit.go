package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// ProofeditConfig is the top-level configuration for the proof editor
// binaries, loaded the way LoadServerConfig loads config.json: a
// hard-coded default overlaid with whatever the file on disk specifies.
type ProofeditConfig struct {
	Cols             int    `json:"cols"`
	Rows             int    `json:"rows"`
	IndentBase       int    `json:"indentBase"`
	LibraryPath      string `json:"libraryPath"`
	DocsDir          string `json:"docsDir"`
	HostKeyPath      string `json:"hostKeyPath"`
	SSHAddr          string `json:"sshAddr"`
	AutosaveSchedule string `json:"autosaveSchedule"`
}

// LoadProofeditConfig reads path (a JSON file) and overlays it on top
// of sensible defaults. A missing file is not an error: the defaults
// are returned as-is.
func LoadProofeditConfig(path string) (ProofeditConfig, error) {
	cfg := ProofeditConfig{
		Cols:             80,
		Rows:             24,
		IndentBase:       4,
		LibraryPath:      "data/library.json",
		DocsDir:          "data/docs",
		HostKeyPath:      "data/host_key",
		SSHAddr:          "0.0.0.0:2323",
		AutosaveSchedule: "*/2 * * * *",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("WARN: proofedit config not found at %s. Using default settings.", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read proofedit config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse proofedit config %s: %w", path, err)
	}
	return cfg, nil
}
