// Command proofeditd is the multi-session SSH front door: every
// connecting client gets its own editor.Data against the same shared
// library catalogue, following the composition-root shape of
// cmd/vision3/main.go (flag parsing, config load, then handing
// everything to a long-running server) trimmed down to this domain's
// single server instead of the BBS's many subsystems.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cubic-knight/proofedit/internal/autosave"
	"github.com/cubic-knight/proofedit/internal/config"
	"github.com/cubic-knight/proofedit/internal/library"
	"github.com/cubic-knight/proofedit/internal/obs"
	"github.com/cubic-knight/proofedit/internal/sshserve"
)

func main() {
	configPath := flag.String("config", "data/proofedit.json", "path to proofedit config JSON")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()
	obs.DebugEnabled = *debug

	cfg, err := config.LoadProofeditConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "proofeditd: %v\n", err)
		os.Exit(1)
	}

	watcher, cat, err := library.NewWatcher(cfg.LibraryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "proofeditd: loading library: %v\n", err)
		os.Exit(1)
	}
	defer watcher.Close()
	lib, refs := &cat.Data, cat.References

	srv, err := sshserve.NewServer(sshserve.Config{
		Addr:        cfg.SSHAddr,
		HostKeyPath: cfg.HostKeyPath,
		Lib:         lib,
		Refs:        refs,
		DocsDir:     cfg.DocsDir,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "proofeditd: %v\n", err)
		os.Exit(1)
	}

	go func() {
		for next := range watcher.Updates() {
			srv.UpdateLibrary(&next.Data, next.References)
			obs.Debug("proofeditd: library catalogue reloaded")
		}
	}()

	flusher, err := autosave.New(cfg.AutosaveSchedule, func() (string, bool, []string, bool) {
		for _, s := range srv.Sessions().All() {
			if path, ro, lines, ok := s.Data.Snapshot(); ok {
				return path, ro, lines, ok
			}
		}
		return "", false, nil, false
	})
	if err == nil {
		flusher.Start()
		defer flusher.Stop()
	}

	fmt.Printf("proofeditd: listening on %s\n", cfg.SSHAddr)
	if err := srv.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "proofeditd: %v\n", err)
		os.Exit(1)
	}
}
