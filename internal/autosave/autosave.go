// Package autosave periodically flushes an open document's current
// text back to disk, grounded on the teacher's cron-driven event
// scheduler (internal/scheduler/scheduler.go's robfig/cron/v3 usage)
// but reduced to the one recurring job this domain needs instead of a
// general event table.
package autosave

import (
	"os"
	"strings"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/cubic-knight/proofedit/internal/obs"
)

// Flusher periodically writes an open document to disk on a cron
// schedule.
type Flusher struct {
	cron *cron.Cron
	mu   sync.Mutex
	get  func() (path string, readOnly bool, lines []string, ok bool)
}

// New builds a Flusher that calls get to snapshot the currently open
// document every time the schedule fires. schedule is a standard
// (5-field, minute-resolution) cron expression, e.g. "*/2 * * * *" for
// every two minutes.
func New(schedule string, get func() (path string, readOnly bool, lines []string, ok bool)) (*Flusher, error) {
	f := &Flusher{cron: cron.New(), get: get}
	if _, err := f.cron.AddFunc(schedule, f.flush); err != nil {
		return nil, err
	}
	return f, nil
}

// Start begins running the cron schedule in the background.
func (f *Flusher) Start() { f.cron.Start() }

// Stop halts the schedule and waits for any in-flight flush to finish.
func (f *Flusher) Stop() { <-f.cron.Stop().Done() }

func (f *Flusher) flush() {
	f.mu.Lock()
	defer f.mu.Unlock()

	path, readOnly, lines, ok := f.get()
	if !ok || readOnly || path == "" {
		return
	}
	content := strings.Join(lines, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		obs.Debug("autosave: write %s failed: %v", path, err)
		return
	}
	obs.Debug("autosave: wrote %s (%d lines)", path, len(lines))
}
