// Package sshserve exposes the proof editor to multiple concurrent SSH
// clients. It is grounded on the teacher's internal/sshserver (host-key
// loading and the gliderlabs/ssh server wrapper) and internal/session
// (a mutex-protected, per-connection session registry), reworked around
// one UUID-keyed session per connection instead of a BBS node number.
package sshserve

import (
	"fmt"
	"io"
	"net"
	"os"
	"sync"

	"github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	gossh "golang.org/x/crypto/ssh"

	"github.com/cubic-knight/proofedit/internal/editor"
	"github.com/cubic-knight/proofedit/internal/library"
	"github.com/cubic-knight/proofedit/internal/obs"
	"github.com/cubic-knight/proofedit/internal/update"
)

// Config holds the listener's address and host key, and the library
// catalogue every session parses formulas against.
type Config struct {
	Addr        string
	HostKeyPath string
	Lib         *library.LibraryData
	Refs        library.References
	DocsDir     string
}

// Session is one connected user's live editor state, registered under
// a random UUID for the lifetime of the SSH channel.
type Session struct {
	ID   uuid.UUID
	Data *editor.Data
}

// Registry tracks every session currently attached to the server.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewRegistry builds an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[uuid.UUID]*Session)}
}

func (r *Registry) add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

func (r *Registry) remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// All returns every currently attached session, for autosave sweeps.
func (r *Registry) All() []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	return out
}

// Server wraps a gliderlabs/ssh server configured to hand each
// connection its own editor.Data and run the input/render loop against
// it until the client disconnects or asks to exit.
type Server struct {
	inner *ssh.Server
	reg   *Registry
	cfg   Config
}

// NewServer loads cfg.HostKeyPath and wires the per-session handler.
func NewServer(cfg Config) (*Server, error) {
	keyBytes, err := os.ReadFile(cfg.HostKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read host key %s: %w", cfg.HostKeyPath, err)
	}
	signer, err := gossh.ParsePrivateKey(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("parse host key: %w", err)
	}

	s := &Server{reg: NewRegistry(), cfg: cfg}
	s.inner = &ssh.Server{
		Addr:        cfg.Addr,
		HostSigners: []ssh.Signer{signer},
		Handler:     s.handle,
	}
	return s, nil
}

// ListenAndServe blocks accepting SSH connections until the listener
// fails or is closed.
func (s *Server) ListenAndServe() error {
	return s.inner.ListenAndServe()
}

// Serve runs on an already-bound listener, for callers that want to
// control the bind themselves (tests, graceful restart).
func (s *Server) Serve(l net.Listener) error {
	return s.inner.Serve(l)
}

// Sessions returns the live session registry, for the autosave flusher
// to sweep periodically.
func (s *Server) Sessions() *Registry { return s.reg }

// UpdateLibrary replaces the catalogue new sessions start from and
// pushes it into every session already attached, so a library.Watcher
// reload reaches every open connection without a restart.
func (s *Server) UpdateLibrary(lib *library.LibraryData, refs library.References) {
	s.cfg.Lib, s.cfg.Refs = lib, refs
	for _, sess := range s.reg.All() {
		sess.Data.Lib, sess.Data.Refs = lib, refs
	}
}

func (s *Server) handle(sch ssh.Session) {
	pty, winCh, isPty := sch.Pty()
	cols, rows := 80, 24
	if isPty {
		cols, rows = pty.Window.Width, pty.Window.Height
	}

	data := editor.NewData(s.cfg.Lib, s.cfg.Refs)
	data.Resize(cols, rows)
	data.MenuDir = s.cfg.DocsDir
	if entries, err := os.ReadDir(s.cfg.DocsDir); err == nil {
		for _, de := range entries {
			if !de.IsDir() {
				data.MenuEntries = append(data.MenuEntries, de.Name())
			}
		}
	}
	sess := &Session{ID: uuid.New(), Data: data}
	s.reg.add(sess)
	defer s.reg.remove(sess.ID)

	obs.Debug("sshserve: session %s connected from %s", sess.ID, sch.RemoteAddr())

	input := editor.NewInputHandler(sch)

	if isPty {
		go func() {
			for win := range winCh {
				data.Resize(win.Width, win.Height)
			}
		}()
	}

	for data.State != editor.StateShouldExit {
		key, err := input.ReadKey()
		if err != nil {
			if err != io.EOF {
				obs.Debug("sshserve: session %s read error: %v", sess.ID, err)
			}
			return
		}
		if key == editor.KeyCtrlL {
			redraw(sch, data)
			continue
		}
		data.HandleKey(key)
		redraw(sch, data)
	}
}

func redraw(w io.Writer, data *editor.Data) {
	if data.File == nil {
		return
	}
	for _, line := range update.Render(data.File.Lines) {
		fmt.Fprintf(w, "%s\r\n", line)
	}
}
