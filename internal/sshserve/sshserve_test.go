package sshserve

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/cubic-knight/proofedit/internal/editor"
	"github.com/cubic-knight/proofedit/internal/fileline"
	"github.com/cubic-knight/proofedit/internal/library"
)

func TestRegistry_AddRemoveAll(t *testing.T) {
	r := NewRegistry()
	s1 := &Session{ID: uuid.New(), Data: editor.NewData(&library.LibraryData{}, library.References{})}
	s2 := &Session{ID: uuid.New(), Data: editor.NewData(&library.LibraryData{}, library.References{})}
	r.add(s1)
	r.add(s2)
	if len(r.All()) != 2 {
		t.Fatalf("len(All()) = %d, want 2", len(r.All()))
	}
	r.remove(s1.ID)
	all := r.All()
	if len(all) != 1 || all[0].ID != s2.ID {
		t.Fatalf("after remove, All() = %+v", all)
	}
}

func TestNewServer_MissingHostKeyErrors(t *testing.T) {
	_, err := NewServer(Config{Addr: ":0", HostKeyPath: "/nonexistent/host_key"})
	if err == nil {
		t.Error("expected an error for a missing host key file")
	}
}

func TestUpdateLibrary_PushesToLiveSessions(t *testing.T) {
	s := &Server{reg: NewRegistry(), cfg: Config{}}
	sess := &Session{ID: uuid.New(), Data: editor.NewData(&library.LibraryData{}, library.References{})}
	s.reg.add(sess)

	newLib := &library.LibraryData{}
	newRefs := library.References{}
	s.UpdateLibrary(newLib, newRefs)

	if sess.Data.Lib != newLib {
		t.Error("expected the live session's Lib to be updated")
	}
	if s.cfg.Lib != newLib {
		t.Error("expected the server's default Lib to be updated")
	}
}

func TestRedraw_WritesRenderedLines(t *testing.T) {
	data := editor.NewData(&library.LibraryData{}, library.References{})
	data.File = &editor.FileGraphics{
		Lines: []fileline.FileLine{fileline.RawLine(fileline.Raw, []rune("## Axiom X"))},
	}
	var buf bytes.Buffer
	redraw(&buf, data)
	if !strings.Contains(buf.String(), "Axiom X") {
		t.Errorf("redraw output = %q, want it to contain the rendered line", buf.String())
	}
}

func TestRedraw_NoOpenFileWritesNothing(t *testing.T) {
	data := editor.NewData(&library.LibraryData{}, library.References{})
	var buf bytes.Buffer
	redraw(&buf, data)
	if buf.Len() != 0 {
		t.Errorf("expected no output with no open file, got %q", buf.String())
	}
}
