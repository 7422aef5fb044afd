package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cubic-knight/proofedit/internal/library"
)

func TestHandleKeyInFileEdition_InsertsPrintableChar(t *testing.T) {
	d := setupData(80, 24, 4, "ac")
	d.State = StateEditingFile
	d.File.Cursor = Cursor{Row: 1, Col: 2}
	d.HandleKeyInFileEdition(int('b'))
	if string(d.File.Lines[0].Chars) != "abc" {
		t.Errorf("Chars = %q, want %q", string(d.File.Lines[0].Chars), "abc")
	}
	if d.File.Cursor != (Cursor{Row: 1, Col: 3}) {
		t.Errorf("cursor = %+v, want (1,3)", d.File.Cursor)
	}
}

func TestHandleKeyInFileEdition_BackspaceJoinsLines(t *testing.T) {
	d := setupData(80, 24, 4, "not a title", "second")
	d.State = StateEditingFile
	d.File.Cursor = Cursor{Row: 2, Col: 1}
	d.HandleKeyInFileEdition(KeyBackspace)
	if len(d.File.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(d.File.Lines))
	}
	if string(d.File.Lines[0].Chars) != "not a titlesecond" {
		t.Errorf("Chars = %q", string(d.File.Lines[0].Chars))
	}
}

func TestHandleKeyInFileEdition_EscReturnsToMenu(t *testing.T) {
	d := setupData(80, 24, 4, "abc")
	d.State = StateEditingFile
	d.HandleKeyInFileEdition(KeyEsc)
	if d.State != StateInMenu {
		t.Errorf("State = %v, want StateInMenu", d.State)
	}
}

func TestHandleKeyInFileEdition_TabEntersSpecialCharMode(t *testing.T) {
	d := setupData(80, 24, 4, "abc")
	d.State = StateEditingFile
	d.HandleKeyInFileEdition(KeyTab)
	if d.State != StateInsertSpecialChar {
		t.Errorf("State = %v, want StateInsertSpecialChar", d.State)
	}
}

func TestHandleKeyInCharInsertion_InsertsSingleCodePoint(t *testing.T) {
	d := setupData(80, 24, 4, "x")
	d.State = StateInsertSpecialChar
	d.File.Cursor = Cursor{Row: 1, Col: 2}
	for _, r := range "945" { // 945 decimal = U+03B1 GREEK SMALL LETTER ALPHA
		d.HandleKeyInCharInsertion(int(r))
	}
	d.HandleKeyInCharInsertion(KeyEnter)
	if d.State != StateEditingFile {
		t.Errorf("State = %v, want StateEditingFile", d.State)
	}
	if string(d.File.Lines[0].Chars) != "xα" {
		t.Errorf("Chars = %q, want %q", string(d.File.Lines[0].Chars), "xα")
	}
}

func TestHandleKeyInCharInsertion_MultipleSpaceSeparatedCodePoints(t *testing.T) {
	d := setupData(80, 24, 4, "")
	d.State = StateInsertSpecialChar
	for _, r := range "945 946" { // alpha, beta
		d.HandleKeyInCharInsertion(int(r))
	}
	d.HandleKeyInCharInsertion(KeyEnter)
	if string(d.File.Lines[0].Chars) != "αβ" {
		t.Errorf("Chars = %q, want %q", string(d.File.Lines[0].Chars), "αβ")
	}
}

func TestHandleKeyInCharInsertion_UnparseableCommandInsertsNothing(t *testing.T) {
	d := setupData(80, 24, 4, "x")
	d.State = StateInsertSpecialChar
	for _, r := range "not-a-number" {
		d.HandleKeyInCharInsertion(int(r))
	}
	d.HandleKeyInCharInsertion(KeyEnter)
	if string(d.File.Lines[0].Chars) != "x" {
		t.Errorf("Chars = %q, want unchanged %q", string(d.File.Lines[0].Chars), "x")
	}
}

func TestHandleKeyInMenu_EnterOpensSelectedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "thm.proof"), []byte("## Axiom X\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	d := NewData(&library.LibraryData{}, library.References{})
	d.MenuDir = dir
	d.MenuEntries = []string{"thm.proof"}
	d.MenuCursor = 1
	d.HandleKeyInMenu(KeyEnter)
	if d.State != StateEditingFile {
		t.Fatalf("State = %v, want StateEditingFile", d.State)
	}
	if d.File == nil || len(d.File.Lines) == 0 {
		t.Fatal("expected an open file with parsed lines")
	}
}

func TestHandleKey_CtrlCExitsFromAnyState(t *testing.T) {
	for _, state := range []State{StateInMenu, StateEditingFile, StateInsertSpecialChar} {
		d := setupData(80, 24, 4, "abc")
		d.State = state
		d.HandleKey(KeyCtrlC)
		if d.State != StateShouldExit {
			t.Errorf("starting state %v: State after Ctrl-C = %v, want StateShouldExit", state, d.State)
		}
	}
}

func TestHandleKeyInMenu_NavigationMovesCursor(t *testing.T) {
	d := NewData(&library.LibraryData{}, library.References{})
	d.MenuEntries = []string{"a", "b", "c"}
	d.MenuCursor = 1
	d.HandleKeyInMenu(KeyArrowDown)
	if d.MenuCursor != 2 {
		t.Errorf("MenuCursor = %d, want 2", d.MenuCursor)
	}
	d.HandleKeyInMenu(KeyArrowUp)
	if d.MenuCursor != 1 {
		t.Errorf("MenuCursor = %d, want 1", d.MenuCursor)
	}
}
