package editor

import (
	"testing"

	"github.com/cubic-knight/proofedit/internal/fileline"
	"github.com/cubic-knight/proofedit/internal/library"
)

func setupData(cols, rows, indent int, lines ...string) *Data {
	d := NewData(&library.LibraryData{}, library.References{})
	d.Cols, d.Rows, d.Indent = cols, rows, indent
	fl := make([]fileline.FileLine, len(lines))
	for i, s := range lines {
		fl[i] = fileline.RawLine(fileline.Raw, []rune(s))
	}
	d.File = &FileGraphics{Lines: fl, Cursor: Cursor{Row: 1, Col: 1}, Camera: 1}
	return d
}

func TestMoveLeft_AtOriginReturnsFalse(t *testing.T) {
	d := setupData(80, 24, 4, "abc")
	if d.MoveLeft() {
		t.Fatal("MoveLeft at (1,1) should report false")
	}
}

func TestMoveLeft_WrapsToPreviousLineEnd(t *testing.T) {
	d := setupData(80, 24, 4, "abc", "de")
	d.File.Cursor = Cursor{Row: 2, Col: 1}
	if !d.MoveLeft() {
		t.Fatal("expected MoveLeft to succeed")
	}
	// line 1 "abc" has length 3, so the cursor can reach column 4 (one past the end)
	want := Cursor{Row: 1, Col: 4}
	if d.File.Cursor != want {
		t.Errorf("cursor = %+v, want %+v", d.File.Cursor, want)
	}
}

func TestMoveRight_AtLastPositionReturnsFalse(t *testing.T) {
	d := setupData(80, 24, 4, "ab")
	d.File.Cursor = Cursor{Row: 1, Col: 3}
	if d.MoveRight() {
		t.Fatal("MoveRight at the last position should report false")
	}
}

func TestMoveRight_WrapsToNextLineStart(t *testing.T) {
	d := setupData(80, 24, 4, "ab", "cd")
	d.File.Cursor = Cursor{Row: 1, Col: 3}
	if !d.MoveRight() {
		t.Fatal("expected MoveRight to succeed")
	}
	want := Cursor{Row: 2, Col: 1}
	if d.File.Cursor != want {
		t.Errorf("cursor = %+v, want %+v", d.File.Cursor, want)
	}
}

func TestMoveUp_AtFirstLineTopReturnsFalse(t *testing.T) {
	d := setupData(80, 24, 4, "abc")
	if d.MoveUp() {
		t.Fatal("MoveUp at (1,1) should report false")
	}
}

func TestMoveUp_FromSecondLineGoesToFirst(t *testing.T) {
	d := setupData(80, 24, 4, "hello", "world")
	d.File.Cursor = Cursor{Row: 2, Col: 3}
	if !d.MoveUp() {
		t.Fatal("expected MoveUp to succeed")
	}
	if d.File.Cursor.Row != 1 {
		t.Errorf("Row = %d, want 1", d.File.Cursor.Row)
	}
}

func TestMoveDown_AtLastLineEndReturnsFalse(t *testing.T) {
	d := setupData(80, 24, 4, "abc")
	d.File.Cursor = Cursor{Row: 1, Col: 4}
	if d.MoveDown() {
		t.Fatal("MoveDown at the last position should report false")
	}
}

func TestMoveDown_FromFirstLineGoesToSecond(t *testing.T) {
	d := setupData(80, 24, 4, "hello", "world")
	d.File.Cursor = Cursor{Row: 1, Col: 3}
	if !d.MoveDown() {
		t.Fatal("expected MoveDown to succeed")
	}
	if d.File.Cursor.Row != 2 {
		t.Errorf("Row = %d, want 2", d.File.Cursor.Row)
	}
}

func TestGetLineLen_OutOfRangeIsOne(t *testing.T) {
	d := setupData(80, 24, 4, "abc")
	if got := d.getLineLen(5); got != 1 {
		t.Errorf("getLineLen(5) = %d, want 1", got)
	}
}
