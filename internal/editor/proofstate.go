package editor

import (
	"os"
	"strconv"
	"strings"

	"github.com/anmitsu/go-shlex"

	"github.com/cubic-knight/proofedit/internal/document"
	"github.com/cubic-knight/proofedit/internal/fileline"
	"github.com/cubic-knight/proofedit/internal/library"
)

// State is the top-level mode the proof editor is in, mirroring the
// four-state machine the terminal core runs through: picking a file,
// editing one, entering a special character by code point, or winding
// down.
type State int

const (
	StateInMenu State = iota
	StateEditingFile
	StateInsertSpecialChar
	StateShouldExit
)

// Cursor is a 1-indexed (row, column) position into a FileGraphics'
// lines.
type Cursor struct {
	Row, Col int
}

// FileGraphics is the in-memory state of one open document: its parsed
// lines, the cursor position within them, and the topmost visible row
// (the "camera").
type FileGraphics struct {
	Path     string
	Cursor   Cursor
	Camera   int
	Lines    []fileline.FileLine
	ReadOnly bool
}

// Open reads path, parses it as a proof document, and returns a fresh
// FileGraphics with the cursor and camera both reset to the top.
func Open(path string, lib *library.LibraryData, refs library.References) (*FileGraphics, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw [][]rune
	if len(contents) > 0 {
		text := strings.TrimSuffix(string(contents), "\n")
		for _, s := range strings.Split(text, "\n") {
			raw = append(raw, []rune(s))
		}
	}
	lines := document.ParseFile(raw, lib, refs)
	return &FileGraphics{
		Path:   path,
		Cursor: Cursor{Row: 1, Col: 1},
		Camera: 1,
		Lines:  lines,
	}, nil
}

// Data is the full state of a running proof-editor session: which mode
// it's in, the library it parses formulas against, the file currently
// open (if any), the file-picker's own cursor/camera, the terminal
// dimensions driving cursor-wrap math, and the in-progress text of a
// special-character command.
type Data struct {
	State State

	MenuEntries []string
	MenuCursor  int
	MenuCamera  int
	MenuDir     string

	File *FileGraphics

	SpecialCharCommand strings.Builder

	Cols, Rows int
	Indent     int

	Lib  *library.LibraryData
	Refs library.References
}

// NewData builds a Data in its startup state: in the menu, at the
// default 80x24 terminal size, indent 4, with no file open.
func NewData(lib *library.LibraryData, refs library.References) *Data {
	return &Data{
		State:      StateInMenu,
		MenuCursor: 1,
		MenuCamera: 1,
		Cols:       80,
		Rows:       24,
		Indent:     4,
		Lib:        lib,
		Refs:       refs,
	}
}

// Snapshot reports the currently open document's path, read-only flag,
// and plain-text lines, for a periodic autosave flush. ok is false when
// no file is open.
func (d *Data) Snapshot() (path string, readOnly bool, lines []string, ok bool) {
	if d.File == nil {
		return "", false, nil, false
	}
	lines = make([]string, len(d.File.Lines))
	for i, fl := range d.File.Lines {
		lines[i] = string(fl.Chars)
	}
	return d.File.Path, d.File.ReadOnly, lines, true
}

// clampIndent derives indent from the terminal's column count the way
// a WindowResize event does: one tenth of the width, clamped to [1,4].
func clampIndent(cols int) int {
	indent := cols / 10
	if indent < 1 {
		indent = 1
	}
	if indent > 4 {
		indent = 4
	}
	return indent
}

// Resize updates the terminal dimensions and re-derives indent from the
// new column count.
func (d *Data) Resize(cols, rows int) {
	d.Cols, d.Rows = cols, rows
	d.Indent = clampIndent(cols)
}

// parseSpecialCharCommand turns the accumulated special-char command
// into the runes it names: one decimal Unicode code point per
// whitespace-separated token. An empty command, or one containing a
// token that doesn't parse as a valid code point, yields nothing —
// there is no exception mechanism here, a bad command is silently
// discarded rather than partially applied.
func parseSpecialCharCommand(command string) []rune {
	if strings.TrimSpace(command) == "" {
		return nil
	}
	fields, err := shlex.Split(command, true)
	if err != nil || len(fields) == 0 {
		return nil
	}
	runes := make([]rune, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 32)
		if err != nil || n < 0 || n > 0x10FFFF || (n >= 0xD800 && n <= 0xDFFF) {
			return nil
		}
		runes = append(runes, rune(n))
	}
	return runes
}
