package editor

import (
	"path/filepath"

	"github.com/cubic-knight/proofedit/internal/update"
)

// HandleKeyInMenu processes one key while the file picker is showing:
// up/down arrows move the selection, the camera follows it by one row
// at a time, and Enter opens the selected entry, switching to
// EditingFile. Everything else is ignored.
func (d *Data) HandleKeyInMenu(key int) {
	switch key {
	case KeyArrowUp:
		if d.MenuCursor > 1 {
			d.MenuCursor--
			if d.MenuCursor < d.MenuCamera {
				d.MenuCamera = d.MenuCursor
			}
		}
	case KeyArrowDown:
		if d.MenuCursor < len(d.MenuEntries) {
			d.MenuCursor++
			if d.MenuCursor >= d.MenuCamera+d.Rows {
				d.MenuCamera = d.MenuCursor - d.Rows + 1
			}
		}
	case KeyEnter:
		if d.MenuCursor < 1 || d.MenuCursor > len(d.MenuEntries) {
			return
		}
		name := d.MenuEntries[d.MenuCursor-1]
		fg, err := Open(filepath.Join(d.MenuDir, name), d.Lib, d.Refs)
		if err != nil {
			return
		}
		d.File = fg
		d.State = StateEditingFile
	}
}

// HandleKeyInFileEdition processes one key while a file is open for
// editing: arrow-equivalent keys move the cursor, Esc returns to the
// menu, printable characters insert themselves and advance the cursor,
// Enter splits the line, Backspace deletes the character behind the
// cursor (or joins with the previous line at column 1), and Tab enters
// InsertSpecialChar mode.
func (d *Data) HandleKeyInFileEdition(key int) {
	switch key {
	case KeyEsc:
		d.State = StateInMenu
	case KeyArrowUp:
		d.MoveUp()
	case KeyArrowDown:
		d.MoveDown()
	case KeyArrowLeft:
		d.MoveLeft()
	case KeyArrowRight:
		d.MoveRight()
	case KeyEnter:
		row, col := d.File.Cursor.Row, d.File.Cursor.Col
		d.File.Lines = update.InsertNewline(d.File.Lines, row, col, d.Lib, d.Refs)
		d.File.Cursor = Cursor{Row: row + 1, Col: 1}
	case KeyBackspace:
		row, col := d.File.Cursor.Row, d.File.Cursor.Col
		if col == 1 && row > 1 {
			prevLen := d.getLineLen(row - 1)
			d.File.Lines = update.DeleteCharacter(d.File.Lines, row, col, d.Lib, d.Refs)
			d.File.Cursor = Cursor{Row: row - 1, Col: prevLen}
		} else if col > 1 {
			d.File.Lines = update.DeleteCharacter(d.File.Lines, row, col, d.Lib, d.Refs)
			d.File.Cursor = Cursor{Row: row, Col: col - 1}
		}
	case KeyTab:
		d.State = StateInsertSpecialChar
		d.SpecialCharCommand.Reset()
	default:
		if IsPrintable(key) {
			row, col := d.File.Cursor.Row, d.File.Cursor.Col
			d.File.Lines = update.InsertCharacter(d.File.Lines, row, col, rune(key), d.Lib, d.Refs)
			d.File.Cursor = Cursor{Row: row, Col: col + 1}
		}
	}
}

// HandleKeyInCharInsertion accumulates a special-character command
// (one or more space-separated decimal code points) and, on Enter,
// inserts the resulting runes at the cursor before returning to
// EditingFile. A command that doesn't parse inserts nothing.
func (d *Data) HandleKeyInCharInsertion(key int) {
	switch key {
	case KeyEnter:
		runes := parseSpecialCharCommand(d.SpecialCharCommand.String())
		for _, r := range runes {
			row, col := d.File.Cursor.Row, d.File.Cursor.Col
			d.File.Lines = update.InsertCharacter(d.File.Lines, row, col, r, d.Lib, d.Refs)
			d.File.Cursor = Cursor{Row: row, Col: col + 1}
		}
		d.SpecialCharCommand.Reset()
		d.State = StateEditingFile
	case KeyBackspace:
		s := d.SpecialCharCommand.String()
		if len(s) > 0 {
			d.SpecialCharCommand.Reset()
			d.SpecialCharCommand.WriteString(s[:len(s)-1])
		}
	default:
		if IsPrintable(key) {
			d.SpecialCharCommand.WriteRune(rune(key))
		}
	}
}

// HandleKey dispatches a decoded key to whichever of the three handlers
// fits the current State. Ctrl-C exits from any state. ShouldExit is a
// terminal state: no handler runs once reached.
func (d *Data) HandleKey(key int) {
	if key == KeyCtrlC {
		d.State = StateShouldExit
		return
	}
	switch d.State {
	case StateInMenu:
		d.HandleKeyInMenu(key)
	case StateEditingFile:
		d.HandleKeyInFileEdition(key)
	case StateInsertSpecialChar:
		d.HandleKeyInCharInsertion(key)
	}
}
