// Package update applies single-keystroke edits to an already-parsed
// document, reparsing either just the touched line or the whole document
// depending on that line's LineContext — the incremental-reparse policy.
package update

import (
	"strings"

	"github.com/cubic-knight/proofedit/internal/document"
	"github.com/cubic-knight/proofedit/internal/fileline"
	"github.com/cubic-knight/proofedit/internal/formula"
	"github.com/cubic-knight/proofedit/internal/library"
	"github.com/cubic-knight/proofedit/internal/style"
)

func satSub1(n int) int {
	if n <= 0 {
		return 0
	}
	return n - 1
}

func linesToRunes(lines []fileline.FileLine) [][]rune {
	raw := make([][]rune, len(lines))
	for i, fl := range lines {
		raw[i] = fl.Chars
	}
	return raw
}

// updateLine re-derives the single line at lIndex (replacing it with
// newChars styled per ctx), except for the contexts whose meaning can
// depend on the rest of the document, which force a full ParseFile.
//
// LineContext::SyntaxDefinition always reparses as a Formula syntax here,
// even inside an object-syntax document — the original this was ported
// from hardcodes SyntaxType::Formula in this one path, and we reproduce
// that rather than silently correct it; a title/section edit still
// triggers the full reparse that fixes the coloring up.
func updateLine(newChars []rune, ctx fileline.LineContext, lines []fileline.FileLine, lIndex int, lib *library.LibraryData, refs library.References) []fileline.FileLine {
	switch ctx {
	case fileline.Title, fileline.Section, fileline.Hypothesis, fileline.ProofLine:
		raw := linesToRunes(lines)
		raw[lIndex] = newChars
		return document.ParseFile(raw, lib, refs)
	case fileline.SyntaxDefinition:
		fl, _ := formula.ParseNewSyntax(newChars, library.Formula)
		lines[lIndex] = fl
		return lines
	case fileline.AxiomHypothesis, fileline.UnprovenAssertion, fileline.AssumedAssertion:
		lines[lIndex] = formula.ParseFormula(newChars, lib, nil, ctx)
		return lines
	case fileline.UnexpectedLine:
		lines[lIndex] = fileline.Monochrome(ctx, newChars, style.FGColor(style.Red))
		return lines
	default: // Raw
		lines[lIndex] = fileline.RawLine(ctx, newChars)
		return lines
	}
}

// InsertCharacter inserts ch just before the 1-indexed (row, col) cursor
// position.
func InsertCharacter(lines []fileline.FileLine, row, col int, ch rune, lib *library.LibraryData, refs library.References) []fileline.FileLine {
	lIndex := satSub1(row)
	if lIndex >= len(lines) {
		return lines
	}
	cur := lines[lIndex]
	n := satSub1(col)
	if n > len(cur.Chars) {
		n = len(cur.Chars)
	}
	newLine := make([]rune, 0, len(cur.Chars)+1)
	newLine = append(newLine, cur.Chars[:n]...)
	newLine = append(newLine, ch)
	newLine = append(newLine, cur.Chars[n:]...)
	return updateLine(newLine, cur.Context, lines, lIndex, lib, refs)
}

// InsertNewline splits the line at (row, col) into two lines and reparses
// the whole document.
func InsertNewline(lines []fileline.FileLine, row, col int, lib *library.LibraryData, refs library.References) []fileline.FileLine {
	lIndex := satSub1(row)
	if lIndex >= len(lines) {
		return lines
	}
	raw := linesToRunes(lines)
	cur := raw[lIndex]
	n := satSub1(col)
	if n > len(cur) {
		n = len(cur)
	}
	firstPart := append([]rune(nil), cur[:n]...)
	secondPart := append([]rune(nil), cur[n:]...)

	newRaw := make([][]rune, 0, len(raw)+1)
	newRaw = append(newRaw, raw[:lIndex]...)
	newRaw = append(newRaw, firstPart, secondPart)
	newRaw = append(newRaw, raw[lIndex+1:]...)
	return document.ParseFile(newRaw, lib, refs)
}

// DeleteCharacter removes the character immediately before the 1-indexed
// (row, col) cursor, joining with the previous line when col is 1.
func DeleteCharacter(lines []fileline.FileLine, row, col int, lib *library.LibraryData, refs library.References) []fileline.FileLine {
	if col == 1 {
		return deleteNewline(lines, row, lib, refs)
	}
	lIndex := satSub1(row)
	if lIndex >= len(lines) {
		return lines
	}
	cur := lines[lIndex]
	n := satSub1(col) - 1
	if n < 0 {
		n = 0
	}
	if n > len(cur.Chars) {
		n = len(cur.Chars)
	}
	newLine := append([]rune(nil), cur.Chars[:n]...)
	skip := n + 1
	if skip < len(cur.Chars) {
		newLine = append(newLine, cur.Chars[skip:]...)
	}
	return updateLine(newLine, cur.Context, lines, lIndex, lib, refs)
}

// deleteNewline joins the line at row with the one before it. A no-op
// when there is no previous line to join with — the source this was
// ported from panics in that case; we decline to crash the editor on a
// stray backspace instead.
func deleteNewline(lines []fileline.FileLine, row int, lib *library.LibraryData, refs library.References) []fileline.FileLine {
	lIndex := satSub1(row)
	if lIndex <= 0 || lIndex >= len(lines) {
		return lines
	}
	raw := linesToRunes(lines)
	combined := append(append([]rune(nil), raw[lIndex-1]...), raw[lIndex]...)

	newRaw := make([][]rune, 0, len(raw)-1)
	newRaw = append(newRaw, raw[:lIndex-1]...)
	newRaw = append(newRaw, combined)
	newRaw = append(newRaw, raw[lIndex+1:]...)
	return document.ParseFile(newRaw, lib, refs)
}

// Render renders a full document to escape-coded terminal text, one
// string per line, each glyph prefixed by the SGR sequence for its color
// whenever that color differs from the glyph before it.
func Render(lines []fileline.FileLine) []string {
	out := make([]string, len(lines))
	for i, fl := range lines {
		var b strings.Builder
		var last style.ColorInfo
		first := true
		for j, c := range fl.Chars {
			col := fl.Colors[j]
			if first || col != last {
				b.WriteString(col.ToEscapeString())
				last = col
				first = false
			}
			b.WriteRune(c)
		}
		if !first {
			b.WriteString(style.NoColor.ToEscapeString())
		}
		out[i] = b.String()
	}
	return out
}
