// Package fileline defines the line-level data model shared by every
// parser stage: the styled FileLine, its LineContext tag, and the
// file-level FileType it can imply.
package fileline

import "github.com/cubic-knight/proofedit/internal/style"

// LineContext tags what kind of line a FileLine is. It drives both
// syntax-highlighting choices made upstream and the incremental-reparse
// policy in internal/update.
type LineContext int

const (
	Raw LineContext = iota
	Title
	Section
	SyntaxDefinition
	AxiomHypothesis
	Hypothesis
	UnprovenAssertion
	AssumedAssertion
	ProofLine
	UnexpectedLine
)

// FileType is derived exclusively from a document's first line and
// dictates how the remaining lines are split into sections.
type FileType int

const (
	Unknown FileType = iota
	SyntaxDefinitionFormula
	SyntaxDefinitionObject
	Axiom
	Theorem
)

// FileLine is one line of a parsed document: its glyphs, the style of
// each glyph, and the context that produced it.
//
// Invariant: len(Chars) == len(Colors); Colors[i] is the style of Chars[i].
type FileLine struct {
	Context LineContext
	Chars   []rune
	Colors  []style.ColorInfo
}

// String renders a FileLine back to plain text, discarding styling.
func (fl FileLine) String() string {
	return string(fl.Chars)
}

// RawLine builds an unstyled FileLine: every glyph colored NoColor.
func RawLine(ctx LineContext, chars []rune) FileLine {
	colors := make([]style.ColorInfo, len(chars))
	for i := range colors {
		colors[i] = style.NoColor
	}
	return FileLine{Context: ctx, Chars: chars, Colors: colors}
}

// Monochrome builds a FileLine where every glyph carries the same color.
func Monochrome(ctx LineContext, chars []rune, color style.ColorInfo) FileLine {
	colors := make([]style.ColorInfo, len(chars))
	for i := range colors {
		colors[i] = color
	}
	return FileLine{Context: ctx, Chars: chars, Colors: colors}
}
