// Package section parses a document's sections — the blocks separated by
// lines starting with '#' — into styled FileLines once internal/document
// has decided what FileType the document is and split it accordingly.
package section

import (
	"strconv"
	"strings"

	"github.com/cubic-knight/proofedit/internal/fileline"
	"github.com/cubic-knight/proofedit/internal/formula"
	"github.com/cubic-knight/proofedit/internal/library"
	"github.com/cubic-knight/proofedit/internal/style"
)

func sectionNameColor(valid bool) style.ColorInfo {
	if valid {
		return style.FGColor(style.White).BoldUnderlined()
	}
	return style.FGColor(style.Red)
}

func sectionHeaderLine(name []rune, valid bool) fileline.FileLine {
	return fileline.Monochrome(fileline.Section, name, sectionNameColor(valid))
}

func unexpectedLine(chars []rune) fileline.FileLine {
	return fileline.Monochrome(fileline.UnexpectedLine, chars, style.FGColor(style.Red))
}

// ParseSyntaxSection parses a "# Syntax" section: a header, a syntax
// definition line, and any number of trailing unexpected lines.
func ParseSyntaxSection(lines [][]rune, syntaxType library.SyntaxType) ([]fileline.FileLine, *library.Syntax) {
	if len(lines) == 0 {
		return nil, nil
	}
	header := sectionHeaderLine(lines[0], string(lines[0]) == "# Syntax")
	if len(lines) == 1 {
		return []fileline.FileLine{header}, nil
	}

	defLine, syntax := formula.ParseNewSyntax(lines[1], syntaxType)
	result := []fileline.FileLine{header, defLine}
	for _, extra := range lines[2:] {
		result = append(result, unexpectedLine(extra))
	}
	return result, syntax
}

// ParseDefinitionSection parses a "# Definition" section: a header and a
// single formula line assumed true, styled against newSyntax (if any)
// ahead of lib's established syntaxes.
func ParseDefinitionSection(lines [][]rune, lib *library.LibraryData, newSyntax *library.Syntax) []fileline.FileLine {
	if len(lines) == 0 {
		return nil
	}
	header := sectionHeaderLine(lines[0], string(lines[0]) == "# Definition")
	if len(lines) == 1 {
		return []fileline.FileLine{header}
	}

	defLine := formula.ParseFormula(lines[1], lib, newSyntax, fileline.AssumedAssertion)
	result := []fileline.FileLine{header, defLine}
	for _, extra := range lines[2:] {
		result = append(result, unexpectedLine(extra))
	}
	return result
}

// ParseHypothesisSection parses a "# Hypothesis"/"# Hypotheses" section:
// a header followed by "name: formula" lines. It returns the styled lines
// and the ordered list of hypothesis names, for later use validating
// proof-line theorem references.
func ParseHypothesisSection(lines [][]rune, lib *library.LibraryData) ([]fileline.FileLine, []string) {
	if len(lines) == 0 {
		return nil, nil
	}
	name := string(lines[0])
	header := sectionHeaderLine(lines[0], name == "# Hypothesis" || name == "# Hypotheses")

	result := []fileline.FileLine{header}
	var hypotNames []string
	for _, line := range lines[1:] {
		idx := -1
		for i, c := range line {
			if c == ':' {
				idx = i
				break
			}
		}
		switch {
		case idx >= 0:
			hypotName := line[:idx]
			hypotNames = append(hypotNames, string(hypotName))
			rest := formula.ParseFormula(line[idx+1:], lib, nil, fileline.Hypothesis)
			chars := make([]rune, 0, len(hypotName)+1+len(rest.Chars))
			colors := make([]style.ColorInfo, 0, cap(chars))
			chars = append(chars, hypotName...)
			for range hypotName {
				colors = append(colors, style.NoColor)
			}
			chars = append(chars, ':')
			colors = append(colors, style.NoColor)
			chars = append(chars, rest.Chars...)
			colors = append(colors, rest.Colors...)
			result = append(result, fileline.FileLine{Context: fileline.Hypothesis, Chars: chars, Colors: colors})
		case idx < 0:
			result = append(result, unexpectedLine(line))
		default:
			// A rune index is always >= 0 or < 0; this arm exists only to
			// mirror the exhaustiveness of the split this was ported from.
			panic("section: hypothesis line split produced neither a name nor a raw line")
		}
	}
	return result, hypotNames
}

// ParseAssertionSection parses an "# Assertion"/"# Assertions" section, or
// (when ctx is AxiomHypothesis) a "# Hypothesis"/"# Hypotheses" section
// reused as an axiom's unproven hypothesis list — every line after the
// header is an independent formula.
func ParseAssertionSection(lines [][]rune, lib *library.LibraryData, ctx fileline.LineContext) []fileline.FileLine {
	if len(lines) == 0 {
		return nil
	}
	name := string(lines[0])
	valid := name == "# Assertion" || name == "# Assertions"
	if ctx == fileline.AxiomHypothesis {
		valid = valid || name == "# Hypothesis" || name == "# Hypotheses"
	}
	header := sectionHeaderLine(lines[0], valid)

	result := []fileline.FileLine{header}
	for _, line := range lines[1:] {
		result = append(result, formula.ParseFormula(line, lib, nil, ctx))
	}
	return result
}

// parseUsedHypots styles a proof line's comma-separated list of hypothesis
// indices referenced by that step. An index is valid (NoColor) when it
// parses as a number strictly less than lineNum (no forward references);
// anything else, including a malformed index, is colored Red. If lineNo
// itself fails to parse, every character is left unstyled — there is no
// line number to validate against.
func parseUsedHypots(usedHypots string, lineNo string) ([]rune, []style.ColorInfo) {
	lineNum, err := strconv.Atoi(lineNo)
	if err != nil || lineNum < 0 {
		chars := []rune(usedHypots)
		colors := make([]style.ColorInfo, len(chars))
		return chars, colors
	}

	var chars []rune
	var colors []style.ColorInfo
	for i, tok := range strings.Split(usedHypots, ",") {
		if i > 0 {
			chars = append(chars, ',')
			colors = append(colors, style.NoColor)
		}
		leading := len(tok) - len(strings.TrimLeft(tok, " "))
		trailing := len(tok) - len(strings.TrimRight(tok, " "))
		trimmed := strings.TrimSpace(tok)
		color := style.FGColor(style.Red)
		if n, err := strconv.Atoi(trimmed); err == nil && n >= 0 && n < lineNum {
			color = style.NoColor
		}
		for i := 0; i < leading; i++ {
			chars = append(chars, ' ')
			colors = append(colors, style.NoColor)
		}
		for _, c := range trimmed {
			chars = append(chars, c)
			colors = append(colors, color)
		}
		for i := 0; i < trailing; i++ {
			chars = append(chars, ' ')
			colors = append(colors, style.NoColor)
		}
	}
	return chars, colors
}

// theoIsValid reports whether theoRef resolves: either it names a
// hypothesis directly in scope, or it names a library reference with an
// optional ".N" sub-assertion index that exists within that axiom's or
// theorem's assertion list (definitions have exactly one, sub_id 1).
func theoIsValid(theoRef string, hypotNames []string, lib *library.LibraryData, refs library.References) bool {
	for _, h := range hypotNames {
		if h == theoRef {
			return true
		}
	}

	name := theoRef
	subID := 1
	if dot := strings.Index(theoRef, "."); dot >= 0 {
		n, err := strconv.Atoi(theoRef[dot+1:])
		if err != nil {
			return false
		}
		name = theoRef[:dot]
		subID = n
	}
	if subID < 1 {
		return false
	}

	ref, ok := refs.Lookup(name)
	if !ok {
		return false
	}
	switch ref.Kind {
	case library.ReferenceDefinition:
		return subID == 1
	case library.ReferenceAxiom:
		return ref.Index < len(lib.Axioms) && subID <= len(lib.Axioms[ref.Index].Assertions)
	case library.ReferenceTheorem:
		return ref.Index < len(lib.Theorems) && subID <= len(lib.Theorems[ref.Index].Assertions)
	default:
		return false
	}
}

const minColumnWidth = 2

// ParseProofSection parses a "# Proof" section: a header followed by
// "line_no; used_hypotheses; reference; formula" steps, each split on
// ';' (at most 4 fields) and reassembled into fixed-width, right-padded
// columns once every line's widths are known.
func ParseProofSection(lines [][]rune, lib *library.LibraryData, refs library.References, hypotNames []string) []fileline.FileLine {
	if len(lines) == 0 {
		return nil
	}
	header := sectionHeaderLine(lines[0], string(lines[0]) == "# Proof")

	type proofLine struct {
		lineNo       string
		lineNoColor  style.ColorInfo
		hypotsChars  []rune
		hypotsColors []style.ColorInfo
		theoRef      string
		theoRefColor style.ColorInfo
		formula      fileline.FileLine
	}

	maxLineNoLen := minColumnWidth
	maxHypotsLen := minColumnWidth
	maxTheoRefLen := minColumnWidth
	preparsed := make([]proofLine, 0, len(lines)-1)

	for i, raw := range lines[1:] {
		parts := strings.SplitN(string(raw), ";", 4)
		get := func(idx int) string {
			if idx >= len(parts) {
				return ""
			}
			return strings.TrimSpace(parts[idx])
		}

		lineNo := get(0)
		lineNoColor := style.FGColor(style.Red)
		if n, err := strconv.Atoi(lineNo); err == nil && n == i+1 {
			lineNoColor = style.NoColor
		}
		if n := len([]rune(lineNo)); n > maxLineNoLen {
			maxLineNoLen = n
		}

		usedHypots := get(1)
		hypotsChars, hypotsColors := parseUsedHypots(usedHypots, lineNo)
		if n := len([]rune(usedHypots)); n > maxHypotsLen {
			maxHypotsLen = n
		}

		theoRef := get(2)
		theoRefColor := style.FGColor(style.Red)
		if theoIsValid(theoRef, hypotNames, lib, refs) {
			theoRefColor = style.NoColor
		}
		if n := len([]rune(theoRef)); n > maxTheoRefLen {
			maxTheoRefLen = n
		}

		formulaLine := formula.ParseFormula([]rune(get(3)), lib, nil, fileline.ProofLine)

		preparsed = append(preparsed, proofLine{
			lineNo: lineNo, lineNoColor: lineNoColor,
			hypotsChars: hypotsChars, hypotsColors: hypotsColors,
			theoRef: theoRef, theoRefColor: theoRefColor,
			formula: formulaLine,
		})
	}

	result := make([]fileline.FileLine, 0, len(preparsed)+1)
	result = append(result, header)
	for _, p := range preparsed {
		var chars []rune
		var colors []style.ColorInfo

		chars, colors = padColumn(chars, colors, []rune(p.lineNo), maxLineNoLen, p.lineNoColor)
		chars, colors = appendSeparator(chars, colors)
		chars, colors = padColored(chars, colors, p.hypotsChars, p.hypotsColors, maxHypotsLen)
		chars, colors = appendSeparator(chars, colors)
		chars, colors = padColumn(chars, colors, []rune(p.theoRef), maxTheoRefLen, p.theoRefColor)
		chars, colors = appendSeparator(chars, colors)
		chars = append(chars, p.formula.Chars...)
		colors = append(colors, p.formula.Colors...)

		result = append(result, fileline.FileLine{Context: fileline.ProofLine, Chars: chars, Colors: colors})
	}
	return result
}

func padColumn(chars []rune, colors []style.ColorInfo, value []rune, width int, color style.ColorInfo) ([]rune, []style.ColorInfo) {
	for i := 0; i < width; i++ {
		if i < len(value) {
			chars = append(chars, value[i])
		} else {
			chars = append(chars, ' ')
		}
		colors = append(colors, color)
	}
	return chars, colors
}

func padColored(chars []rune, colors []style.ColorInfo, value []rune, valueColors []style.ColorInfo, width int) ([]rune, []style.ColorInfo) {
	for i := 0; i < width; i++ {
		if i < len(value) {
			chars = append(chars, value[i])
			colors = append(colors, valueColors[i])
		} else {
			chars = append(chars, ' ')
			colors = append(colors, style.NoColor)
		}
	}
	return chars, colors
}

func appendSeparator(chars []rune, colors []style.ColorInfo) ([]rune, []style.ColorInfo) {
	chars = append(chars, ' ', ';', ' ')
	colors = append(colors, style.NoColor, style.NoColor, style.NoColor)
	return chars, colors
}
