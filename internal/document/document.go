// Package document parses a complete file: its title line (which decides
// the FileType) and the sections that follow, dispatching each to
// internal/section according to that type.
package document

import (
	"strings"

	"github.com/cubic-knight/proofedit/internal/fileline"
	"github.com/cubic-knight/proofedit/internal/library"
	"github.com/cubic-knight/proofedit/internal/section"
	"github.com/cubic-knight/proofedit/internal/style"
)

func rawLine(chars []rune) fileline.FileLine {
	return fileline.RawLine(fileline.Raw, chars)
}

func isASCIIAlphanumeric(s string) bool {
	for _, c := range s {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}

// ParseTitle parses a document's first line. A title not starting with
// "##", or one with no trailing " <name>", is Unknown and left unstyled;
// otherwise the recognized "## Kind" prefix picks the FileType and is
// background-colored (blue when recognized, red otherwise), and the name
// is background-colored cyan when ASCII-alphanumeric, red otherwise.
func ParseTitle(line []rune) (fileline.FileLine, fileline.FileType) {
	s := string(line)
	if !strings.HasPrefix(s, "##") {
		return rawLine(append([]rune(nil), line...)), fileline.Unknown
	}

	idx := strings.LastIndex(s, " ")
	if idx < 0 {
		return rawLine(append([]rune(nil), line...)), fileline.Unknown
	}
	title, name := s[:idx], s[idx+1:]

	var titleBG style.Color
	var fileType fileline.FileType
	switch title {
	case "## Syntax Definition (formula)":
		titleBG, fileType = style.Blue, fileline.SyntaxDefinitionFormula
	case "## Syntax Definition (object)":
		titleBG, fileType = style.Blue, fileline.SyntaxDefinitionObject
	case "## Axiom":
		titleBG, fileType = style.Blue, fileline.Axiom
	case "## Theorem":
		titleBG, fileType = style.Blue, fileline.Theorem
	default:
		titleBG, fileType = style.Red, fileline.Unknown
	}

	nameColor := style.FGBGColor(style.Black, style.Red).Underlined()
	if isASCIIAlphanumeric(name) {
		nameColor = style.FGBGColor(style.Black, style.Cyan).Underlined()
	}
	titleColor := style.FGBGColor(style.Black, titleBG).Underlined()

	chars := make([]rune, 0, len(title)+1+len(name))
	colors := make([]style.ColorInfo, 0, cap(chars))
	for _, c := range title {
		chars = append(chars, c)
		colors = append(colors, titleColor)
	}
	chars = append(chars, ' ')
	colors = append(colors, titleColor)
	for _, c := range name {
		chars = append(chars, c)
		colors = append(colors, nameColor)
	}
	return fileline.FileLine{Context: fileline.Title, Chars: chars, Colors: colors}, fileType
}

// splitSections groups lines into runs, starting a new run every time a
// line's first rune is '#'. The first run (lines before any '#'-leading
// line) may be empty.
func splitSections(lines [][]rune) [][][]rune {
	var sections [][][]rune
	var temp [][]rune
	for _, line := range lines {
		if len(line) > 0 && line[0] == '#' {
			sections = append(sections, temp)
			temp = nil
		}
		temp = append(temp, line)
	}
	sections = append(sections, temp)
	return sections
}

// ParseFile parses every line of a document: the title (deciding
// FileType), then each following '#'-delimited section dispatched to the
// section parser FileType calls for. Sections beyond what FileType
// expects are styled as unexpected (red); an empty file produces no
// lines at all.
func ParseFile(lines [][]rune, lib *library.LibraryData, refs library.References) []fileline.FileLine {
	if len(lines) == 0 {
		return nil
	}
	title, fileType := ParseTitle(lines[0])
	sections := splitSections(lines[1:])

	result := []fileline.FileLine{title}
	next := 0
	if next < len(sections) {
		for _, line := range sections[next] {
			result = append(result, rawLine(line))
		}
		next++
	}

	consumeAllRemaining := false
	switch fileType {
	case fileline.SyntaxDefinitionFormula, fileline.SyntaxDefinitionObject:
		if next >= len(sections) {
			return result
		}
		syntaxType := library.Formula
		if fileType == fileline.SyntaxDefinitionObject {
			syntaxType = library.Object
		}
		syntaxLines, newSyntax := section.ParseSyntaxSection(sections[next], syntaxType)
		result = append(result, syntaxLines...)
		next++
		if next < len(sections) {
			result = append(result, section.ParseDefinitionSection(sections[next], lib, newSyntax)...)
			next++
		}

	case fileline.Axiom:
		if next < len(sections) {
			result = append(result, section.ParseAssertionSection(sections[next], lib, fileline.AxiomHypothesis)...)
			next++
		}
		if next < len(sections) {
			result = append(result, section.ParseAssertionSection(sections[next], lib, fileline.AssumedAssertion)...)
			next++
		}

	case fileline.Theorem:
		if next >= len(sections) {
			return result
		}
		hypotLines, hypotNames := section.ParseHypothesisSection(sections[next], lib)
		result = append(result, hypotLines...)
		next++
		if next < len(sections) {
			result = append(result, section.ParseAssertionSection(sections[next], lib, fileline.UnprovenAssertion)...)
			next++
		}
		if next < len(sections) {
			result = append(result, section.ParseProofSection(sections[next], lib, refs, hypotNames)...)
			next++
		}

	default: // Unknown
		for ; next < len(sections); next++ {
			for _, line := range sections[next] {
				result = append(result, rawLine(line))
			}
		}
		consumeAllRemaining = true
	}

	if !consumeAllRemaining {
		for ; next < len(sections); next++ {
			for _, line := range sections[next] {
				result = append(result, fileline.Monochrome(fileline.UnexpectedLine, line, style.FGColor(style.Red)))
			}
		}
	}
	return result
}
