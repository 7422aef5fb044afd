package formula

import (
	"github.com/cubic-knight/proofedit/internal/fileline"
	"github.com/cubic-knight/proofedit/internal/library"
	"github.com/cubic-knight/proofedit/internal/style"
)

// Metavariable ranges, exact per spec §6.
const (
	formulaMetaVarLo = '\U0001D44E' // 𝑎
	formulaMetaVarHi = '\U0001D467' // 𝑧
	objectMetaVarLo  = '\U0001D6FC' // 𝛼
	objectMetaVarHi  = '\U0001D714' // 𝜔
	repetitionMarker = '…'     // …
)

// ParseNewSyntax consumes a raw line defining a new syntax, producing the
// styled display line plus the compiled Syntax (nil if the line was
// empty). Per spec §9's documented open question, characters in the
// 𝑎..𝑧 range become WellFormedFormula placeholders colored with
// objVarColor, and characters in 𝛼..𝜔 become Object placeholders colored
// with wffVarColor — this is the faithfully-reproduced swap, not a typo.
func ParseNewSyntax(line []rune, syntaxType library.SyntaxType) (fileline.FileLine, *library.Syntax) {
	if len(line) == 0 {
		return fileline.FileLine{Context: fileline.SyntaxDefinition}, nil
	}

	chars := make([]rune, 0, len(line))
	colors := make([]style.ColorInfo, 0, len(line))
	var formulaPattern []library.Placeholder
	wffMapping := make(map[rune]int)
	objMapping := make(map[rune]int)

	for _, c := range line {
		switch {
		case c == ' ':
			chars = append(chars, c)
			colors = append(colors, style.NoColor)
		case c == repetitionMarker:
			chars = append(chars, c)
			colors = append(colors, style.FGColor(style.Black))
			formulaPattern = append(formulaPattern, library.RepetitionPlaceholder)
		case c >= formulaMetaVarLo && c <= formulaMetaVarHi:
			chars = append(chars, c)
			colors = append(colors, objVarColor)
			id, ok := wffMapping[c]
			if !ok {
				id = len(wffMapping)
				wffMapping[c] = id
			}
			formulaPattern = append(formulaPattern, library.WellFormedFormula(id))
		case c >= objectMetaVarLo && c <= objectMetaVarHi:
			chars = append(chars, c)
			colors = append(colors, wffVarColor)
			id, ok := objMapping[c]
			if !ok {
				id = len(objMapping)
				objMapping[c] = id
			}
			formulaPattern = append(formulaPattern, library.ObjectPlaceholder(id))
		default:
			chars = append(chars, c)
			colors = append(colors, newSyntaxColor)
			formulaPattern = append(formulaPattern, library.LiteralChar(c))
		}
	}

	syntax := &library.Syntax{
		SyntaxType:          syntaxType,
		Formula:             formulaPattern,
		DistinctWFFCount:    len(wffMapping),
		DistinctObjectCount: len(objMapping),
	}
	return fileline.FileLine{Context: fileline.SyntaxDefinition, Chars: chars, Colors: colors}, syntax
}
