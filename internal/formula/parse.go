package formula

import (
	"strings"

	"github.com/cubic-knight/proofedit/internal/fileline"
	"github.com/cubic-knight/proofedit/internal/library"
	"github.com/cubic-knight/proofedit/internal/style"
)

type pcKind int

const (
	pcNotCompiled pcKind = iota
	pcSpace
	pcCompiledFormula
	pcCompiledObject
)

// partiallyCompiled is one element of the bottom-up rewrite list: either a
// raw unrecognized char, a space (ignored as a match boundary), or an
// already-compiled formula/object token carrying its own display
// chars/colors.
type partiallyCompiled struct {
	kind   pcKind
	ch     rune
	chars  []rune
	colors []style.ColorInfo
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ParseFormula reduces line into exactly one styled token, greedily
// rewriting against additional (if present, tried first) then lib's
// syntaxes in priority order. An unparsable line degrades to a red
// monochrome FileLine carrying the original characters — parse_formula
// never errors (spec §4.C "Failure mode").
func ParseFormula(line []rune, lib *library.LibraryData, additional *library.Syntax, ctx fileline.LineContext) fileline.FileLine {
	original := append([]rune(nil), line...)
	s := string(line)
	inner := strings.Trim(s, " ")
	if inner == "" {
		// Entire line is spaces (or empty): no atoms to tokenize. Return it
		// verbatim with uniform NoColor, per spec §8's testable invariant.
		return fileline.RawLine(ctx, original)
	}

	leadingCount := len(s) - len(strings.TrimLeft(s, " "))
	trailingCount := len(s) - len(strings.TrimRight(s, " "))

	innerRunes := []rune(inner)
	compiled := make([]partiallyCompiled, 0, len(innerRunes))
	for _, c := range innerRunes {
		switch {
		case c == repetitionMarker:
			return fileline.Monochrome(ctx, original, style.FGColor(style.Red))
		case c == ' ':
			compiled = append(compiled, partiallyCompiled{kind: pcSpace})
		case c >= formulaMetaVarLo && c <= formulaMetaVarHi:
			compiled = append(compiled, partiallyCompiled{
				kind: pcCompiledObject, chars: []rune{c}, colors: []style.ColorInfo{objVarColor},
			})
		case c >= objectMetaVarLo && c <= objectMetaVarHi:
			compiled = append(compiled, partiallyCompiled{
				kind: pcCompiledFormula, chars: []rune{c}, colors: []style.ColorInfo{wffVarColor},
			})
		default:
			compiled = append(compiled, partiallyCompiled{kind: pcNotCompiled, ch: c})
		}
	}

	syntaxes := make([]*library.Syntax, 0, len(lib.Syntaxes)+1)
	if additional != nil {
		syntaxes = append(syntaxes, additional)
	}
	for i := range lib.Syntaxes {
		syntaxes = append(syntaxes, &lib.Syntaxes[i])
	}

	for len(compiled) > 1 {
		next, ok := tryRewriteOnce(compiled, syntaxes, additional != nil)
		if !ok {
			return fileline.Monochrome(ctx, original, style.FGColor(style.Red))
		}
		compiled = next
	}

	last := compiled[0]
	if last.kind != pcCompiledFormula {
		// Top-level objects are rejected: not a well-formed formula.
		return fileline.Monochrome(ctx, original, style.FGColor(style.Red))
	}

	chars := make([]rune, 0, leadingCount+len(last.chars)+trailingCount)
	colors := make([]style.ColorInfo, 0, cap(chars))
	for i := 0; i < leadingCount; i++ {
		chars = append(chars, ' ')
		colors = append(colors, style.NoColor)
	}
	chars = append(chars, last.chars...)
	colors = append(colors, last.colors...)
	for i := 0; i < trailingCount; i++ {
		chars = append(chars, ' ')
		colors = append(colors, style.NoColor)
	}
	return fileline.FileLine{Context: ctx, Chars: chars, Colors: colors}
}

func syntaxColorFor(syntaxIndex int, additionalPresent bool, syn *library.Syntax) style.ColorInfo {
	if syntaxIndex == 0 && additionalPresent {
		return newSyntaxColor
	}
	if syn.SyntaxType == library.Formula {
		if syn.DistinctWFFCount == 0 && syn.DistinctObjectCount == 0 {
			return wffSingletonColor
		}
		return wffSyntaxColor
	}
	if syn.DistinctWFFCount == 0 && syn.DistinctObjectCount == 0 {
		return objSingletonColor
	}
	return objSyntaxColor
}

// tryRewriteOnce scans syntaxes in priority order, and within each syntax
// every starting position left-to-right, for the first applicable match.
// On success it returns the list with the matched span spliced into a
// single compiled token. ok is false only once no (syntax, position) pair
// applies anywhere.
func tryRewriteOnce(compiled []partiallyCompiled, syntaxes []*library.Syntax, additionalPresent bool) ([]partiallyCompiled, bool) {
	for sid, syn := range syntaxes {
		color := syntaxColorFor(sid, additionalPresent, syn)

	positionLoop:
		for index := 0; index < len(compiled); index++ {
			if len(compiled)-index < len(syn.Formula) {
				// No later position in this syntax can fit either.
				break positionLoop
			}
			if compiled[index].kind == pcSpace {
				continue positionLoop
			}

			wffBound := make([]bool, syn.DistinctWFFCount)
			wffVal := make([][]rune, syn.DistinctWFFCount)
			objBound := make([]bool, syn.DistinctObjectCount)
			objVal := make([][]rune, syn.DistinctObjectCount)

			i := index
			var outChars []rune
			var outColors []style.ColorInfo
			consumed := 0
			abandonSyntax := false
			matchFailed := false

			for _, pl := range syn.Formula {
				for {
					if i >= len(compiled) {
						abandonSyntax = true
						break
					}
					if compiled[i].kind != pcSpace {
						break
					}
					outChars = append(outChars, ' ')
					outColors = append(outColors, style.NoColor)
					consumed++
					i++
				}
				if abandonSyntax {
					break
				}

				cur := compiled[i]
				ok := false
				switch pl.Kind {
				case library.PlaceholderLiteralChar:
					if cur.kind == pcNotCompiled {
						outChars = append(outChars, cur.ch)
						outColors = append(outColors, color)
						consumed++
						ok = cur.ch == pl.Char
					}
				case library.PlaceholderWellFormedFormula:
					if cur.kind == pcCompiledFormula {
						outChars = append(outChars, cur.chars...)
						outColors = append(outColors, cur.colors...)
						consumed++
						if wffBound[pl.ID] {
							ok = runesEqual(wffVal[pl.ID], cur.chars)
						} else {
							wffVal[pl.ID] = cur.chars
							wffBound[pl.ID] = true
							ok = true
						}
					}
				case library.PlaceholderObject:
					if cur.kind == pcCompiledObject {
						outChars = append(outChars, cur.chars...)
						outColors = append(outColors, cur.colors...)
						consumed++
						if objBound[pl.ID] {
							ok = runesEqual(objVal[pl.ID], cur.chars)
						} else {
							objVal[pl.ID] = cur.chars
							objBound[pl.ID] = true
							ok = true
						}
					}
				default:
					// Repetition (or any other placeholder) never matches a
					// compiled atom; nothing is consumed.
				}
				if !ok {
					matchFailed = true
					break
				}
				i++
			}

			if abandonSyntax {
				break positionLoop
			}
			if matchFailed {
				continue positionLoop
			}

			var newEntry partiallyCompiled
			if syn.SyntaxType == library.Formula {
				newEntry = partiallyCompiled{kind: pcCompiledFormula, chars: outChars, colors: outColors}
			} else {
				newEntry = partiallyCompiled{kind: pcCompiledObject, chars: outChars, colors: outColors}
			}

			next := make([]partiallyCompiled, 0, len(compiled)-consumed+1)
			next = append(next, compiled[:index]...)
			next = append(next, newEntry)
			next = append(next, compiled[index+consumed:]...)
			return next, true
		}
	}
	return nil, false
}
