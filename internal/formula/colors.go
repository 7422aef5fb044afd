package formula

import "github.com/cubic-knight/proofedit/internal/style"

// Color constants per spec §4.C. Two Unicode metavariable ranges exist
// (see metavariable range constants in new_syntax.go / parse.go); the
// source this spec was distilled from swaps which range is which kind of
// metavariable between parse_new_syntax and parse_formula, and we
// reproduce that swap exactly rather than silently "fixing" it — see
// DESIGN.md and spec.md §9.
var (
	wffVarColor       = style.FGColor(style.Blue).Bold()
	wffSingletonColor = style.FGColor(style.Green)
	wffSyntaxColor    = style.FGColor(style.Cyan)
	objVarColor       = style.FGColor(style.Red).Bold()
	objSingletonColor = style.FGColor(style.Yellow)
	objSyntaxColor    = style.FGColor(style.Magenta)
	newSyntaxColor    = style.FGColor(style.White)
)
