// Package library holds the in-memory catalogue of syntaxes, definitions,
// axioms, and theorems a document is checked against, plus the name →
// Reference index used by proof-line validation.
package library

// SyntaxType distinguishes a syntax that builds well-formed formulas from
// one that builds objects (sub-expressions substitutable for an object
// metavariable).
type SyntaxType int

const (
	Formula SyntaxType = iota
	Object
)

// PlaceholderKind tags a Placeholder's variant.
type PlaceholderKind int

const (
	PlaceholderLiteralChar PlaceholderKind = iota
	PlaceholderWellFormedFormula
	PlaceholderObject
	PlaceholderRepetition
)

// Placeholder is one atom of a Syntax's formula pattern.
type Placeholder struct {
	Kind PlaceholderKind
	// Char is valid when Kind == PlaceholderLiteralChar.
	Char rune
	// ID is valid when Kind == PlaceholderWellFormedFormula or PlaceholderObject;
	// it is a dense, zero-based index local to the owning Syntax.
	ID int
}

// LiteralChar builds a literal-character placeholder.
func LiteralChar(c rune) Placeholder { return Placeholder{Kind: PlaceholderLiteralChar, Char: c} }

// WellFormedFormula builds a wff-metavariable placeholder with the given id.
func WellFormedFormula(id int) Placeholder { return Placeholder{Kind: PlaceholderWellFormedFormula, ID: id} }

// ObjectPlaceholder builds an object-metavariable placeholder with the given id.
func ObjectPlaceholder(id int) Placeholder { return Placeholder{Kind: PlaceholderObject, ID: id} }

// RepetitionPlaceholder is the "…" placeholder.
var RepetitionPlaceholder = Placeholder{Kind: PlaceholderRepetition}

// Syntax is a user-defined pattern combining literals and placeholders
// that compiles into a formula or object.
//
// Invariant: every WellFormedFormula(id) placeholder satisfies
// id < DistinctWFFCount; same for Object(id) and DistinctObjectCount.
type Syntax struct {
	SyntaxType          SyntaxType
	Formula             []Placeholder
	DistinctWFFCount    int
	DistinctObjectCount int
}

// Assertion is one formula-or-object line belonging to an axiom's or
// theorem's assertion list.
type Assertion struct {
	Chars []rune
}

// AxiomOrTheorem bundles the hypotheses/assertions shared by axioms and
// theorems.
type AxiomOrTheorem struct {
	Name       string
	Assertions []Assertion
}

// LibraryData is the read-only catalogue built once at startup.
type LibraryData struct {
	Syntaxes    []Syntax
	Definitions []Assertion
	Axioms      []AxiomOrTheorem
	Theorems    []AxiomOrTheorem
}

// ReferenceKind tags a Reference's variant.
type ReferenceKind int

const (
	ReferenceDefinition ReferenceKind = iota
	ReferenceAxiom
	ReferenceTheorem
)

// Reference is a named, resolvable pointer into LibraryData, keyed by name
// in a References map.
//
// Invariant: Index is valid into the corresponding LibraryData slice.
type Reference struct {
	Kind  ReferenceKind
	Index int
	Arity int
}

// References maps a name to the library entry it resolves to.
type References map[string]Reference

// Lookup returns the Reference bound to name, if any.
func (r References) Lookup(name string) (Reference, bool) {
	ref, ok := r[name]
	return ref, ok
}
