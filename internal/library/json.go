package library

import (
	"encoding/json"
	"fmt"
	"os"
)

// The on-disk library format is a JSON document holding already-compiled
// syntaxes, definitions, axioms, and theorems. spec.md treats loading the
// library as an opaque external concern (`read_lib_data`); this is our
// concrete implementation of that concern, following the teacher's
// internal/config package in reaching for encoding/json with no
// third-party serialization library.

type jsonPlaceholder struct {
	Kind string `json:"kind"`
	Char string `json:"char,omitempty"`
	ID   int    `json:"id,omitempty"`
}

// MarshalJSON renders a Placeholder as a small tagged object, e.g.
// {"kind":"literal","char":"∧"} or {"kind":"wff","id":1}. An id of 0 is
// omitted ({"kind":"wff"}) and reads back as 0.
func (p Placeholder) MarshalJSON() ([]byte, error) {
	jp := jsonPlaceholder{}
	switch p.Kind {
	case PlaceholderLiteralChar:
		jp.Kind = "literal"
		jp.Char = string(p.Char)
	case PlaceholderWellFormedFormula:
		jp.Kind = "wff"
		jp.ID = p.ID
	case PlaceholderObject:
		jp.Kind = "object"
		jp.ID = p.ID
	case PlaceholderRepetition:
		jp.Kind = "repetition"
	default:
		return nil, fmt.Errorf("library: unknown placeholder kind %d", p.Kind)
	}
	return json.Marshal(jp)
}

// UnmarshalJSON parses the tagged-object form produced by MarshalJSON.
func (p *Placeholder) UnmarshalJSON(data []byte) error {
	var jp jsonPlaceholder
	if err := json.Unmarshal(data, &jp); err != nil {
		return err
	}
	switch jp.Kind {
	case "literal":
		r := []rune(jp.Char)
		if len(r) != 1 {
			return fmt.Errorf("library: literal placeholder must be exactly one char, got %q", jp.Char)
		}
		*p = LiteralChar(r[0])
	case "wff":
		*p = WellFormedFormula(jp.ID)
	case "object":
		*p = ObjectPlaceholder(jp.ID)
	case "repetition":
		*p = RepetitionPlaceholder
	default:
		return fmt.Errorf("library: unknown placeholder kind %q", jp.Kind)
	}
	return nil
}

type jsonSyntax struct {
	Type        string        `json:"type"`
	Formula     []Placeholder `json:"formula"`
	WFFCount    int           `json:"wff_count"`
	ObjectCount int           `json:"object_count"`
}

// MarshalJSON renders a Syntax with a human-readable "type" field.
func (s Syntax) MarshalJSON() ([]byte, error) {
	js := jsonSyntax{
		Formula:     s.Formula,
		WFFCount:    s.DistinctWFFCount,
		ObjectCount: s.DistinctObjectCount,
	}
	switch s.SyntaxType {
	case Formula:
		js.Type = "formula"
	case Object:
		js.Type = "object"
	default:
		return nil, fmt.Errorf("library: unknown syntax type %d", s.SyntaxType)
	}
	return json.Marshal(js)
}

// UnmarshalJSON parses the form produced by MarshalJSON.
func (s *Syntax) UnmarshalJSON(data []byte) error {
	var js jsonSyntax
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}
	switch js.Type {
	case "formula":
		s.SyntaxType = Formula
	case "object":
		s.SyntaxType = Object
	default:
		return fmt.Errorf("library: unknown syntax type %q", js.Type)
	}
	s.Formula = js.Formula
	s.DistinctWFFCount = js.WFFCount
	s.DistinctObjectCount = js.ObjectCount
	return nil
}

type jsonAssertion struct {
	Chars string `json:"chars"`
}

func (a Assertion) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonAssertion{Chars: string(a.Chars)})
}

func (a *Assertion) UnmarshalJSON(data []byte) error {
	var ja jsonAssertion
	if err := json.Unmarshal(data, &ja); err != nil {
		return err
	}
	a.Chars = []rune(ja.Chars)
	return nil
}

type jsonNamedDefinition struct {
	Name      string    `json:"name"`
	Assertion Assertion `json:"assertion"`
}

type jsonAxiomOrTheorem struct {
	Name       string      `json:"name"`
	Assertions []Assertion `json:"assertions"`
}

type document struct {
	Syntaxes    []Syntax              `json:"syntaxes"`
	Definitions []jsonNamedDefinition `json:"definitions"`
	Axioms      []jsonAxiomOrTheorem  `json:"axioms"`
	Theorems    []jsonAxiomOrTheorem  `json:"theorems"`
}

// Definition is a named single-assertion library entry (the "# Definition"
// section of a syntax-definition file).
type Definition struct {
	Name      string
	Assertion Assertion
}

// Catalogue bundles LibraryData with the named Definitions and the
// name -> Reference index built from it. spec.md's LibraryData (§3) only
// carries an ordered Definitions list with no naming requirement of its
// own; naming lives one level up here because only named entries can be
// referenced from proof lines.
type Catalogue struct {
	Data        LibraryData
	Definitions []Definition
	References  References
}

// Load reads a library document from path and builds its Catalogue,
// including the derived name -> Reference index. This is the concrete
// `read_lib_data` spec.md treats as an external collaborator.
func Load(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("library: reading %s: %w", path, err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("library: parsing %s: %w", path, err)
	}
	return fromDocument(doc)
}

func fromDocument(doc document) (*Catalogue, error) {
	cat := &Catalogue{
		Data: LibraryData{
			Syntaxes: doc.Syntaxes,
			Axioms:   make([]AxiomOrTheorem, len(doc.Axioms)),
			Theorems: make([]AxiomOrTheorem, len(doc.Theorems)),
		},
		References: make(References),
	}
	for i, d := range doc.Definitions {
		cat.Definitions = append(cat.Definitions, Definition{Name: d.Name, Assertion: d.Assertion})
		cat.Data.Definitions = append(cat.Data.Definitions, d.Assertion)
		if _, exists := cat.References[d.Name]; exists {
			return nil, fmt.Errorf("library: duplicate reference name %q", d.Name)
		}
		cat.References[d.Name] = Reference{Kind: ReferenceDefinition, Index: i, Arity: 0}
	}
	for i, a := range doc.Axioms {
		cat.Data.Axioms[i] = AxiomOrTheorem{Name: a.Name, Assertions: a.Assertions}
		if _, exists := cat.References[a.Name]; exists {
			return nil, fmt.Errorf("library: duplicate reference name %q", a.Name)
		}
		cat.References[a.Name] = Reference{Kind: ReferenceAxiom, Index: i}
	}
	for i, th := range doc.Theorems {
		cat.Data.Theorems[i] = AxiomOrTheorem{Name: th.Name, Assertions: th.Assertions}
		if _, exists := cat.References[th.Name]; exists {
			return nil, fmt.Errorf("library: duplicate reference name %q", th.Name)
		}
		cat.References[th.Name] = Reference{Kind: ReferenceTheorem, Index: i}
	}
	return cat, nil
}
