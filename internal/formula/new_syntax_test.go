package formula

import (
	"testing"

	"github.com/cubic-knight/proofedit/internal/fileline"
	"github.com/cubic-knight/proofedit/internal/library"
)

func TestParseNewSyntax_Empty(t *testing.T) {
	line, syn := ParseNewSyntax(nil, library.Formula)
	if line.Context != fileline.SyntaxDefinition {
		t.Errorf("context = %v, want SyntaxDefinition", line.Context)
	}
	if syn != nil {
		t.Errorf("syntax = %+v, want nil", syn)
	}
}

func TestParseNewSyntax_SwappedRanges(t *testing.T) {
	// 𝑎 ∧ 𝑏 — both metavariables are in the formula range (𝑎..𝑧), which
	// per the documented swap produces WellFormedFormula placeholders.
	line, syn := ParseNewSyntax([]rune("𝑎 ∧ 𝑏"), library.Formula)
	if syn == nil {
		t.Fatal("syntax = nil")
	}
	if syn.DistinctWFFCount != 2 {
		t.Errorf("DistinctWFFCount = %d, want 2", syn.DistinctWFFCount)
	}
	if syn.DistinctObjectCount != 0 {
		t.Errorf("DistinctObjectCount = %d, want 0", syn.DistinctObjectCount)
	}
	// Spaces stay in the display line but are not pattern atoms.
	wantKinds := []library.PlaceholderKind{
		library.PlaceholderWellFormedFormula,
		library.PlaceholderLiteralChar,
		library.PlaceholderWellFormedFormula,
	}
	if len(syn.Formula) != len(wantKinds) {
		t.Fatalf("len(Formula) = %d, want %d", len(syn.Formula), len(wantKinds))
	}
	for i, k := range wantKinds {
		if syn.Formula[i].Kind != k {
			t.Errorf("Formula[%d].Kind = %v, want %v", i, syn.Formula[i].Kind, k)
		}
	}
	if syn.Formula[0].ID != 0 || syn.Formula[2].ID != 1 {
		t.Errorf("distinct ids not assigned in order of first appearance: %+v", syn.Formula)
	}
	if len(line.Chars) != 5 || len(line.Colors) != 5 {
		t.Fatalf("line = %+v", line)
	}
}

func TestParseNewSyntax_ObjectRangeGivesObjectPlaceholder(t *testing.T) {
	// 𝛼 is in the object range (𝛼..𝜔); per the swap it compiles to an
	// Object placeholder.
	_, syn := ParseNewSyntax([]rune("𝛼"), library.Object)
	if syn == nil {
		t.Fatal("syntax = nil")
	}
	if len(syn.Formula) != 1 || syn.Formula[0].Kind != library.PlaceholderObject {
		t.Fatalf("Formula = %+v, want single Object placeholder", syn.Formula)
	}
	if syn.DistinctObjectCount != 1 || syn.DistinctWFFCount != 0 {
		t.Errorf("counts = wff:%d obj:%d, want wff:0 obj:1", syn.DistinctWFFCount, syn.DistinctObjectCount)
	}
}

func TestParseNewSyntax_RepetitionMarker(t *testing.T) {
	_, syn := ParseNewSyntax([]rune("x…"), library.Formula)
	if len(syn.Formula) != 2 {
		t.Fatalf("Formula = %+v", syn.Formula)
	}
	if syn.Formula[1].Kind != library.PlaceholderRepetition {
		t.Errorf("Formula[1].Kind = %v, want PlaceholderRepetition", syn.Formula[1].Kind)
	}
}

func TestParseNewSyntax_RepeatedMetavarSharesID(t *testing.T) {
	_, syn := ParseNewSyntax([]rune("𝑎 + 𝑎"), library.Formula)
	if syn.DistinctWFFCount != 1 {
		t.Errorf("DistinctWFFCount = %d, want 1", syn.DistinctWFFCount)
	}
	if syn.Formula[0].ID != syn.Formula[2].ID {
		t.Errorf("repeated metavariable got different ids: %d vs %d", syn.Formula[0].ID, syn.Formula[2].ID)
	}
}
