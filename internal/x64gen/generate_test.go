package x64gen

import (
	"strings"
	"testing"

	"github.com/corewave/x64asm/internal/x64dsl"
	"github.com/corewave/x64asm/internal/x64table"
)

func TestGenerateOverTableSucceeds(t *testing.T) {
	g := New(x64table.List(), "x64")
	src, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() returned error: %v, errors: %v", err, g.Errors())
	}
	if len(g.Errors()) != 0 {
		t.Fatalf("Generate() succeeded but left errors: %v", g.Errors())
	}

	for _, want := range []string{
		"package x64",
		"type Inst interface {",
		"type Builder struct{}",
		"type ANDB_I struct",
		"func NewANDB_I(",
		"func (i ANDB_I) Encode(",
		"func (Builder) ANDB_I(imm Imm8) Inst { return NewANDB_I(imm) }",
		"type CALL_D struct",
		"type RET_ZO struct{}",
		"var All = []Descriptor{",
		`{UID: "ANDB-I", Mnemonic: "ANDB", Format: "I", BuilderMethod: "ANDB_I"}`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

func TestGenerateReportsDuplicateUID(t *testing.T) {
	insts := x64table.List()
	dup := append(append([]x64dsl.Inst(nil), insts...), insts[0])

	g := New(dup, "x64")
	_, err := g.Generate()
	if err == nil {
		t.Fatalf("expected an error for a duplicate UID")
	}
	found := false
	for _, e := range g.Errors() {
		if e.UID == insts[0].UID() && strings.Contains(e.Message, "duplicate") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a duplicate-UID error for %s, got %v", insts[0].UID(), g.Errors())
	}
}

func TestGenerateRejectsUnsupportedOperandLocation(t *testing.T) {
	// An "I"-named format carrying a rel32 operand is syntactically
	// valid to x64dsl (it only checks rm-count and width consistency,
	// not the name/operand pairing a real instruction would have) but
	// has no InformativeOperands case x64gen knows how to turn into a
	// struct field — exactly the kind of malformed table entry the
	// generator must reject with a diagnostic rather than panic on.
	bogusFmt := x64dsl.MustFmt("I", x64dsl.Rel(x64dsl.LocRel32))
	bogus := x64dsl.MustDef("BOGUS", bogusFmt, x64dsl.Rex(0xE8).Id(), x64dsl.NoFeatures)

	g := New([]x64dsl.Inst{bogus}, "x64")
	_, err := g.Generate()
	if err == nil {
		t.Fatalf("expected an error for an unsupported operand location in format I")
	}
	if len(g.Errors()) != 1 {
		t.Fatalf("expected exactly one reported error, got %v", g.Errors())
	}
}

func TestGoTypeNameReplacesSeparator(t *testing.T) {
	if got := GoTypeName("ANDB-MI"); got != "ANDB_MI" {
		t.Fatalf("GoTypeName(%q) = %q, want %q", "ANDB-MI", got, "ANDB_MI")
	}
}
