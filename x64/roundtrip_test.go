package x64

import (
	"strings"
	"testing"

	"golang.org/x/arch/x86/x86asm"
)

// encodeOne runs an Inst through a fresh Buffer and returns its bytes.
func encodeOne(t *testing.T, inst Inst) []byte {
	t.Helper()
	var buf Buffer
	if err := inst.Encode(&buf, MapOffsetTable{}); err != nil {
		t.Fatalf("Encode(%s) failed: %v", inst, err)
	}
	return buf.Bytes()
}

// operandTail drops the leading mnemonic token (and any separating
// whitespace) from an AT&T-syntax instruction string, leaving only its
// operand list — the portion spec.md's round-trip property compares.
func operandTail(s string) string {
	fields := strings.SplitN(s, " ", 2)
	if len(fields) < 2 {
		return ""
	}
	return strings.Join(strings.Fields(fields[1]), "")
}

// assertRoundTrips checks both halves of spec.md §8's round-trip
// properties against golang.org/x/arch's reference x86 disassembler:
// the decoded instruction consumes exactly the emitted byte count, and
// its operand list (mnemonic stripped) matches this package's own
// pretty-printer once whitespace differences between the two
// implementations' comma conventions are normalized away.
func assertRoundTrips(t *testing.T, inst Inst) {
	t.Helper()
	b := encodeOne(t, inst)

	dec, err := x86asm.Decode(b, 64)
	if err != nil {
		t.Fatalf("%s: reference disassembler rejected %x: %v", inst, b, err)
	}
	if dec.Len != len(b) {
		t.Fatalf("%s: disassembled length %d does not match emitted byte count %d (%x)", inst, dec.Len, len(b), b)
	}

	gotTail := operandTail(x86asm.GNUSyntax(dec, 0, nil))
	wantTail := operandTail(inst.String())
	if gotTail != wantTail {
		t.Fatalf("%s: reference disassembler operand tail %q != pretty-printed tail %q", inst, gotTail, wantTail)
	}
}

// Memory-operand forms (MI/MR/RM over an actual Amode, and the D-format
// label-relative branches) are exercised for byte-level correctness by
// instructions_gen_test.go's literal vectors and amode_test.go, but are
// not round-tripped here against the reference disassembler: its AT&T
// memory-operand and symbol-relative rendering conventions diverge from
// this package's (segment-prefix handling, RIP-relative symbol lookup,
// label-vs-absolute-target display) in ways unrelated to encoding
// correctness. The register-only and immediate-only forms below give
// the disassembler comparison real operand content to check without
// that divergence.
func TestRoundTripRegisterAndImmediateForms(t *testing.T) {
	rax := NewGpr(0)
	r8 := NewGpr(8)
	r9 := NewGpr(9)

	// Immediates below are chosen with their high bit clear and their
	// magnitude at or above 10: clear of any signed/unsigned decoding
	// ambiguity in the reference disassembler's own immediate ops, and
	// past the threshold where this package's own pretty-printer
	// switches from a bare decimal digit to a "0x"-prefixed value.
	cases := []Inst{
		NewANDB_I(NewImm8(0x2A)),
		NewANDW_I(NewImm16(0x1234)),
		NewANDL_I(NewImm32(0x11223344)),
		NewANDQ_RM(r8, Reg(r9)),
		NewORL_MR(Reg(rax), r8),
		NewXORQ_MR(Reg(r9), r8),
		NewADDL_I(NewImm32(100)),
		NewSUBQ_MR(Reg(r8), r9),
		NewCMPL_MR(Reg(rax), r8),
		NewTESTL_I(NewImm32(0xFF)),
		NewMOVQ_RM(r8, Reg(r9)),
		NewPUSHQ_O(r9),
		NewPOPQ_O(r8),
		NewRET_ZO(),
		NewNOP_ZO(),
	}
	for _, inst := range cases {
		assertRoundTrips(t, inst)
	}
}

func TestRoundTripBranchesMatchByteLengthOnly(t *testing.T) {
	for _, inst := range []Inst{NewCALL_D(0, -5), NewJMP_D(0, 10)} {
		b := encodeOne(t, inst)
		dec, err := x86asm.Decode(b, 64)
		if err != nil {
			t.Fatalf("%s: reference disassembler rejected %x: %v", inst, b, err)
		}
		if dec.Len != len(b) {
			t.Fatalf("%s: disassembled length %d does not match emitted byte count %d", inst, dec.Len, len(b))
		}
	}
}
