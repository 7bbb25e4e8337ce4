package x64

import (
	"testing"

	"golang.org/x/arch/x86/x86asm"
)

// FuzzEncodeAndImmediate exercises spec.md §2/§8's round-trip property
// (every byte sequence this package emits is a valid x86-64
// instruction whose decoded length matches what was written) across
// the full Imm32 domain, rather than the handful of fixed cases
// roundtrip_test.go pins down.
func FuzzEncodeAndImmediate(f *testing.F) {
	for _, seed := range []int32{0, 1, -1, 10, 0x7FFFFFFF, -0x80000000, 0x11223344} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw int32) {
		inst := NewANDL_I(NewImm32(uint32(raw)))

		var buf Buffer
		if err := inst.Encode(&buf, MapOffsetTable{}); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		b := buf.Bytes()

		dec, err := x86asm.Decode(b, 64)
		if err != nil {
			t.Fatalf("reference disassembler rejected %x: %v", b, err)
		}
		if dec.Len != len(b) {
			t.Fatalf("disassembled length %d != emitted byte count %d (%x)", dec.Len, len(b), b)
		}
	})
}

// FuzzEncodeMemoryDisplacement exercises the RBP/R13 force-immediate
// rule (item 2 of SPEC_FULL.md's original_source supplement) across the
// full int32 displacement domain: each of the four base registers below
// (RAX, RBP, R8, R13), with every displacement, must still round-trip to
// the same byte length the reference disassembler independently computes.
func FuzzEncodeMemoryDisplacement(f *testing.F) {
	for _, seed := range []int32{0, 1, -1, 127, 128, -128, -129} {
		f.Add(seed)
	}

	bases := []Gpr{NewGpr(0), NewGpr(5), NewGpr(8), NewGpr(13)}

	f.Fuzz(func(t *testing.T, disp int32) {
		for _, base := range bases {
			amode := AmodeImmReg{Base: base, Simm32: Simm32WithLateOffset{Simm32: NewSimm32(disp)}}
			inst := NewANDL_MR(Mem(amode), NewGpr(1))

			var buf Buffer
			if err := inst.Encode(&buf, MapOffsetTable{}); err != nil {
				t.Fatalf("Encode(base=%s, disp=%d) failed: %v", base.String(Quadword), disp, err)
			}
			b := buf.Bytes()

			dec, err := x86asm.Decode(b, 64)
			if err != nil {
				t.Fatalf("base=%s disp=%d: reference disassembler rejected %x: %v", base.String(Quadword), disp, b, err)
			}
			if dec.Len != len(b) {
				t.Fatalf("base=%s disp=%d: disassembled length %d != emitted byte count %d (%x)", base.String(Quadword), disp, dec.Len, len(b), b)
			}
		}
	})
}
