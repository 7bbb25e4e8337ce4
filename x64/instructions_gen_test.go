package x64

import (
	"bytes"
	"testing"
)

// These six cases are the literal byte test vectors the AND family
// must reproduce exactly: (a) accumulator-byte, (b) accumulator-word,
// (c) accumulator-doubleword, (d) accumulator-quadword with a
// sign-extended immediate, (e) memory-immediate through a SIB-required
// RSP base, (f) register-register quadword.

func TestANDLiteralVectors(t *testing.T) {
	cases := []struct {
		name string
		inst Inst
		want []byte
	}{
		{
			name: "a: ANDB AL, 0b10101010",
			inst: NewANDB_I(NewImm8(0xAA)),
			want: []byte{0x24, 0xAA},
		},
		{
			name: "b: ANDW AX, 0x1234",
			inst: NewANDW_I(NewImm16(0x1234)),
			want: []byte{0x66, 0x25, 0x34, 0x12},
		},
		{
			name: "c: ANDL EAX, 0x11223344",
			inst: NewANDL_I(NewImm32(0x11223344)),
			want: []byte{0x25, 0x44, 0x33, 0x22, 0x11},
		},
		{
			name: "d: ANDQ RAX, sign-extend32(0x7FFFFFFF)",
			inst: NewANDQ_I(NewSimm32(0x7FFFFFFF)),
			want: []byte{0x48, 0x25, 0xFF, 0xFF, 0xFF, 0x7F},
		},
		{
			name: "e: ANDB [RSP+0], 0x0F",
			inst: NewANDB_MI(Mem(AmodeImmReg{Base: RSP, Simm32: Simm32WithLateOffset{Simm32: NewSimm32(0)}}), NewImm8(0x0F)),
			want: []byte{0x80, 0x64, 0x24, 0x00, 0x0F},
		},
		{
			name: "f: ANDQ R8, R9",
			inst: NewANDQ_MR(Reg(R8), R9),
			want: []byte{0x4D, 0x21, 0xC8},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf Buffer
			if err := tc.inst.Encode(&buf, MapOffsetTable{}); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if got := buf.Bytes(); !bytes.Equal(got, tc.want) {
				t.Fatalf("got % x, want % x", got, tc.want)
			}
		})
	}
}

func TestANDQ_MRString(t *testing.T) {
	inst := NewANDQ_MR(Reg(R8), R9)
	if got, want := inst.String(), "andq %r9, %r8"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestANDQ_IRequiresFlag64b(t *testing.T) {
	inst := NewANDQ_I(NewSimm32(1))
	flags := inst.RequiredFlags()
	if len(flags) != 1 || flags[0] != Flag64b {
		t.Fatalf("RequiredFlags() = %v, want [Flag64b]", flags)
	}
	if Supports(NewAvailableFeatures(), inst) {
		t.Fatal("Supports() should fail with no features available")
	}
	if !Supports(NewAvailableFeatures(Flag64b), inst) {
		t.Fatal("Supports() should succeed once Flag64b is available")
	}
}

func TestPUSHQEncode(t *testing.T) {
	var buf Buffer
	if err := NewPUSHQ_O(R13).Encode(&buf, MapOffsetTable{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// R13 is extended (encoding 13 >= 8): REX.B is required, and the
	// opcode's low 3 bits carry the low 3 bits of the encoding (5).
	if got, want := buf.Bytes(), []byte{0x41, 0x55}; !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestCALLEncode(t *testing.T) {
	var buf Buffer
	if err := NewCALL_D(Label(0), -5).Encode(&buf, MapOffsetTable{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got, want := buf.Bytes(), []byte{0xE8, 0xFB, 0xFF, 0xFF, 0xFF}; !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestZeroOperandEncode(t *testing.T) {
	var retBuf, nopBuf Buffer
	if err := NewRET_ZO().Encode(&retBuf, nil); err != nil {
		t.Fatalf("RET Encode: %v", err)
	}
	if err := NewNOP_ZO().Encode(&nopBuf, nil); err != nil {
		t.Fatalf("NOP Encode: %v", err)
	}
	if got := retBuf.Bytes(); !bytes.Equal(got, []byte{0xC3}) {
		t.Fatalf("RET got % x", got)
	}
	if got := nopBuf.Bytes(); !bytes.Equal(got, []byte{0x90}) {
		t.Fatalf("NOP got % x", got)
	}
}

func TestMOVQRoundtripsThroughLoadAndStoreForms(t *testing.T) {
	var store, load Buffer
	if err := NewMOVQ_MR(Reg(RBX), RAX).Encode(&store, nil); err != nil {
		t.Fatalf("store Encode: %v", err)
	}
	if err := NewMOVQ_RM(RAX, Reg(RBX)).Encode(&load, nil); err != nil {
		t.Fatalf("load Encode: %v", err)
	}
	if got, want := store.Bytes(), []byte{0x48, 0x89, 0xC3}; !bytes.Equal(got, want) {
		t.Fatalf("store got % x, want % x", got, want)
	}
	if got, want := load.Bytes(), []byte{0x48, 0x8B, 0xC3}; !bytes.Equal(got, want) {
		t.Fatalf("load got % x, want % x", got, want)
	}
}
