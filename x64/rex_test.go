package x64

import (
	"bytes"
	"testing"
)

func TestRexEmitTwoOpSkippedWhenNothingRequiresIt(t *testing.T) {
	var rex RexFlags
	var buf Buffer
	rex.EmitTwoOp(&buf, 0, 0)
	if len(buf.Bytes()) != 0 {
		t.Fatalf("expected no REX byte, got % x", buf.Bytes())
	}
}

func TestRexEmitTwoOpSetsRAndB(t *testing.T) {
	var rex RexFlags
	var buf Buffer
	rex.EmitTwoOp(&buf, EncR9, EncR8)
	if got, want := buf.Bytes(), []byte{0x45}; !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestRexAlwaysEmitForcesByteEvenWhenOtherwiseElided(t *testing.T) {
	var rex RexFlags
	rex.AlwaysEmit()
	var buf Buffer
	rex.EmitTwoOp(&buf, 0, 0)
	if got, want := buf.Bytes(), []byte{0x40}; !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestEncodeModRM(t *testing.T) {
	if got, want := EncodeModRM(0b11, 9, 8), uint8(0xC8); got != want {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

func TestDispImmModSelection(t *testing.T) {
	cases := []struct {
		val   int32
		force bool
		want  uint8
	}{
		{0, false, 0b00},
		{0, true, 0b01},
		{127, false, 0b01},
		{-128, false, 0b01},
		{128, false, 0b10},
		{-129, false, 0b10},
	}
	for _, tc := range cases {
		d := newDispImm(tc.val)
		if tc.force {
			d.forceImmediate()
		}
		if got := d.mod(); got != tc.want {
			t.Errorf("dispImm{%d, force=%v}.mod() = %02b, want %02b", tc.val, tc.force, got, tc.want)
		}
	}
}
