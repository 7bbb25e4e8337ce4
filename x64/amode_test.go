package x64

import (
	"bytes"
	"testing"
)

func TestAmodeImmRegRbpForcesDisplacement(t *testing.T) {
	a := AmodeImmReg{Base: RBP, Simm32: Simm32WithLateOffset{Simm32: NewSimm32(0)}}
	var buf Buffer
	if err := a.emitModRMSIBDisp(&buf, MapOffsetTable{}, 0, 0); err != nil {
		t.Fatalf("emitModRMSIBDisp: %v", err)
	}
	// mod=01 (forced), reg=0, rm=101(RBP) => 0x45, then one zero byte.
	if got, want := buf.Bytes(), []byte{0x45, 0x00}; !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestAmodeImmRegPlainBaseElidesZeroDisplacement(t *testing.T) {
	a := AmodeImmReg{Base: RBX, Simm32: Simm32WithLateOffset{Simm32: NewSimm32(0)}}
	var buf Buffer
	if err := a.emitModRMSIBDisp(&buf, MapOffsetTable{}, 0, 0); err != nil {
		t.Fatalf("emitModRMSIBDisp: %v", err)
	}
	// mod=00, reg=0, rm=011(RBX) => 0x03, no displacement byte.
	if got, want := buf.Bytes(), []byte{0x03}; !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestAmodeImmRegRspUsesMandatorySIB(t *testing.T) {
	a := AmodeImmReg{Base: RSP, Simm32: Simm32WithLateOffset{Simm32: NewSimm32(16)}}
	var buf Buffer
	if err := a.emitModRMSIBDisp(&buf, MapOffsetTable{}, 0, 0); err != nil {
		t.Fatalf("emitModRMSIBDisp: %v", err)
	}
	// mod=01, reg=0, rm=100(SIB follows) => 0x44; SIB scale=00 index=100(none) base=100(RSP) => 0x24; disp8=0x10.
	if got, want := buf.Bytes(), []byte{0x44, 0x24, 0x10}; !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestAmodeImmRegRegShiftWithScale(t *testing.T) {
	idx, err := NewNonRspGpr(RCX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := AmodeImmRegRegShift{Base: RAX, Index: idx, Scale: ScaleFour, Simm32: NewSimm32(0)}
	var buf Buffer
	if err := a.emitModRMSIBDisp(&buf, MapOffsetTable{}, 0, 0); err != nil {
		t.Fatalf("emitModRMSIBDisp: %v", err)
	}
	// mod=00, reg=0, rm=100(SIB) => 0x04; SIB scale=10 index=001(RCX) base=000(RAX) => 0x88.
	if got, want := buf.Bytes(), []byte{0x04, 0x88}; !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestAmodeRipRelativeEmitsCompensatedOffset(t *testing.T) {
	a := AmodeRipRelative{Target: Label(1)}
	var buf Buffer
	if err := a.emitModRMSIBDisp(&buf, MapOffsetTable{}, 0, 4); err != nil {
		t.Fatalf("emitModRMSIBDisp: %v", err)
	}
	// mod=00, reg=0, rm=101(RIP-relative) => 0x05, then a placeholder
	// 4-byte field holding -bytesAtEnd until the label is resolved.
	want := []byte{0x05, 0xFC, 0xFF, 0xFF, 0xFF}
	if got := buf.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}
