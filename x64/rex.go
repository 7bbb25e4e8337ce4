package x64

// RexFlags accumulates the REX prefix bits an instruction's operands
// require, independent of the legacy opcode bytes around it. A fresh
// RexFlags defaults to "no prefix needed"; AlwaysEmit forces the byte
// out anyway, the case a low-byte register (spl/bpl/sil/dil) needs to
// distinguish itself from the REX-less ah/ch/dh/bh encodings.
type RexFlags struct {
	w      bool
	always bool
}

// RexFlagsFor64Bit returns flags with REX.W set, for every 64-bit
// operand-size instruction.
func RexFlagsFor64Bit() RexFlags { return RexFlags{w: true} }

// AlwaysEmit forces a REX prefix even if no operand bit requires one.
func (r *RexFlags) AlwaysEmit() { r.always = true }

func highBit(enc uint8) uint8 {
	if enc >= 8 {
		return 1
	}
	return 0
}

// EmitTwoOp writes the REX prefix, if one is needed, for an
// instruction whose ModR/M byte encodes a reg field (encG) and an
// rm field that is itself a register (encE) — the ImmReg addressing
// shape and the plain register-register MR/RM shapes.
func (r RexFlags) EmitTwoOp(sink ByteSink, encG, encE uint8) {
	rBit := highBit(encG)
	bBit := highBit(encE)
	r.emit(sink, rBit, 0, bBit)
}

// EmitThreeOp writes the REX prefix for an instruction whose ModR/M
// rm field is a SIB byte: reg (encG), SIB index (encIndex), SIB base
// (encBase).
func (r RexFlags) EmitThreeOp(sink ByteSink, encG, encIndex, encBase uint8) {
	rBit := highBit(encG)
	xBit := highBit(encIndex)
	bBit := highBit(encBase)
	r.emit(sink, rBit, xBit, bBit)
}

func (r RexFlags) emit(sink ByteSink, rBit, xBit, bBit uint8) {
	if !r.always && !r.w && rBit == 0 && xBit == 0 && bBit == 0 {
		return
	}
	var rex uint8 = 0x40
	if r.w {
		rex |= 1 << 3
	}
	rex |= rBit << 2
	rex |= xBit << 1
	rex |= bBit
	sink.Put1(rex)
}

// EncodeModRM packs a ModR/M byte from its mod, reg, and rm fields.
// reg and rm are masked to their low 3 bits: the high bit, when
// present, travels in the REX prefix instead.
func EncodeModRM(mod, reg, rm uint8) uint8 {
	return (mod << 6) | ((reg & 7) << 3) | (rm & 7)
}

// EncodeSIB packs a SIB byte from its scale, index, and base fields.
func EncodeSIB(scale, index, base uint8) uint8 {
	return (scale << 6) | ((index & 7) << 3) | (base & 7)
}

// modField and dispImm jointly implement the "minimal displacement
// encoding" rule every ModR/M-addressed memory operand follows: a
// zero displacement is omitted entirely (mod=00), a displacement that
// fits in a signed byte is encoded as one byte (mod=01), and anything
// larger uses the full 4-byte form (mod=10) — unless forceImmediate is
// set, which always keeps at least the 1-byte form. mod=00 with rm=101
// is reserved for RIP-relative addressing (and a SIB base of 101 with
// mod=00 means "no base"), so a zero-displacement access through RBP or
// R13 as a base register must still carry an explicit (zero)
// displacement; amode.go also forces it on the SIB path taken for an
// RSP or R12 base.
type dispImm struct {
	val   int32
	force bool
}

func newDispImm(val int32) dispImm {
	return dispImm{val: val}
}

func (d *dispImm) forceImmediate() { d.force = true }

func (d dispImm) mod() uint8 {
	switch {
	case d.val == 0 && !d.force:
		return 0b00
	case int32(int8(d.val)) == d.val:
		return 0b01
	default:
		return 0b10
	}
}

func (d dispImm) emit(sink ByteSink) {
	switch d.mod() {
	case 0b00:
		return
	case 0b01:
		sink.Put1(uint8(int8(d.val)))
	default:
		sink.Put4(uint32(d.val))
	}
}
