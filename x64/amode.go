package x64

import "fmt"

// Scale is a SIB-byte index scale factor.
type Scale int

const (
	ScaleOne Scale = iota
	ScaleTwo
	ScaleFour
	ScaleEight
)

func (s Scale) enc() uint8 {
	switch s {
	case ScaleOne:
		return 0b00
	case ScaleTwo:
		return 0b01
	case ScaleFour:
		return 0b10
	case ScaleEight:
		return 0b11
	default:
		return 0b00
	}
}

func (s Scale) shift() uint8 { return 1 << s.enc() }

// Amode is a memory operand: base-plus-displacement, base-plus-
// index-times-scale-plus-displacement, or RIP-relative. It is a sum
// type in spirit (spec.md §3); Go lacks native closed unions, so each
// shape is a constructor returning the common Amode interface, backed
// by an unexported concrete struct.
type Amode interface {
	fmt.Stringer
	isAmode()
	trapCode() (TrapCode, bool)
	emitRexPrefix(sink ByteSink, rex RexFlags, encG uint8)
	emitModRMSIBDisp(sink ByteSink, offsets OffsetTable, encG uint8, bytesAtEnd uint8) error
	read(v RegisterVisitor)
}

// AmodeImmReg is a displacement from a single base register: the
// common [base+disp] addressing shape.
type AmodeImmReg struct {
	Base   Gpr
	Simm32 Simm32WithLateOffset
	Trap   *TrapCode
}

func (AmodeImmReg) isAmode() {}

func (a AmodeImmReg) trapCode() (TrapCode, bool) {
	if a.Trap == nil {
		return 0, false
	}
	return *a.Trap, true
}

func (a AmodeImmReg) emitRexPrefix(sink ByteSink, rex RexFlags, encG uint8) {
	rex.EmitTwoOp(sink, encG, a.Base.Enc())
}

func (a AmodeImmReg) emitModRMSIBDisp(sink ByteSink, offsets OffsetTable, encG uint8, bytesAtEnd uint8) error {
	val, err := a.Simm32.Resolve(offsets)
	if err != nil {
		return err
	}
	imm := newDispImm(val)
	encE := a.Base.Enc()
	encELow3 := encE & 7

	if encELow3 == EncRSP {
		// A SIB byte is mandatory when the base's low 3 bits name RSP:
		// ModR/M.rm=100 always means "SIB follows", so RSP (and R12,
		// which shares the same low 3 bits) cannot be addressed as a
		// base through the plain ModR/M form. The SIB byte's own index
		// field of 100 then means "no index register". A zero
		// displacement through this path is still emitted explicitly
		// (mod=01, one byte of zero) rather than folded into mod=00.
		imm.forceImmediate()
		sink.Put1(EncodeModRM(imm.mod(), encG, 0b100))
		sink.Put1(0b00_100_100)
		imm.emit(sink)
		return nil
	}

	if encELow3 == EncRBP {
		imm.forceImmediate()
	}
	sink.Put1(EncodeModRM(imm.mod(), encG, encE))
	imm.emit(sink)
	return nil
}

func (a AmodeImmReg) read(v RegisterVisitor) {
	if a.Base.Enc() != EncRBP && a.Base.Enc() != EncRSP {
		v.Read(a.Base.Enc())
	}
}

func (a AmodeImmReg) String() string {
	return fmt.Sprintf("%s(%s)", a.Simm32.Simm32.LowerHex(), a.Base.String(Quadword))
}

// AmodeImmRegRegShift is [base + index*scale + disp].
type AmodeImmRegRegShift struct {
	Base   Gpr
	Index  NonRspGpr
	Scale  Scale
	Simm32 Simm32
	Trap   *TrapCode
}

func (AmodeImmRegRegShift) isAmode() {}

func (a AmodeImmRegRegShift) trapCode() (TrapCode, bool) {
	if a.Trap == nil {
		return 0, false
	}
	return *a.Trap, true
}

func (a AmodeImmRegRegShift) emitRexPrefix(sink ByteSink, rex RexFlags, encG uint8) {
	rex.EmitThreeOp(sink, encG, a.Index.Enc(), a.Base.Enc())
}

func (a AmodeImmRegRegShift) emitModRMSIBDisp(sink ByteSink, _ OffsetTable, encG uint8, _ uint8) error {
	encBase := a.Base.Enc()
	encIndex := a.Index.Enc()
	if encIndex == EncRSP {
		panic("x64: %rsp cannot be used as a SIB index register")
	}

	imm := newDispImm(a.Simm32.Value())
	if encBase&7 == EncRBP {
		// rbp/r13 as a SIB base always needs an explicit displacement:
		// mod=00 with a SIB base field of 101 is reserved to mean
		// "no base register, disp32 follows" instead.
		imm.forceImmediate()
	}

	sink.Put1(EncodeModRM(imm.mod(), encG, 0b100))
	sink.Put1(EncodeSIB(a.Scale.enc(), encIndex, encBase))
	imm.emit(sink)
	return nil
}

func (a AmodeImmRegRegShift) read(v RegisterVisitor) {
	v.Read(a.Base.Enc())
	v.Read(a.Index.Enc())
}

func (a AmodeImmRegRegShift) String() string {
	if a.Scale.shift() > 1 {
		return fmt.Sprintf("%s(%s, %s, %d)", a.Simm32.LowerHex(),
			a.Base.String(Quadword), a.Index.String(Quadword), a.Scale.shift())
	}
	return fmt.Sprintf("%s(%s, %s)", a.Simm32.LowerHex(), a.Base.String(Quadword), a.Index.String(Quadword))
}

// AmodeRipRelative is a displacement from the address of the
// instruction following this one, resolved against a label rather
// than a literal offset.
type AmodeRipRelative struct {
	Target Label
}

func (AmodeRipRelative) isAmode() {}

func (AmodeRipRelative) trapCode() (TrapCode, bool) { return 0, false }

func (a AmodeRipRelative) emitRexPrefix(sink ByteSink, rex RexFlags, encG uint8) {
	// REX.B is always clear: there is no base register to extend.
	rex.EmitTwoOp(sink, encG, 0)
}

func (a AmodeRipRelative) emitModRMSIBDisp(sink ByteSink, _ OffsetTable, encG uint8, bytesAtEnd uint8) error {
	sink.Put1(EncodeModRM(0b00, encG, 0b101))

	offset := sink.CurOffset()
	sink.UseLabelAtOffset(offset, a.Target)

	// The relocation computed for this label is relative to the end of
	// this 4-byte field, but the addressed location is relative to the
	// end of the whole instruction; bytesAtEnd compensates for any bytes
	// (e.g. a trailing immediate) that still follow this field.
	sink.Put4(uint32(-int32(bytesAtEnd)))
	return nil
}

func (AmodeRipRelative) read(RegisterVisitor) {}

func (a AmodeRipRelative) String() string { return "(%rip)" }
