package x64

// GprMem is a register-or-memory operand: the runtime value behind
// every rm8/rm16/rm32/rm64 slot in the instruction table. It is a
// two-case sum emulated, as Go has no closed unions, by an interface
// over two unexported structs.
type GprMem interface {
	isGprMem()
	AlwaysEmitIf8BitNeeded(rex *RexFlags)
	String(size Size) string
	Read(v RegisterVisitor)
	ReadWrite(v RegisterVisitor)
}

type gprMemReg struct{ reg Gpr }

func (gprMemReg) isGprMem() {}

func (g gprMemReg) AlwaysEmitIf8BitNeeded(rex *RexFlags) { g.reg.AlwaysEmitIf8BitNeeded(rex) }

func (g gprMemReg) String(size Size) string { return g.reg.String(size) }

func (g gprMemReg) Read(v RegisterVisitor) { g.reg.Read(v) }

func (g gprMemReg) ReadWrite(v RegisterVisitor) { g.reg.ReadWrite(v) }

// Reg builds a register-or-memory operand holding a plain register.
func Reg(g Gpr) GprMem { return gprMemReg{reg: g} }

type gprMemMem struct{ amode Amode }

func (gprMemMem) isGprMem() {}

func (gprMemMem) AlwaysEmitIf8BitNeeded(*RexFlags) {}

func (g gprMemMem) String(Size) string { return g.amode.String() }

func (g gprMemMem) Read(v RegisterVisitor) { g.amode.read(v) }

// ReadWrite treats a memory operand as read-only from the register
// allocator's point of view: the memory access itself has no register
// to rewrite beyond the addressing registers a plain Read already
// reports.
func (g gprMemMem) ReadWrite(v RegisterVisitor) { g.amode.read(v) }

// Mem builds a register-or-memory operand holding a memory address.
func Mem(a Amode) GprMem { return gprMemMem{amode: a} }

// RegOf reports the register behind a GprMem, when it holds one.
func RegOf(g GprMem) (Gpr, bool) {
	r, ok := g.(gprMemReg)
	if !ok {
		return Gpr{}, false
	}
	return r.reg, true
}

// AmodeOf reports the memory address behind a GprMem, when it holds
// one.
func AmodeOf(g GprMem) (Amode, bool) {
	m, ok := g.(gprMemMem)
	if !ok {
		return nil, false
	}
	return m.amode, true
}

// emitRexForRM writes the REX prefix (if needed) for a ModR/M form
// whose reg field is encG, ahead of the opcode bytes. The REX prefix
// must precede the opcode, so this is always called before the
// instruction's opcode bytes are written, and emitModRMSIBDisp is
// always called after them.
func emitRexForRM(sink ByteSink, rex RexFlags, encG uint8, rm GprMem) {
	switch v := rm.(type) {
	case gprMemReg:
		rex.EmitTwoOp(sink, encG, v.reg.Enc())
	case gprMemMem:
		v.amode.emitRexPrefix(sink, rex, encG)
	default:
		panic("x64: unknown GprMem implementation")
	}
}

// emitModRMSIBDisp writes the ModR/M byte and, for a memory operand,
// its SIB byte and displacement. This is the shared tail every
// generated instruction's Encode method calls once its opcode bytes
// are written.
func emitModRMSIBDisp(sink ByteSink, offsets OffsetTable, encG uint8, rm GprMem, bytesAtEnd uint8) error {
	switch v := rm.(type) {
	case gprMemReg:
		sink.Put1(EncodeModRM(0b11, encG, v.reg.Enc()))
		return nil
	case gprMemMem:
		return v.amode.emitModRMSIBDisp(sink, offsets, encG, bytesAtEnd)
	default:
		panic("x64: unknown GprMem implementation")
	}
}

// emitTrapForRM registers the instruction's trap code, if its memory
// operand carries one, before any byte of the instruction is written.
// Every memory-capable encode* helper in encode_helpers.go calls this
// first, ahead of the legacy prefix, REX, and opcode bytes.
func emitTrapForRM(sink ByteSink, rm GprMem) {
	if v, ok := rm.(gprMemMem); ok {
		if trap, ok := v.amode.trapCode(); ok {
			sink.AddTrap(trap)
		}
	}
}
