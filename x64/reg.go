package x64

import "fmt"

// Gpr is a general-purpose register operand, identified by its
// 4-bit hardware encoding (0-15). The top bit (encodings 8-15)
// requires a REX prefix to address; AlwaysEmitIf8BitNeeded below
// handles the other REX-forcing case, the low-byte registers
// spl/bpl/sil/dil.
type Gpr struct {
	enc uint8
}

// NewGpr builds a register operand from its hardware encoding.
func NewGpr(enc uint8) Gpr {
	if enc >= 16 {
		panic(fmt.Sprintf("x64: invalid register encoding %d", enc))
	}
	return Gpr{enc: enc}
}

const (
	EncRAX uint8 = iota
	EncRCX
	EncRDX
	EncRBX
	EncRSP
	EncRBP
	EncRSI
	EncRDI
	EncR8
	EncR9
	EncR10
	EncR11
	EncR12
	EncR13
	EncR14
	EncR15
)

var (
	RAX = NewGpr(EncRAX)
	RCX = NewGpr(EncRCX)
	RDX = NewGpr(EncRDX)
	RBX = NewGpr(EncRBX)
	RSP = NewGpr(EncRSP)
	RBP = NewGpr(EncRBP)
	RSI = NewGpr(EncRSI)
	RDI = NewGpr(EncRDI)
	R8  = NewGpr(EncR8)
	R9  = NewGpr(EncR9)
	R10 = NewGpr(EncR10)
	R11 = NewGpr(EncR11)
	R12 = NewGpr(EncR12)
	R13 = NewGpr(EncR13)
	R14 = NewGpr(EncR14)
	R15 = NewGpr(EncR15)
)

// Enc returns the register's 4-bit hardware encoding.
func (g Gpr) Enc() uint8 { return g.enc }

// IsExtended reports whether addressing this register requires
// REX.R/X/B to carry its high bit.
func (g Gpr) IsExtended() bool { return g.enc >= 8 }

// AlwaysEmitIf8BitNeeded forces a REX prefix to be present when this
// register is used as an 8-bit operand. Encodings 4-7 name AH/CH/DH/BH
// with no REX prefix and SPL/BPL/SIL/DIL with one; the only way to
// select the low-byte register over its legacy high-byte sibling is to
// ensure a REX prefix is emitted even when nothing else requires one.
func (g Gpr) AlwaysEmitIf8BitNeeded(rex *RexFlags) {
	if g.enc >= 4 && g.enc <= 7 {
		rex.AlwaysEmit()
	}
}

// Size is the operand width a register name is printed at; it does
// not change which physical register is addressed.
type Size int

const (
	Byte Size = iota
	Word
	Doubleword
	Quadword
)

func (s Size) String() string {
	switch s {
	case Byte:
		return "byte"
	case Word:
		return "word"
	case Doubleword:
		return "doubleword"
	case Quadword:
		return "quadword"
	default:
		return fmt.Sprintf("size(%d)", int(s))
	}
}

var gprNames = [16][4]string{
	EncRAX: {"%al", "%ax", "%eax", "%rax"},
	EncRCX: {"%cl", "%cx", "%ecx", "%rcx"},
	EncRDX: {"%dl", "%dx", "%edx", "%rdx"},
	EncRBX: {"%bl", "%bx", "%ebx", "%rbx"},
	EncRSP: {"%spl", "%sp", "%esp", "%rsp"},
	EncRBP: {"%bpl", "%bp", "%ebp", "%rbp"},
	EncRSI: {"%sil", "%si", "%esi", "%rsi"},
	EncRDI: {"%dil", "%di", "%edi", "%rdi"},
	EncR8:  {"%r8b", "%r8w", "%r8d", "%r8"},
	EncR9:  {"%r9b", "%r9w", "%r9d", "%r9"},
	EncR10: {"%r10b", "%r10w", "%r10d", "%r10"},
	EncR11: {"%r11b", "%r11w", "%r11d", "%r11"},
	EncR12: {"%r12b", "%r12w", "%r12d", "%r12"},
	EncR13: {"%r13b", "%r13w", "%r13d", "%r13"},
	EncR14: {"%r14b", "%r14w", "%r14d", "%r14"},
	EncR15: {"%r15b", "%r15w", "%r15d", "%r15"},
}

// String renders the register's AT&T-syntax name at the given width.
func (g Gpr) String(size Size) string {
	return gprNames[g.enc][size]
}

// Read reports a read-only use of this register to a register
// allocator's visitor.
func (g Gpr) Read(v RegisterVisitor) { v.Read(g.enc) }

// ReadWrite reports a read-modify-write use of this register.
func (g Gpr) ReadWrite(v RegisterVisitor) { v.ReadWrite(g.enc) }

// NonRspGpr is a general register excluded from RSP: several
// addressing-mode base/index slots reject RSP because its encoding is
// reserved to signal "SIB byte follows" (base slot) or "no index"
// (index slot).
type NonRspGpr struct {
	gpr Gpr
}

// NewNonRspGpr wraps a register, rejecting RSP.
func NewNonRspGpr(g Gpr) (NonRspGpr, error) {
	if g.enc == EncRSP {
		return NonRspGpr{}, fmt.Errorf("x64: register %%rsp is not valid here")
	}
	return NonRspGpr{gpr: g}, nil
}

func (n NonRspGpr) Enc() uint8            { return n.gpr.enc }
func (n NonRspGpr) Gpr() Gpr              { return n.gpr }
func (n NonRspGpr) IsExtended() bool      { return n.gpr.IsExtended() }
func (n NonRspGpr) String(size Size) string { return n.gpr.String(size) }
