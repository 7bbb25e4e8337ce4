package x64gen

import (
	"fmt"
	"strings"

	"github.com/corewave/x64asm/internal/x64dsl"
)

// emitString renders the String method. Every shape follows AT&T
// order: source operand(s) first, destination operand last.
func emitString(typeName string, inst x64dsl.Inst, fields []field) string {
	mnemonic := strings.ToLower(inst.Mnemonic)
	recv := receiver(typeName, fields)

	var expr string
	switch inst.Format.Name {
	case "I":
		imm := fieldByKind(fields, "Imm")
		acc := strings.ReplaceAll(fixedAccumulatorName(inst), "%", "%%")
		expr = fmt.Sprintf(`fmt.Sprintf("%s %%s, %s", %s)`, mnemonic, acc, immDisplayExpr(imm))

	case "MI":
		imm := fieldByKind(fields, "Imm")
		rm := fieldByKind(fields, "RM")
		expr = fmt.Sprintf(`fmt.Sprintf("%s %%s, %%s", %s, i.RM.String(%s))`,
			mnemonic, immDisplayExpr(imm), sizeIdent(rm.BitWidth))

	case "MR":
		reg := fieldByKind(fields, "Reg")
		rm := fieldByKind(fields, "RM")
		expr = fmt.Sprintf(`fmt.Sprintf("%s %%s, %%s", i.Reg.String(%s), i.RM.String(%s))`,
			mnemonic, sizeIdent(reg.BitWidth), sizeIdent(rm.BitWidth))

	case "RM":
		reg := fieldByKind(fields, "Reg")
		rm := fieldByKind(fields, "RM")
		expr = fmt.Sprintf(`fmt.Sprintf("%s %%s, %%s", i.RM.String(%s), i.Reg.String(%s))`,
			mnemonic, sizeIdent(rm.BitWidth), sizeIdent(reg.BitWidth))

	case "O":
		reg := fieldByKind(fields, "Reg")
		expr = fmt.Sprintf(`fmt.Sprintf("%s %%s", i.Reg.String(%s))`, mnemonic, sizeIdent(reg.BitWidth))

	case "D":
		expr = fmt.Sprintf(`fmt.Sprintf("%s L%%d", i.Target)`, mnemonic)

	case "ZO":
		expr = fmt.Sprintf("%q", mnemonic)

	default:
		expr = fmt.Sprintf("%q", mnemonic)
	}

	return fmt.Sprintf("func (%s) String() string { return %s }\n\n", recv, expr)
}

// fixedAccumulatorName reports the AT&T register name of a format's
// implicit accumulator operand (al/ax/eax/rax); only the "I" shape
// carries one.
func fixedAccumulatorName(inst x64dsl.Inst) string {
	for _, op := range inst.Format.Operands {
		switch op.Location {
		case x64dsl.LocAL:
			return "%al"
		case x64dsl.LocAX:
			return "%ax"
		case x64dsl.LocEAX:
			return "%eax"
		case x64dsl.LocRAX:
			return "%rax"
		}
	}
	return "%rax"
}

// immDisplayExpr renders the Go expression printing an Imm field's
// value. Simm32 (the 32-bit field backing a sign-extended-to-64-bits
// immediate) has no String(Extension) method of its own — it is always
// printed at its full 64-bit width via hexImmediate, the same
// reference-disassembler convention Imm8/16/32.String uses internally.
func immDisplayExpr(imm *field) string {
	if imm.Kind == "simm32" {
		return "hexImmediate(int64(i.Imm.Value()), 64)"
	}
	return fmt.Sprintf("i.Imm.String(%s)", extensionIdent(imm.Extension))
}

func extensionIdent(ext x64dsl.Extension) string {
	switch ext {
	case x64dsl.ExtNone:
		return "ExtNone"
	case x64dsl.ExtSignWord:
		return "ExtSignWord"
	case x64dsl.ExtSignLong:
		return "ExtSignLong"
	case x64dsl.ExtSignQuad:
		return "ExtSignQuad"
	case x64dsl.ExtZero:
		return "ExtZero"
	default:
		return "ExtNone"
	}
}

func sizeIdent(bitWidth int) string {
	switch bitWidth {
	case 8:
		return "Byte"
	case 16:
		return "Word"
	case 32:
		return "Doubleword"
	case 64:
		return "Quadword"
	default:
		return "Quadword"
	}
}
