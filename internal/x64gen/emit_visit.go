package x64gen

import (
	"fmt"
	"strings"

	"github.com/corewave/x64asm/internal/x64dsl"
)

// flagsOnlyMnemonics names instructions whose destination-looking
// operand is never actually written back: CMP and TEST only set
// flags. internal/x64table reuses the same MR/MI/I formats CMP and
// TEST's write-back siblings (AND, ADD, ...) use, so the format's own
// declared Mutability can't carry this distinction — it is pinned down
// here instead, against the mnemonic itself.
var flagsOnlyMnemonics = map[string]bool{
	"CMP":  true,
	"TEST": true,
}

// emitVisitOperands renders the VisitOperands method: one reported
// register/memory operand per informative field, in the format's
// declared order, plus the format's fixed accumulator (if any) as a
// Fixed* report.
func emitVisitOperands(typeName string, inst x64dsl.Inst, fields []field) string {
	recv := receiver(typeName, fields)
	flagsOnly := flagsOnlyMnemonics[mnemonicBase(inst.Mnemonic)]

	var calls []string
	if _, ok := fixedLocation(inst); ok {
		if flagsOnly {
			calls = append(calls, "v.FixedRead(EncRAX)")
		} else {
			calls = append(calls, "v.FixedReadWrite(EncRAX)")
		}
	}

	for _, fld := range fields {
		switch fld.Kind {
		case "rm":
			// The "RM" format shape's rm operand is always the source
			// (reg is the destination) — true for LEA's address-only
			// operand and MOV's load form as much as AND's. The "MR"/
			// "MI" shapes' rm operand is the destination, except for
			// CMP/TEST, which only ever read it.
			if inst.Format.Name == "RM" || flagsOnly {
				calls = append(calls, "i.RM.Read(v)")
			} else {
				calls = append(calls, "i.RM.ReadWrite(v)")
			}
		case "reg":
			// The RM format's register operand is the instruction's
			// destination (read-write), as is POP's O-format operand;
			// every other shape's register operand is a source, read
			// only, regardless of whether the instruction is flags-only.
			switch {
			case inst.Format.Name == "RM":
				calls = append(calls, "i.Reg.ReadWrite(v)")
			case inst.Format.Name == "O" && mnemonicBase(inst.Mnemonic) == "POP":
				calls = append(calls, "i.Reg.ReadWrite(v)")
			default:
				calls = append(calls, "i.Reg.Read(v)")
			}
		}
	}

	if len(calls) == 0 {
		return fmt.Sprintf("func (%s) VisitOperands(RegisterVisitor) {}\n\n", recv)
	}
	return fmt.Sprintf("func (%s) VisitOperands(v RegisterVisitor) { %s }\n\n", recv, strings.Join(calls, "; "))
}

// fixedLocation reports whether the format carries an implicit
// accumulator operand.
func fixedLocation(inst x64dsl.Inst) (x64dsl.Location, bool) {
	for _, op := range inst.Format.Operands {
		if op.Location.IsFixed() {
			return op.Location, true
		}
	}
	return x64dsl.LocNone, false
}

// mnemonicBase strips the operand-size suffix letter(s) this module's
// table appends to a mnemonic (e.g. "ANDQ" -> "AND", "TESTB" ->
// "TEST"), so a size-agnostic lookup like flagsOnlyMnemonics can match
// regardless of which width variant is being generated.
func mnemonicBase(mnemonic string) string {
	for _, base := range []string{"AND", "OR", "XOR", "ADD", "SUB", "CMP", "TEST", "MOV", "LEA", "PUSH", "POP", "CALL", "JMP", "RET", "NOP"} {
		if strings.HasPrefix(mnemonic, base) {
			return base
		}
	}
	return mnemonic
}
