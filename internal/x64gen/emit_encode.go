package x64gen

import (
	"fmt"
	"strings"

	"github.com/corewave/x64asm/internal/x64dsl"
)

// emitEncode renders the Encode method. Which shape-level helper in
// x64/encode_helpers.go it calls is fully determined by the format
// name plus the bit width carried by its fields — the recipe's legacy
// prefix and REX.W bit are already baked into each per-width helper,
// so the only recipe detail this needs directly is the opcode byte and
// (for the MI shape) the /digit extension.
func emitEncode(typeName string, inst x64dsl.Inst, fields []field) (string, error) {
	if len(inst.Recipe.Opcode) != 1 {
		return "", fmt.Errorf("x64gen only supports single-byte opcodes, got %d bytes", len(inst.Recipe.Opcode))
	}
	opcode := fmt.Sprintf("0x%02X", inst.Recipe.Opcode[0])

	var body string
	switch inst.Format.Name {
	case "I":
		imm := fieldByKind(fields, "Imm")
		if imm == nil {
			return "", fmt.Errorf("format I requires an immediate field")
		}
		fn, ok := accImmFuncs[imm.Kind]
		if !ok {
			return "", fmt.Errorf("unsupported accumulator-immediate kind %q", imm.Kind)
		}
		body = fmt.Sprintf("\t%s(sink, %s, i.Imm)\n\treturn nil\n", fn, opcode)

	case "MI":
		if !inst.Recipe.HasDigit {
			return "", fmt.Errorf("format MI requires a /digit recipe")
		}
		imm := fieldByKind(fields, "Imm")
		if imm == nil {
			return "", fmt.Errorf("format MI requires an immediate field")
		}
		fn, ok := rmImmFuncs[imm.Kind]
		if !ok {
			return "", fmt.Errorf("unsupported rm-immediate kind %q", imm.Kind)
		}
		body = fmt.Sprintf("\treturn %s(sink, offsets, %s, %d, i.RM, i.Imm)\n", fn, opcode, inst.Recipe.Digit)

	case "MR", "RM":
		if !inst.Recipe.SlashR {
			return "", fmt.Errorf("format %s requires a /r recipe", inst.Format.Name)
		}
		rm := fieldByKind(fields, "RM")
		if rm == nil {
			return "", fmt.Errorf("format %s requires an rm field", inst.Format.Name)
		}
		fn, ok := rmRegFuncs[rm.BitWidth]
		if !ok {
			return "", fmt.Errorf("unsupported register/memory width %d", rm.BitWidth)
		}
		body = fmt.Sprintf("\treturn %s(sink, offsets, %s, i.RM, i.Reg)\n", fn, opcode)

	case "O":
		if !inst.Recipe.PlusReg {
			return "", fmt.Errorf("format O requires a +r recipe")
		}
		reg := fieldByKind(fields, "Reg")
		if reg == nil || reg.BitWidth != 64 {
			return "", fmt.Errorf("x64gen only supports 64-bit O-format operands")
		}
		body = fmt.Sprintf("\tencodeOpcodeReg64(sink, %s, i.Reg)\n\treturn nil\n", opcode)

	case "D":
		body = fmt.Sprintf("\tencodeRel32(sink, %s, i.Rel)\n\treturn nil\n", opcode)

	case "ZO":
		body = fmt.Sprintf("\tencodeZeroOp(sink, %s)\n\treturn nil\n", opcode)

	default:
		return "", fmt.Errorf("unsupported format %q", inst.Format.Name)
	}

	var b strings.Builder
	recv := receiver(typeName, fields)
	offsetsParam := "offsets OffsetTable"
	if !strings.Contains(body, "offsets") {
		offsetsParam = "_ OffsetTable"
	}
	fmt.Fprintf(&b, "func (%s) Encode(sink ByteSink, %s) error {\n%s}\n\n", recv, offsetsParam, body)
	return b.String(), nil
}

var accImmFuncs = map[string]string{
	"imm8":   "encodeAccImm8",
	"imm16":  "encodeAccImm16",
	"imm32":  "encodeAccImm32",
	"simm32": "encodeAccImm64",
}

var rmImmFuncs = map[string]string{
	"imm8":   "encodeRMImm8",
	"imm16":  "encodeRMImm16",
	"imm32":  "encodeRMImm32",
	"simm32": "encodeRMImm64",
}

var rmRegFuncs = map[int]string{
	8:  "encodeRMReg8",
	16: "encodeRMReg16",
	32: "encodeRMReg32",
	64: "encodeRMReg64",
}

func fieldByKind(fields []field, name string) *field {
	for i := range fields {
		if fields[i].Name == name {
			return &fields[i]
		}
	}
	return nil
}

// receiver renders a method receiver, naming the value "i" when the
// method body references it and discarding it otherwise (the
// zero-operand forms have nothing to read from their receiver).
func receiver(typeName string, fields []field) string {
	if len(fields) == 0 {
		return "(" + typeName + ")"
	}
	return "i " + typeName
}
