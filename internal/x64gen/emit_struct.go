package x64gen

import (
	"fmt"
	"strings"

	"github.com/corewave/x64asm/internal/x64dsl"
)

// field is one struct field of a generated instruction type, derived
// from a single informative operand of its Format.
type field struct {
	Name      string
	GoType    string
	Kind      string // "imm8"|"imm16"|"imm32"|"simm32"|"reg"|"rm"|"label"|"rel"
	Extension x64dsl.Extension
	BitWidth  int
}

// fieldsFor derives the struct fields for a format. The direct-branch
// (D) and zero-operand (ZO) shapes carry operands the generic
// location-based mapping below doesn't apply to a struct field one-
// for-one, so they're special-cased; every other shape in this
// module's table maps each informative operand straight across.
func fieldsFor(f x64dsl.Format) ([]field, error) {
	if f.Name == "D" {
		return []field{
			{Name: "Target", GoType: "Label", Kind: "label"},
			{Name: "Rel", GoType: "int32", Kind: "rel"},
		}, nil
	}
	if f.Name == "ZO" {
		return nil, nil
	}

	var fields []field
	for _, op := range f.InformativeOperands() {
		switch {
		case op.Location.IsRM():
			fields = append(fields, field{Name: "RM", GoType: "GprMem", Kind: "rm", BitWidth: op.Location.BitWidth()})
		case op.Location.IsReg():
			fields = append(fields, field{Name: "Reg", GoType: "Gpr", Kind: "reg", BitWidth: op.Location.BitWidth()})
		case op.Location.IsImm():
			goType, kind := immGoType(op.Location, op.Extension)
			fields = append(fields, field{Name: "Imm", GoType: goType, Kind: kind, Extension: op.Extension})
		default:
			return nil, fmt.Errorf("unsupported informative operand location %s", op.Location)
		}
	}
	return fields, nil
}

// immGoType picks the runtime immediate type an operand's location and
// display extension call for: a quad-sign-extending immediate is
// still a 32-bit field on the wire (spec.md's 64-bit forms never carry
// a full 64-bit literal), so it is backed by Simm32 rather than Imm32.
func immGoType(loc x64dsl.Location, ext x64dsl.Extension) (goType, kind string) {
	switch loc {
	case x64dsl.LocImm8:
		return "Imm8", "imm8"
	case x64dsl.LocImm16:
		return "Imm16", "imm16"
	case x64dsl.LocImm32:
		if ext == x64dsl.ExtSignQuad {
			return "Simm32", "simm32"
		}
		return "Imm32", "imm32"
	default:
		return "Imm32", "imm32"
	}
}

func emitStruct(typeName string, fields []field) string {
	if len(fields) == 0 {
		return fmt.Sprintf("type %s struct{}\n\n", typeName)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "type %s struct {\n", typeName)
	for _, fld := range fields {
		fmt.Fprintf(&b, "\t%s %s\n", fld.Name, fld.GoType)
	}
	b.WriteString("}\n\n")
	return b.String()
}

func emitConstructor(typeName string, fields []field) string {
	if len(fields) == 0 {
		return fmt.Sprintf("func New%s() %s { return %s{} }\n\n", typeName, typeName, typeName)
	}
	var params, args []string
	for _, fld := range fields {
		params = append(params, fmt.Sprintf("%s %s", strings.ToLower(fld.Name), fld.GoType))
		args = append(args, fmt.Sprintf("%s: %s", fld.Name, strings.ToLower(fld.Name)))
	}
	return fmt.Sprintf("func New%s(%s) %s { return %s{%s} }\n\n",
		typeName, strings.Join(params, ", "), typeName, typeName, strings.Join(args, ", "))
}
