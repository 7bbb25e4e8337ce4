package x64gen

import (
	"fmt"
	"strings"

	"github.com/corewave/x64asm/internal/x64dsl"
)

// emitRequiredFlags renders the RequiredFlags method from the
// instruction's compile-time Features tree, flattened to the flat
// []Flag slice the runtime package's feature check consumes.
func emitRequiredFlags(typeName string, inst x64dsl.Inst) string {
	recv := "(" + typeName + ")"
	flags := x64dsl.Flags(inst.Features)
	if len(flags) == 0 {
		return fmt.Sprintf("func (%s) RequiredFlags() []Flag { return nil }\n", recv)
	}
	idents := make([]string, len(flags))
	for i, f := range flags {
		idents[i] = flagIdent(f)
	}
	return fmt.Sprintf("func (%s) RequiredFlags() []Flag { return []Flag{%s} }\n", recv, strings.Join(idents, ", "))
}

func flagIdent(f x64dsl.Flag) string {
	switch f {
	case x64dsl.Flag64b:
		return "Flag64b"
	case x64dsl.FlagCompat:
		return "FlagCompat"
	default:
		return "Flag64b"
	}
}
