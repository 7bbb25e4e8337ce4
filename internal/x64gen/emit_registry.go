package x64gen

import (
	"fmt"
	"strings"

	"github.com/corewave/x64asm/internal/x64dsl"
)

// emitRegistry renders the Descriptor type and the All slice: one
// entry per generated instruction, carrying its UID, mnemonic, format
// name, and the name of its Builder forwarding method. This doubles as
// the rule-table artefact of spec.md §6 ("a rule-table file declaring
// the matching external constructors") — a rule-based instruction
// selector reads BuilderMethod to know which Builder method realizes a
// given tag, without ever constructing an Inst by parsing a mnemonic
// string. It also backs the x64 package's own check of len(All) — a
// generated dispatch table indexed by tag, standing in for a
// closed-at-build-time tagged union.
func emitRegistry(sorted []x64dsl.Inst) string {
	var b strings.Builder
	b.WriteString(`// Descriptor names one generated instruction variant without
// constructing it: its UID, source mnemonic, format shape, and the
// Builder method that constructs it.
type Descriptor struct {
	UID           string
	Mnemonic      string
	Format        string
	BuilderMethod string
}

// All lists every instruction variant this package generates, sorted
// by UID. It exists for introspection, the rule-table a rule-based
// instruction selector consults to find each tag's Builder method, and
// exhaustiveness
// checks — never as a construction path itself; build an Inst through
// its typed New... constructor or the matching Builder method instead.
var All = []Descriptor{
`)
	for _, inst := range sorted {
		typeName := GoTypeName(inst.UID())
		fmt.Fprintf(&b, "\t{UID: %q, Mnemonic: %q, Format: %q, BuilderMethod: %q},\n",
			inst.UID(), inst.Mnemonic, inst.Format.Name, typeName)
	}
	b.WriteString("}\n")
	return b.String()
}
