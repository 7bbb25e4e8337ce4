// Package x64gen turns internal/x64table's instruction list into the
// Go sources the x64 package's generated instruction library is built
// from: one struct type per table entry plus its constructor, Encode,
// VisitOperands, String and RequiredFlags methods.
package x64gen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corewave/x64asm/internal/x64dsl"
)

// Generator transforms a validated instruction list into generated Go
// source. If a Generator value exists, it is guaranteed to hold a
// non-nil instruction list.
type Generator struct {
	insts  []x64dsl.Inst
	pkg    string
	errors []GenError
}

// New is the sole constructor. It accepts the table entries to
// generate from and the package name the generated file declares. New
// is infallible — a nil instruction list is treated as empty.
func New(insts []x64dsl.Inst, pkg string) *Generator {
	if insts == nil {
		insts = []x64dsl.Inst{}
	}
	if pkg == "" {
		pkg = "x64"
	}
	return &Generator{insts: insts, pkg: pkg}
}

// Errors reports every malformed entry accumulated during Generate.
func (g *Generator) Errors() []GenError { return g.errors }

func (g *Generator) addError(uid, format string, args ...interface{}) {
	g.errors = append(g.errors, GenError{UID: uid, Message: fmt.Sprintf(format, args...)})
}

// Generate renders the instruction library source. A non-nil error
// means at least one table entry could not be translated; Errors()
// holds the full accumulated list, matching this module's convention
// of reporting every bad entry rather than stopping at the first.
func (g *Generator) Generate() (string, error) {
	g.errors = nil

	// Sort by UID for deterministic output: map iteration elsewhere in
	// this package must never leak into the generated file's byte-for-
	// byte content.
	sorted := append([]x64dsl.Inst(nil), g.insts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].UID() < sorted[j].UID() })

	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by x64gen from internal/x64table. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", g.pkg)
	b.WriteString("import \"fmt\"\n\n")
	b.WriteString(emitInstInterface())
	b.WriteString(emitBuilderType())

	seen := make(map[string]bool, len(sorted))
	for _, inst := range sorted {
		uid := inst.UID()
		if seen[uid] {
			g.addError(uid, "duplicate UID")
			continue
		}
		seen[uid] = true

		block, err := g.emitInst(inst)
		if err != nil {
			g.addError(uid, "%v", err)
			continue
		}
		b.WriteString(block)
	}

	if len(g.errors) > 0 {
		return "", fmt.Errorf("x64gen: %d instruction(s) failed to generate", len(g.errors))
	}

	b.WriteString(emitRegistry(sorted))
	return b.String(), nil
}

func emitInstInterface() string {
	return `// Inst is the sum type over every supported instruction.
type Inst interface {
	fmt.Stringer
	VisitOperands
	RequiredFlags
	Encode(sink ByteSink, offsets OffsetTable) error
}

`
}

// emitInst renders the full block (type, constructor, and its four
// methods) for a single table entry.
func (g *Generator) emitInst(inst x64dsl.Inst) (string, error) {
	typeName := GoTypeName(inst.UID())
	fields, err := fieldsFor(inst.Format)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// %s\n", inst.UID())
	b.WriteString(emitStruct(typeName, fields))
	b.WriteString(emitConstructor(typeName, fields))

	encode, err := emitEncode(typeName, inst, fields)
	if err != nil {
		return "", err
	}
	b.WriteString(encode)

	b.WriteString(emitString(typeName, inst, fields))
	b.WriteString(emitVisitOperands(typeName, inst, fields))
	b.WriteString(emitRequiredFlags(typeName, inst))
	b.WriteString(emitBridge(typeName, fields))
	b.WriteString("\n")
	return b.String(), nil
}
