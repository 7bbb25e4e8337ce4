package x64gen

import (
	"fmt"
	"strings"
)

// emitBuilderType renders the Builder type declaration once, ahead of
// its per-instruction forwarding methods.
func emitBuilderType() string {
	return `// Builder exposes one forwarding method per instruction, named after
// its UID, so a rule-based instruction selector can construct any
// supported Inst value generically against a single receiver type
// instead of importing every per-instruction constructor by name. Each
// method's parameters stay fully typed — this is a dispatch-by-method-
// selection bridge, not a string-keyed one.
type Builder struct{}

`
}

// emitBridge renders one Builder method forwarding to typeName's own
// constructor, using the same field derivation emitConstructor uses so
// the two never drift out of sync.
func emitBridge(typeName string, fields []field) string {
	if len(fields) == 0 {
		return fmt.Sprintf("func (Builder) %s() Inst { return New%s() }\n\n", typeName, typeName)
	}
	var params, args []string
	for _, fld := range fields {
		lname := strings.ToLower(fld.Name)
		params = append(params, fmt.Sprintf("%s %s", lname, fld.GoType))
		args = append(args, lname)
	}
	return fmt.Sprintf("func (Builder) %s(%s) Inst { return New%s(%s) }\n\n",
		typeName, strings.Join(params, ", "), typeName, strings.Join(args, ", "))
}
