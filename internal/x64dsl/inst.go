package x64dsl

import "fmt"

// Inst is an instruction definition: the mnemonic/format/encoding
// triple of spec.md §3, plus the CPU-feature predicate of §4.8.
// Multiple definitions may share a mnemonic; they are disambiguated by
// Format.
type Inst struct {
	Mnemonic string
	Format   Format
	Recipe   Recipe
	Features Features
}

// Def builds and validates an instruction definition. A non-nil error
// means the table entry is malformed and the build must abort with
// this diagnostic (spec.md §7).
func Def(mnemonic string, format Format, recipe Recipe, features Features) (Inst, error) {
	if mnemonic == "" {
		return Inst{}, fmt.Errorf("instruction definition has empty mnemonic")
	}
	if err := recipe.Validate(format); err != nil {
		return Inst{}, fmt.Errorf("%s %s: %w", mnemonic, format.Name, err)
	}
	if features == nil {
		features = NoFeatures
	}
	return Inst{Mnemonic: mnemonic, Format: format, Recipe: recipe, Features: features}, nil
}

// MustDef panics on a malformed definition; used for table entries
// built at package-init time.
func MustDef(mnemonic string, format Format, recipe Recipe, features Features) Inst {
	inst, err := Def(mnemonic, format, recipe, features)
	if err != nil {
		panic(err)
	}
	return inst
}

// UID is the stable identifier the generator derives a Go type name
// from: mnemonic followed by format name, e.g. "ANDB-I".
func (i Inst) UID() string {
	return i.Mnemonic + "-" + i.Format.Name
}
