package x64

// Flag is an atom in the closed CPU-feature enumeration: the runtime
// counterpart of internal/x64dsl.Flag, kept as its own type because
// the generated instruction library must not import the DSL package
// (spec.md keeps compile-time table data and runtime encoding
// separate).
type Flag int

const (
	Flag64b Flag = iota
	FlagCompat
)

// AvailableFeatures is a bitset over Flag, built once for a target and
// checked against an instruction's RequiredFlags through Supports.
// Encode itself never consults it.
type AvailableFeatures struct {
	bits uint32
}

// NewAvailableFeatures builds a bitset containing exactly the given
// flags.
func NewAvailableFeatures(flags ...Flag) AvailableFeatures {
	var bits uint32
	for _, f := range flags {
		bits |= 1 << uint(f)
	}
	return AvailableFeatures{bits: bits}
}

// Has reports whether the given flag is available.
func (a AvailableFeatures) Has(f Flag) bool {
	return a.bits&(1<<uint(f)) != 0
}

// RequiredFlags is implemented by every generated instruction value;
// it reports the flat set of Flag atoms the instruction's feature
// predicate references, for a caller to check against its target's
// AvailableFeatures before encoding.
type RequiredFlags interface {
	RequiredFlags() []Flag
}

// Supports reports whether avail satisfies every flag inst requires.
func Supports(avail AvailableFeatures, inst RequiredFlags) bool {
	for _, f := range inst.RequiredFlags() {
		if !avail.Has(f) {
			return false
		}
	}
	return true
}
