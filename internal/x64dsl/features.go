package x64dsl

import "fmt"

// Flag is an atom in the closed CPU-feature enumeration (spec.md §4.8).
// New hardware features are added here, never invented ad hoc by an
// instruction table entry.
type Flag int

const (
	Flag64b Flag = iota
	FlagCompat
	numFlags
)

func (f Flag) String() string {
	switch f {
	case Flag64b:
		return "64-bit"
	case FlagCompat:
		return "compat"
	default:
		return fmt.Sprintf("flag(%d)", int(f))
	}
}

// Features is a boolean tree over Flag atoms: None, a single Flag, or
// an And/Or of two sub-trees.
type Features interface {
	isFeatures()
	String() string
}

type noFeatures struct{}

func (noFeatures) isFeatures()    {}
func (noFeatures) String() string { return "" }

// NoFeatures is the empty requirement: the instruction needs no
// feature flag beyond being a valid x86-64 instruction.
var NoFeatures Features = noFeatures{}

type flagFeature struct{ flag Flag }

func (flagFeature) isFeatures()      {}
func (f flagFeature) String() string { return f.flag.String() }

// Only builds a single-flag requirement.
func Only(f Flag) Features { return flagFeature{flag: f} }

type andFeatures struct{ lhs, rhs Features }

func (andFeatures) isFeatures()      {}
func (a andFeatures) String() string { return a.lhs.String() + " & " + a.rhs.String() }

// And builds a conjunction of two requirements.
func And(lhs, rhs Features) Features { return andFeatures{lhs: lhs, rhs: rhs} }

type orFeatures struct{ lhs, rhs Features }

func (orFeatures) isFeatures()      {}
func (o orFeatures) String() string { return o.lhs.String() + " | " + o.rhs.String() }

// Or builds a disjunction of two requirements.
func Or(lhs, rhs Features) Features { return orFeatures{lhs: lhs, rhs: rhs} }

// Flags flattens a Features tree into the set of Flag atoms it
// references, for the generator to turn into a runtime bitset.
func Flags(f Features) []Flag {
	switch v := f.(type) {
	case noFeatures:
		return nil
	case flagFeature:
		return []Flag{v.flag}
	case andFeatures:
		return append(Flags(v.lhs), Flags(v.rhs)...)
	case orFeatures:
		return append(Flags(v.lhs), Flags(v.rhs)...)
	default:
		return nil
	}
}
