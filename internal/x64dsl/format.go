package x64dsl

import "fmt"

// Format is a named tuple of operands shared by every instruction
// definition that has the same operand shape. Formats are named after
// their shape (e.g. "I" for a fixed-register/immediate pair, "MI" for
// register-or-memory plus immediate), matching the convention
// cranelift's assembler-x64 DSL uses for its own format names.
type Format struct {
	Name     string
	Operands []Operand
}

// Fmt constructs a Format and validates its shape-level invariants.
// Invariants (spec.md §3): at most one memory-capable (rm) operand per
// format, and operand widths within a format are mutually consistent.
// Construction-time violations are programmer errors in the
// instruction table, not data the generator should silently accept;
// callers that build the table at init time should treat a non-nil
// error as fatal, matching the "abort the build with a diagnostic"
// contract of spec.md §7.
func Fmt(name string, operands ...Operand) (Format, error) {
	f := Format{Name: name, Operands: operands}
	if err := f.validate(); err != nil {
		return Format{}, fmt.Errorf("format %q: %w", name, err)
	}
	return f, nil
}

// MustFmt panics if the format is invalid. Used by table entries built
// at package-init time, where a malformed entry is a build-breaking
// bug rather than recoverable data.
func MustFmt(name string, operands ...Operand) Format {
	f, err := Fmt(name, operands...)
	if err != nil {
		panic(err)
	}
	return f
}

func (f Format) validate() error {
	rmCount := 0
	var widths []int
	for _, op := range f.Operands {
		if op.Location.IsRM() {
			rmCount++
		}
		if w := op.Location.BitWidth(); w != 0 {
			widths = append(widths, w)
		}
	}
	if rmCount > 1 {
		return fmt.Errorf("more than one memory-capable operand")
	}
	// Width consistency: every non-immediate operand must agree on bit
	// width. Immediates may be narrower (sign/zero-extended) so they are
	// excluded from the consistency check; the recipe's imm width flag is
	// the authority on what is actually emitted.
	var nonImmWidth int
	for _, op := range f.Operands {
		if op.Location.IsImm() || op.Location.IsRel() {
			continue
		}
		w := op.Location.BitWidth()
		if w == 0 {
			continue
		}
		if nonImmWidth == 0 {
			nonImmWidth = w
		} else if nonImmWidth != w {
			return fmt.Errorf("inconsistent operand widths: %d vs %d", nonImmWidth, w)
		}
	}
	return nil
}

// InformativeOperands returns the operands that a constructor must
// take: fixed registers and location-only immediates convey no
// information beyond their (already-known) location, so a format with
// zero informative operands yields a zero-argument constructor.
func (f Format) InformativeOperands() []Operand {
	var out []Operand
	for _, op := range f.Operands {
		if op.Location.IsFixed() {
			continue
		}
		out = append(out, op)
	}
	return out
}

// HasMemory reports whether any operand in the format is a
// register-or-memory slot.
func (f Format) HasMemory() bool {
	for _, op := range f.Operands {
		if op.Location.IsRM() {
			return true
		}
	}
	return false
}
