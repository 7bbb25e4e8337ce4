package x64

import (
	"reflect"
	"testing"
)

func TestAllHasNoDuplicateUIDs(t *testing.T) {
	seen := make(map[string]bool, len(All))
	for _, d := range All {
		if seen[d.UID] {
			t.Fatalf("duplicate UID in registry: %s", d.UID)
		}
		seen[d.UID] = true
	}
}

func TestAllIsSortedByUID(t *testing.T) {
	for i := 1; i < len(All); i++ {
		if All[i-1].UID >= All[i].UID {
			t.Fatalf("registry not sorted at index %d: %q >= %q", i, All[i-1].UID, All[i].UID)
		}
	}
}

func TestAllEntriesCarryMnemonicAndFormat(t *testing.T) {
	for _, d := range All {
		if d.Mnemonic == "" || d.Format == "" || d.BuilderMethod == "" {
			t.Fatalf("descriptor %q missing mnemonic, format, or builder method", d.UID)
		}
	}
}

// TestBuilderMethodsMatchRegistry checks that every BuilderMethod name
// the registry declares actually resolves to a Builder method, so the
// rule-table never points a rule-based instruction selector at a
// method that doesn't exist.
func TestBuilderMethodsMatchRegistry(t *testing.T) {
	b := Builder{}
	for _, d := range All {
		if !reflect.ValueOf(b).MethodByName(d.BuilderMethod).IsValid() {
			t.Errorf("registry entry %q names missing Builder method %q", d.UID, d.BuilderMethod)
		}
		switch d.BuilderMethod {
		case "ANDB_I":
			_ = b.ANDB_I(NewImm8(0))
		case "RET_ZO":
			_ = b.RET_ZO()
		case "CALL_D":
			_ = b.CALL_D(0, 0)
		}
	}
}
