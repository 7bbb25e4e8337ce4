package x64table_test

import (
	"testing"

	"github.com/corewave/x64asm/internal/x64table"
)

func TestListBuildsWithoutPanicking(t *testing.T) {
	insts := x64table.List()
	if len(insts) == 0 {
		t.Fatal("List() returned no instructions")
	}
}

func TestListHasNoDuplicateUIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, inst := range x64table.List() {
		uid := inst.UID()
		if seen[uid] {
			t.Errorf("duplicate UID %q", uid)
		}
		seen[uid] = true
	}
}

func TestAndLiteralFormsArePresent(t *testing.T) {
	want := map[string]bool{
		"ANDB-I": false, "ANDW-I": false, "ANDL-I": false, "ANDQ-I": false,
		"ANDB-MI": false, "ANDQ-MR": false,
	}
	for _, inst := range x64table.List() {
		if _, ok := want[inst.UID()]; ok {
			want[inst.UID()] = true
		}
	}
	for uid, found := range want {
		if !found {
			t.Errorf("expected table entry %q, not found", uid)
		}
	}
}
