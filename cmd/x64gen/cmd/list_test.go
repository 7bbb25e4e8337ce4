package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunListPrintsEveryTableEntry(t *testing.T) {
	var out bytes.Buffer
	listCmd.SetOut(&out)

	runList(listCmd)

	got := out.String()
	if !strings.Contains(got, "UID") || !strings.Contains(got, "BUILDER METHOD") {
		t.Fatalf("list output missing header columns, got: %q", got)
	}
	if !strings.Contains(got, "ANDB-I") || !strings.Contains(got, "ANDB_I") {
		t.Fatalf("list output missing expected entry, got: %q", got)
	}
}
