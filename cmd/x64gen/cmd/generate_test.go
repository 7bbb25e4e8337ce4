package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunGenerateWritesToStdoutByDefault(t *testing.T) {
	generatePkg, generateOut = "x64", ""
	defer func() { generatePkg, generateOut = "x64", "" }()

	var out bytes.Buffer
	generateCmd.SetOut(&out)

	if err := runGenerate(generateCmd); err != nil {
		t.Fatalf("runGenerate returned error: %v", err)
	}

	src := out.String()
	if !strings.Contains(src, "package x64") {
		t.Errorf("generated output missing package clause, got: %q", src[:min(len(src), 80)])
	}
	if !strings.Contains(src, "type Builder struct{}") {
		t.Error("generated output missing Builder type")
	}
}

func TestRunGenerateWritesToFile(t *testing.T) {
	generatePkg = "x64"
	generateOut = t.TempDir() + "/out.go"
	defer func() { generatePkg, generateOut = "x64", "" }()

	if err := runGenerate(generateCmd); err != nil {
		t.Fatalf("runGenerate returned error: %v", err)
	}
}
