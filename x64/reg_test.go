package x64

import "testing"

func TestGprString(t *testing.T) {
	cases := []struct {
		g    Gpr
		size Size
		want string
	}{
		{RAX, Byte, "%al"},
		{RAX, Quadword, "%rax"},
		{RSP, Byte, "%spl"},
		{R8, Doubleword, "%r8d"},
		{R15, Quadword, "%r15"},
	}
	for _, tc := range cases {
		if got := tc.g.String(tc.size); got != tc.want {
			t.Errorf("Gpr(%d).String(%v) = %q, want %q", tc.g.Enc(), tc.size, got, tc.want)
		}
	}
}

func TestGprIsExtended(t *testing.T) {
	if RDI.IsExtended() {
		t.Error("RDI should not be extended")
	}
	if !R8.IsExtended() {
		t.Error("R8 should be extended")
	}
}

func TestAlwaysEmitIf8BitNeededForLowByteRegisters(t *testing.T) {
	for _, g := range []Gpr{RSP, RBP, RSI, RDI} {
		var rex RexFlags
		g.AlwaysEmitIf8BitNeeded(&rex)
		if !rex.always {
			t.Errorf("register enc %d should force REX emission", g.Enc())
		}
	}
	var rex RexFlags
	RAX.AlwaysEmitIf8BitNeeded(&rex)
	if rex.always {
		t.Error("RAX should not force REX emission")
	}
}

func TestNewNonRspGprRejectsRsp(t *testing.T) {
	if _, err := NewNonRspGpr(RSP); err == nil {
		t.Fatal("expected an error constructing a non-RSP register from RSP")
	}
	n, err := NewNonRspGpr(RBX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Enc() != RBX.Enc() {
		t.Errorf("Enc() = %d, want %d", n.Enc(), RBX.Enc())
	}
}

func TestNewGprPanicsOnOutOfRangeEncoding(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an out-of-range encoding")
		}
	}()
	NewGpr(16)
}
