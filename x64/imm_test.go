package x64

import "testing"

func TestImm8StringExtensions(t *testing.T) {
	i := NewImm8(0xFF)
	cases := []struct {
		ext  Extension
		want string
	}{
		{ExtNone, "$0xff"},
		{ExtSignQuad, "$0xffffffffffffffff"},
		{ExtSignLong, "$0xffffffff"},
		{ExtSignWord, "$0xffff"},
		{ExtZero, "$0xff"},
	}
	for _, tc := range cases {
		if got := i.String(tc.ext); got != tc.want {
			t.Errorf("Imm8(0xFF).String(%v) = %q, want %q", tc.ext, got, tc.want)
		}
	}
}

func TestImm8SmallPositiveUsesBareDigit(t *testing.T) {
	if got, want := NewImm8(7).String(ExtNone), "$7"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestImm32SignExtendWordPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic sign-extending a 32-bit immediate to 16 bits")
		}
	}()
	NewImm32(1).String(ExtSignWord)
}

func TestSimm32LowerHex(t *testing.T) {
	cases := []struct {
		v    int32
		want string
	}{
		{0, ""},
		{5, "5"},
		{-5, "-5"},
		{16, "0x10"},
		{-16, "-0x10"},
	}
	for _, tc := range cases {
		if got := NewSimm32(tc.v).LowerHex(); got != tc.want {
			t.Errorf("Simm32(%d).LowerHex() = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestSimm32WithLateOffsetResolve(t *testing.T) {
	plain := Simm32WithLateOffset{Simm32: NewSimm32(10)}
	v, err := plain.Resolve(MapOffsetTable{})
	if err != nil || v != 10 {
		t.Fatalf("Resolve() = %d, %v; want 10, nil", v, err)
	}

	key := KnownOffset(1)
	late := Simm32WithLateOffset{Simm32: NewSimm32(10), Offset: &key}
	v, err = late.Resolve(MapOffsetTable{key: 20})
	if err != nil || v != 30 {
		t.Fatalf("Resolve() = %d, %v; want 30, nil", v, err)
	}

	_, err = late.Resolve(MapOffsetTable{})
	if err == nil {
		t.Fatal("expected an error resolving against a table missing the key")
	}
}

func TestSimm32WithLateOffsetResolveOverflows(t *testing.T) {
	key := KnownOffset(1)
	late := Simm32WithLateOffset{Simm32: NewSimm32(0x7FFFFFFF), Offset: &key}
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on overflow")
		}
	}()
	late.Resolve(MapOffsetTable{key: 1})
}
