package x64

import "testing"

// recordingSink wraps Buffer and records, for each call, whether any
// bytes had already been written — used to pin down that AddTrap is
// always the first thing a memory-capable encoder calls, ahead of any
// legacy prefix, REX, or opcode byte.
type recordingSink struct {
	Buffer
	trapCalledAtOffset []int
}

func (s *recordingSink) AddTrap(code TrapCode) {
	s.trapCalledAtOffset = append(s.trapCalledAtOffset, len(s.Bytes()))
	s.Buffer.AddTrap(code)
}

// TestTrapRegisteredBeforeAnyByte confirms every memory-capable Encode
// registers its trap, when its operand carries one, before writing the
// legacy prefix/REX/opcode: AddTrap must fire while the sink is still
// empty, never after bytes are already on the wire.
func TestTrapRegisteredBeforeAnyByte(t *testing.T) {
	trap := TrapCode(1)

	cases := []struct {
		name string
		inst Inst
	}{
		{
			name: "ANDB_MI through RSP (SIB-required, legacy-prefix-free)",
			inst: NewANDB_MI(Mem(AmodeImmReg{Base: RSP, Simm32: Simm32WithLateOffset{Simm32: NewSimm32(0)}, Trap: &trap}), NewImm8(0x0F)),
		},
		{
			name: "ANDW_MI through RBP (forced displacement, 0x66 legacy prefix)",
			inst: NewANDW_MI(Mem(AmodeImmReg{Base: RBP, Simm32: Simm32WithLateOffset{Simm32: NewSimm32(0)}, Trap: &trap}), NewImm16(0x1234)),
		},
		{
			name: "ANDQ_MI through R13 (REX.W + forced displacement)",
			inst: NewANDQ_MI(Mem(AmodeImmReg{Base: R13, Simm32: Simm32WithLateOffset{Simm32: NewSimm32(0)}, Trap: &trap}), NewSimm32(0x11223344)),
		},
		{
			name: "ANDL_MR register-to-memory",
			inst: NewANDL_MR(Mem(AmodeImmReg{Base: RAX, Simm32: Simm32WithLateOffset{Simm32: NewSimm32(8)}, Trap: &trap}), RCX),
		},
		{
			name: "ANDL_RM memory-to-register",
			inst: NewANDL_RM(RCX, Mem(AmodeImmReg{Base: RAX, Simm32: Simm32WithLateOffset{Simm32: NewSimm32(8)}, Trap: &trap})),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var sink recordingSink
			if err := tc.inst.Encode(&sink, MapOffsetTable{}); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if len(sink.trapCalledAtOffset) != 1 {
				t.Fatalf("AddTrap called %d times, want 1", len(sink.trapCalledAtOffset))
			}
			if got := sink.trapCalledAtOffset[0]; got != 0 {
				t.Fatalf("AddTrap called after %d bytes were already written, want 0", got)
			}
		})
	}
}

// TestTrapNotRegisteredForRegisterOperand confirms an rm operand that
// holds a bare register, rather than a memory address, never adds a
// trap: the 8(3) "error/trap model" only applies to faulting memory
// accesses.
func TestTrapNotRegisteredForRegisterOperand(t *testing.T) {
	var sink recordingSink
	inst := NewANDQ_MR(Reg(R8), R9)
	if err := inst.Encode(&sink, MapOffsetTable{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(sink.trapCalledAtOffset) != 0 {
		t.Fatalf("AddTrap called %d times for a register operand, want 0", len(sink.trapCalledAtOffset))
	}
}
