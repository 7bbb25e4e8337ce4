package x64

// This file holds the shape-level encoders shared by every generated
// instruction in instructions_gen.go. Each function implements one
// entry of internal/x64table's format vocabulary (I, MI, MR, RM, O, D,
// ZO); instructions_gen.go's per-instruction Encode methods are thin
// callers that supply their own fixed opcode/digit/prefix constants.

// encodeAccImm8 is the I-format byte-accumulator shape: opcode, imm8.
func encodeAccImm8(sink ByteSink, opcode byte, imm Imm8) {
	sink.Put1(opcode)
	sink.Put1(imm.Value())
}

// encodeAccImm16 is the I-format word-accumulator shape: 0x66 prefix,
// opcode, imm16.
func encodeAccImm16(sink ByteSink, opcode byte, imm Imm16) {
	sink.Put1(0x66)
	sink.Put1(opcode)
	sink.Put2(imm.Value())
}

// encodeAccImm32 is the I-format doubleword-accumulator shape: opcode,
// imm32.
func encodeAccImm32(sink ByteSink, opcode byte, imm Imm32) {
	sink.Put1(opcode)
	sink.Put4(imm.Value())
}

// encodeAccImm64 is the I-format quadword-accumulator shape: REX.W,
// opcode, a 32-bit immediate sign-extended to 64 bits at execution.
func encodeAccImm64(sink ByteSink, opcode byte, imm Simm32) {
	sink.Put1(0x48)
	sink.Put1(opcode)
	sink.Put4(uint32(imm.Value()))
}

// encodeRMImm8 is the MI-format byte shape: opcode /digit, imm8.
func encodeRMImm8(sink ByteSink, offsets OffsetTable, opcode byte, digit uint8, rm GprMem, imm Imm8) error {
	emitTrapForRM(sink, rm)
	var rex RexFlags
	rm.AlwaysEmitIf8BitNeeded(&rex)
	emitRexForRM(sink, rex, digit, rm)
	sink.Put1(opcode)
	if err := emitModRMSIBDisp(sink, offsets, digit, rm, 1); err != nil {
		return err
	}
	sink.Put1(imm.Value())
	return nil
}

// encodeRMImm16 is the MI-format word shape: 0x66 prefix, opcode
// /digit, imm16.
func encodeRMImm16(sink ByteSink, offsets OffsetTable, opcode byte, digit uint8, rm GprMem, imm Imm16) error {
	emitTrapForRM(sink, rm)
	sink.Put1(0x66)
	var rex RexFlags
	emitRexForRM(sink, rex, digit, rm)
	sink.Put1(opcode)
	if err := emitModRMSIBDisp(sink, offsets, digit, rm, 2); err != nil {
		return err
	}
	sink.Put2(imm.Value())
	return nil
}

// encodeRMImm32 is the MI-format doubleword shape: opcode /digit,
// imm32.
func encodeRMImm32(sink ByteSink, offsets OffsetTable, opcode byte, digit uint8, rm GprMem, imm Imm32) error {
	emitTrapForRM(sink, rm)
	var rex RexFlags
	emitRexForRM(sink, rex, digit, rm)
	sink.Put1(opcode)
	if err := emitModRMSIBDisp(sink, offsets, digit, rm, 4); err != nil {
		return err
	}
	sink.Put4(imm.Value())
	return nil
}

// encodeRMImm64 is the MI-format quadword shape: REX.W, opcode
// /digit, a 32-bit immediate sign-extended at execution.
func encodeRMImm64(sink ByteSink, offsets OffsetTable, opcode byte, digit uint8, rm GprMem, imm Simm32) error {
	emitTrapForRM(sink, rm)
	rex := RexFlagsFor64Bit()
	emitRexForRM(sink, rex, digit, rm)
	sink.Put1(opcode)
	if err := emitModRMSIBDisp(sink, offsets, digit, rm, 4); err != nil {
		return err
	}
	sink.Put4(uint32(imm.Value()))
	return nil
}

// encodeRMReg8/16/32/64 are the MR- and RM-format shapes: ModR/M.reg is
// filled by reg's encoding ("/r") and ModR/M.rm by rm; the opcode alone
// selects which operand is the destination.

func encodeRMReg8(sink ByteSink, offsets OffsetTable, opcode byte, rm GprMem, reg Gpr) error {
	emitTrapForRM(sink, rm)
	var rex RexFlags
	rm.AlwaysEmitIf8BitNeeded(&rex)
	reg.AlwaysEmitIf8BitNeeded(&rex)
	emitRexForRM(sink, rex, reg.Enc(), rm)
	sink.Put1(opcode)
	return emitModRMSIBDisp(sink, offsets, reg.Enc(), rm, 0)
}

func encodeRMReg16(sink ByteSink, offsets OffsetTable, opcode byte, rm GprMem, reg Gpr) error {
	emitTrapForRM(sink, rm)
	sink.Put1(0x66)
	var rex RexFlags
	emitRexForRM(sink, rex, reg.Enc(), rm)
	sink.Put1(opcode)
	return emitModRMSIBDisp(sink, offsets, reg.Enc(), rm, 0)
}

func encodeRMReg32(sink ByteSink, offsets OffsetTable, opcode byte, rm GprMem, reg Gpr) error {
	emitTrapForRM(sink, rm)
	var rex RexFlags
	emitRexForRM(sink, rex, reg.Enc(), rm)
	sink.Put1(opcode)
	return emitModRMSIBDisp(sink, offsets, reg.Enc(), rm, 0)
}

func encodeRMReg64(sink ByteSink, offsets OffsetTable, opcode byte, rm GprMem, reg Gpr) error {
	emitTrapForRM(sink, rm)
	rex := RexFlagsFor64Bit()
	emitRexForRM(sink, rex, reg.Enc(), rm)
	sink.Put1(opcode)
	return emitModRMSIBDisp(sink, offsets, reg.Enc(), rm, 0)
}

// encodeOpcodeReg64 is the O-format shape: the register's encoding is
// embedded in the opcode byte's low 3 bits ("+ro"), with no ModR/M
// byte at all.
func encodeOpcodeReg64(sink ByteSink, opcode byte, reg Gpr) {
	var rex RexFlags
	if reg.IsExtended() {
		rex.AlwaysEmit()
	}
	rex.EmitTwoOp(sink, 0, reg.Enc())
	sink.Put1(opcode | (reg.Enc() & 7))
}

// encodeRel32 is the D-format shape: opcode, then a 32-bit
// displacement resolved against a label at assembly time. The caller
// resolves the label to a concrete rel32 value before calling this;
// this package has no label table of its own.
func encodeRel32(sink ByteSink, opcode byte, rel int32) {
	sink.Put1(opcode)
	sink.Put4(uint32(rel))
}

// encodeZeroOp is the ZO-format shape: a bare opcode with no operands.
func encodeZeroOp(sink ByteSink, opcode byte) {
	sink.Put1(opcode)
}
