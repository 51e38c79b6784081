package bytecode

// Instruction is the decoded (Predicate, Action) pair for one 32-bit
// code word.
type Instruction struct {
	Predicate Predicate
	Action    Action
}

// regPairFromExt resolves an ext byte's register operand pair: if bit 7
// of ext is set, the instruction operates on the two long registers (bit
// 6 choosing the order); otherwise it operates on two byte lanes,
// (ext>>3)&0x7 and ext&0x7, each resolved through the byte-register
// table.
func regPairFromExt(ext uint8) (lhs, rhs Selector) {
	if ext&0x80 != 0 {
		if ext&0x40 != 0 {
			return Long1, Long0
		}
		return Long0, Long1
	}
	lhs = ByteRegister((ext >> 3) & 0x7)
	rhs = ByteRegister(ext & 0x7)
	return lhs, rhs
}

// Decode maps a 32-bit instruction word to its (Predicate, Action)
// pair. Decoding is total and pure: any bit pattern not recognised by
// either half collapses to Unconditional / Nop rather than erroring.
func Decode(word uint32) Instruction {
	event := uint16(word >> 16)
	response := uint16(word)
	return Instruction{
		Predicate: decodePredicate(uint8(event>>8), uint8(event)),
		Action:    decodeAction(uint8(response>>8), uint8(response)),
	}
}

// ------------------------------------------------------------------------------
// Event half: predicate decoding
// ------------------------------------------------------------------------------

func decodePredicate(op, ext uint8) Predicate {
	switch op {
	case 0x00, 0x01, 0x02, 0x03, 0x04, 0x05:
		lhs, rhs := regPairFromExt(ext)
		kinds := [...]PredicateKind{PredEq, PredNeq, PredGt, PredLt, PredGe, PredLe}
		return Predicate{Kind: kinds[op], LHS: lhs, RHS: rhs}
	}
	if op >= 0x08 && op <= 0x0D {
		kinds := [...]PredicateKind{
			PredSurroundingEq, PredSurroundingNeq, PredSurroundingGt,
			PredSurroundingLt, PredSurroundingGe, PredSurroundingLe,
		}
		return Predicate{Kind: kinds[op-0x08], Operand: Const(ext)}
	}
	if op >= 0x10 && op <= 0x15 {
		kinds := [...]PredicateKind{
			PredSurroundingEq, PredSurroundingNeq, PredSurroundingGt,
			PredSurroundingLt, PredSurroundingGe, PredSurroundingLe,
		}
		lhs, _ := regPairFromExt(ext)
		return Predicate{Kind: kinds[op-0x10], Operand: Reg(lhs)}
	}
	return Predicate{Kind: PredUnconditional}
}

// ------------------------------------------------------------------------------
// Response half: action decoding
// ------------------------------------------------------------------------------

func decodeAction(op, ext uint8) Action {
	switch op {
	case 0x00:
		return Action{Kind: ActMove, Operand: Reg(Long0)}
	case 0x01:
		return Action{Kind: ActMove, Operand: Reg(Long1)}
	case 0x02:
		return Action{Kind: ActCall, Operand: Reg(Long0)}
	case 0x03:
		return Action{Kind: ActCall, Operand: Reg(Long1)}
	case 0x0E:
		return Action{Kind: ActJmp, JumpKind: JumpUnconditional, Offset: int8(ext)}
	case 0x0F:
		return Action{Kind: ActMove, Operand: Const(ext)}
	}
	if op >= 0x08 && op <= 0x0D {
		kinds := [...]JumpKind{JumpR0Eq, JumpR0Neq, JumpR0Gt, JumpR0Lt, JumpR0Ge, JumpR0Le}
		return Action{Kind: ActJmp, JumpKind: kinds[op-0x08], Offset: int8(ext)}
	}
	if op >= 0x20 && op <= 0x25 {
		kinds := [...]JumpKind{JumpR1Eq, JumpR1Neq, JumpR1Gt, JumpR1Lt, JumpR1Ge, JumpR1Le}
		return Action{Kind: ActJmp, JumpKind: kinds[op-0x20], Offset: int8(ext)}
	}
	if op&0x10 != 0 && op&0x80 == 0 {
		return decodeBinOpFamily(op, ext)
	}
	if op&0x80 != 0 {
		switch op {
		case 0x80:
			return Action{Kind: ActCall, Operand: Reg(Long0)}
		case 0x81:
			return Action{Kind: ActCall, Operand: Reg(Long1)}
		case 0xFF:
			return Action{Kind: ActCall, Operand: Const(ext)}
		}
	}
	return Action{Kind: ActNop}
}

func decodeBinOpFamily(op, ext uint8) Action {
	if op >= 0x10 && op <= 0x17 {
		kinds := [...]BinOpKind{OpAdd, OpSub, OpMul, OpDiv, OpXor, OpAnd, OpOr, OpMov}
		lhs, rhs := regPairFromExt(ext)
		return Action{Kind: ActBinOp, Op: kinds[op-0x10], Dst: lhs, Src: Reg(rhs)}
	}
	if op == 0x1F {
		lhs, rhs := regPairFromExt(ext)
		return Action{Kind: ActBinOp, Op: OpXchg, Dst: lhs, Src: Reg(rhs)}
	}
	if op >= 0x30 && op <= 0x36 {
		kinds := [...]BinOpKind{OpMoveAdd, OpMoveSub, OpMoveMul, OpMoveDiv, OpMoveXor, OpMoveAnd, OpMoveOr}
		lhs, rhs := regPairFromExt(ext)
		return Action{Kind: ActBinOp, Op: kinds[op-0x30], Dst: lhs, Src: Reg(rhs)}
	}
	if op >= 0x38 && op <= 0x3B {
		cardinals := [...]uint8{0, 4, 2, 6}
		return Action{Kind: ActMove, Operand: Const(cardinals[op-0x38])}
	}
	return Action{Kind: ActNop}
}
