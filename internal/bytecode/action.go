package bytecode

// ActionKind discriminates the closed set of response shapes a decoded
// instruction can carry.
type ActionKind uint8

const (
	ActNop ActionKind = iota
	ActBinOp
	ActMove
	ActCall
	ActJmp
)

// BinOpKind names an arithmetic/logical operator, including the
// move-flavoured variants that compute a direction instead of storing
// to Dst, and Xchg which swaps two whole registers.
type BinOpKind uint8

const (
	OpAdd BinOpKind = iota
	OpSub
	OpMul
	OpDiv
	OpAnd
	OpOr
	OpXor
	OpMov
	OpXchg
	OpMoveAdd
	OpMoveSub
	OpMoveMul
	OpMoveDiv
	OpMoveAnd
	OpMoveOr
	OpMoveXor
)

// IsMoveFlavoured reports whether op computes a direction and relocates
// the entity rather than storing its result to Dst.
func (op BinOpKind) IsMoveFlavoured() bool {
	switch op {
	case OpMoveAdd, OpMoveSub, OpMoveMul, OpMoveDiv, OpMoveAnd, OpMoveOr, OpMoveXor:
		return true
	default:
		return false
	}
}

// JumpKind names which long-register comparison, if any, gates a Jmp
// action.
type JumpKind uint8

const (
	JumpUnconditional JumpKind = iota
	JumpR0Eq
	JumpR0Neq
	JumpR0Gt
	JumpR0Lt
	JumpR0Ge
	JumpR0Le
	JumpR1Eq
	JumpR1Neq
	JumpR1Gt
	JumpR1Lt
	JumpR1Ge
	JumpR1Le
)

// Action is the "response" half of an instruction.
type Action struct {
	Kind ActionKind

	// ActBinOp
	Op  BinOpKind
	Dst Selector   // also the first Xchg operand
	Src RegOrConst // for Xchg, Src always names a register (Reg(sel))

	// ActMove / ActCall
	Operand RegOrConst

	// ActJmp
	JumpKind JumpKind
	Offset   int8
}

// IsMoveFlavoured reports whether executing this action may relocate
// the entity, which governs whether the step loop brackets it with
// cleared/placed observer notifications.
func (a Action) IsMoveFlavoured() bool {
	switch a.Kind {
	case ActMove:
		return true
	case ActBinOp:
		return a.Op.IsMoveFlavoured()
	default:
		return false
	}
}
