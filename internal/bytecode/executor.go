package bytecode

import "math"

// Entity is the minimal view the executor needs of an entity: its
// register file, its position, and its program counter. Concrete
// entities (package world) implement this directly so the bytecode
// package never imports world and no reference cycle exists.
type Entity interface {
	ID() uint32
	Pos() (x, y uint32)
	Registers() *RegisterFile
	IP() int
	SetIP(ip int)
	CodeLen() int
}

// Host is the minimal view the executor needs of the world: grid
// dimensions, the ability to attempt relocating an entity, and the
// ability to invoke a registered callback.
type Host interface {
	Dims() (width, height uint32)
	AttemptMove(entityID uint32, x, y uint32) bool
	Invoke(callbackIndex uint64, entityID uint32)
}

const maxU64 = math.MaxUint64

// ------------------------------------------------------------------------------
// Dispatch
// ------------------------------------------------------------------------------

// Execute performs action against e using h as the world collaborator.
// The program counter is assumed already advanced by the caller's step
// loop; Jmp offsets are computed relative to that advanced value.
func Execute(action Action, e Entity, h Host) {
	switch action.Kind {
	case ActNop:
		return
	case ActBinOp:
		executeBinOp(action, e, h)
	case ActMove:
		dir := DirectionFromValue(e.Registers().ReadRC(action.Operand))
		moveStep(dir, e, h)
	case ActCall:
		idx := e.Registers().ReadRC(action.Operand)
		h.Invoke(idx, e.ID())
	case ActJmp:
		executeJmp(action, e)
	}
}

// ------------------------------------------------------------------------------
// BinOp / Move / Jmp execution
// ------------------------------------------------------------------------------

func executeBinOp(action Action, e Entity, h Host) {
	regs := e.Registers()
	if action.Op == OpXchg {
		a := regs.Read(action.Dst)
		bSel := action.Src.reg
		b := regs.Read(bSel)
		regs.Write(action.Dst, b)
		regs.Write(bSel, a)
		return
	}
	lhs := regs.Read(action.Dst)
	rhs := regs.ReadRC(action.Src)
	result := applyArith(action.Op, lhs, rhs)
	if action.Op.IsMoveFlavoured() {
		moveStep(DirectionFromValue(result), e, h)
		return
	}
	regs.Write(action.Dst, result)
}

// applyArith computes the wrapping result of op on (lhs, rhs). Integer
// divide-by-zero yields math.MaxUint64, which for the MoveXxx variants
// then propagates into DirectionFromValue: MaxUint64 mod 8 == 7, so a
// divide-by-zero move always resolves to BottomRight.
func applyArith(op BinOpKind, lhs, rhs uint64) uint64 {
	switch op {
	case OpAdd, OpMoveAdd:
		return lhs + rhs
	case OpSub, OpMoveSub:
		return lhs - rhs
	case OpMul, OpMoveMul:
		return lhs * rhs
	case OpDiv, OpMoveDiv:
		if rhs == 0 {
			return maxU64
		}
		return lhs / rhs
	case OpAnd, OpMoveAnd:
		return lhs & rhs
	case OpOr, OpMoveOr:
		return lhs | rhs
	case OpXor, OpMoveXor:
		return lhs ^ rhs
	case OpMov:
		return rhs
	default:
		return lhs
	}
}

func moveStep(dir Direction, e Entity, h Host) {
	x, y := e.Pos()
	width, height := h.Dims()
	nx, ny := dir.Step(x, y, width, height)
	if nx == x && ny == y {
		return
	}
	h.AttemptMove(e.ID(), nx, ny)
}

// jumpCondition evaluates a jump's register comparison. JumpR0Lt and
// JumpR0Le (and symmetrically JumpR1Lt/JumpR1Le) both compute "<=";
// this collapse is kept deliberately rather than giving Lt its own
// strict comparison, since entities compiled against the existing
// behavior would silently start branching differently otherwise.
func jumpCondition(kind JumpKind, r0, r1 uint64) bool {
	switch kind {
	case JumpUnconditional:
		return true
	case JumpR0Eq:
		return r0 == r1
	case JumpR0Neq:
		return r0 != r1
	case JumpR0Gt:
		return r0 > r1
	case JumpR0Ge:
		return r0 >= r1
	case JumpR0Lt:
		return r0 <= r1
	case JumpR0Le:
		return r0 <= r1
	case JumpR1Eq:
		return r1 == r0
	case JumpR1Neq:
		return r1 != r0
	case JumpR1Gt:
		return r1 > r0
	case JumpR1Ge:
		return r1 >= r0
	case JumpR1Lt:
		return r1 <= r0
	case JumpR1Le:
		return r1 <= r0
	default:
		return false
	}
}

func executeJmp(action Action, e Entity) {
	regs := e.Registers()
	if !jumpCondition(action.JumpKind, regs.Long0(), regs.Long1()) {
		return
	}
	codeLen := e.CodeLen()
	ip := int64(e.IP())
	target := (ip + int64(action.Offset)) % int64(codeLen)
	if target < 0 {
		target += int64(codeLen)
	}
	e.SetIP(int(target))
}
