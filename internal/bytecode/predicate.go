package bytecode

// PredicateKind discriminates the closed set of predicate shapes a
// decoded instruction can carry.
type PredicateKind uint8

const (
	PredUnconditional PredicateKind = iota
	PredEq
	PredNeq
	PredGt
	PredLt
	PredGe
	PredLe
	PredSurroundingEq
	PredSurroundingNeq
	PredSurroundingGt
	PredSurroundingLt
	PredSurroundingGe
	PredSurroundingLe
)

// Predicate is the "event" half of an instruction: a register-register
// comparison, a neighbourhood-count comparison, or Unconditional.
type Predicate struct {
	Kind    PredicateKind
	LHS     Selector
	RHS     Selector
	Operand RegOrConst // used by the SurroundingXxx variants
}

// Eval evaluates the predicate against an entity's registers and its
// neighbourhood occupancy count. It never mutates state.
func Eval(p Predicate, regs RegisterFile, neighborCount uint64) bool {
	switch p.Kind {
	case PredUnconditional:
		return true
	case PredEq:
		return regs.Read(p.LHS) == regs.Read(p.RHS)
	case PredNeq:
		return regs.Read(p.LHS) != regs.Read(p.RHS)
	case PredGt:
		return regs.Read(p.LHS) > regs.Read(p.RHS)
	case PredLt:
		return regs.Read(p.LHS) < regs.Read(p.RHS)
	case PredGe:
		return regs.Read(p.LHS) >= regs.Read(p.RHS)
	case PredLe:
		return regs.Read(p.LHS) <= regs.Read(p.RHS)
	case PredSurroundingEq:
		return regs.ReadRC(p.Operand) == neighborCount
	case PredSurroundingNeq:
		return regs.ReadRC(p.Operand) != neighborCount
	case PredSurroundingGt:
		return regs.ReadRC(p.Operand) > neighborCount
	case PredSurroundingLt:
		return regs.ReadRC(p.Operand) < neighborCount
	case PredSurroundingGe:
		return regs.ReadRC(p.Operand) >= neighborCount
	case PredSurroundingLe:
		return regs.ReadRC(p.Operand) <= neighborCount
	default:
		return true
	}
}
