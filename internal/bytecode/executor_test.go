package bytecode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeEntity and fakeHost are minimal test doubles standing in for the
// world package's Entity/World without creating an import cycle.
type fakeEntity struct {
	id      uint32
	x, y    uint32
	regs    RegisterFile
	ip      int
	codeLen int
}

func (e *fakeEntity) ID() uint32               { return e.id }
func (e *fakeEntity) Pos() (uint32, uint32)    { return e.x, e.y }
func (e *fakeEntity) Registers() *RegisterFile { return &e.regs }
func (e *fakeEntity) IP() int                  { return e.ip }
func (e *fakeEntity) SetIP(ip int)             { e.ip = ip }
func (e *fakeEntity) CodeLen() int             { return e.codeLen }

type fakeHost struct {
	width, height uint32
	occupied      map[[2]uint32]bool
	moved         bool
	calls         []uint64
}

func newFakeHost(w, h uint32) *fakeHost {
	return &fakeHost{width: w, height: h, occupied: map[[2]uint32]bool{}}
}

func (h *fakeHost) Dims() (uint32, uint32) { return h.width, h.height }

func (h *fakeHost) AttemptMove(entityID uint32, x, y uint32) bool {
	// out-of-bounds cells read as occupied, as in the world's grid.
	if x >= h.width || y >= h.height || h.occupied[[2]uint32{x, y}] {
		return false
	}
	h.moved = true
	return true
}

func (h *fakeHost) Invoke(callbackIndex uint64, entityID uint32) {
	h.calls = append(h.calls, callbackIndex)
}

func TestExecuteMoveRefusedWhenDestinationIsOutOfBounds(t *testing.T) {
	e := &fakeEntity{x: 0, y: 0, codeLen: 1}
	h := newFakeHost(1, 1)
	Execute(Action{Kind: ActMove, Operand: Reg(Long0)}, e, h)
	require.False(t, h.moved)
	require.Equal(t, uint32(0), e.x)
}

func TestExecuteMoveRefusedWhenDestinationOccupied(t *testing.T) {
	h := newFakeHost(2, 1)
	h.occupied[[2]uint32{1, 0}] = true
	a := &fakeEntity{id: 0, x: 0, y: 0, codeLen: 1}
	Execute(Action{Kind: ActMove, Operand: Const(0)}, a, h)
	require.False(t, h.moved)
}

func TestExecuteXchg(t *testing.T) {
	e := &fakeEntity{codeLen: 1}
	e.regs.Write(Long0, 0xAA)
	e.regs.Write(Long1, 0xBB)
	h := newFakeHost(1, 1)
	Execute(Action{Kind: ActBinOp, Op: OpXchg, Dst: Long0, Src: Reg(Long1)}, e, h)
	require.Equal(t, uint64(0xBB), e.regs.Read(Long0))
	require.Equal(t, uint64(0xAA), e.regs.Read(Long1))
}

func TestExecuteDivByZero(t *testing.T) {
	e := &fakeEntity{codeLen: 1}
	e.regs.Write(Long0, 10)
	h := newFakeHost(1, 1)
	Execute(Action{Kind: ActBinOp, Op: OpDiv, Dst: Long0, Src: Const(0)}, e, h)
	require.Equal(t, uint64(maxU64), e.regs.Read(Long0))
}

func TestExecuteMoveDivByZeroDirectionIsBottomRight(t *testing.T) {
	// MaxUint64 mod 8 == 7 == BottomRight.
	e := &fakeEntity{x: 1, y: 1, codeLen: 1}
	e.regs.Write(Long0, 10)
	h := newFakeHost(4, 4)
	Execute(Action{Kind: ActBinOp, Op: OpMoveDiv, Dst: Long0, Src: Const(0)}, e, h)
	require.True(t, h.moved)
	require.Equal(t, uint64(10), e.regs.Read(Long0), "MoveDiv must not store to Dst")
}

func TestExecuteJumpWrapsWithSignedModulus(t *testing.T) {
	// Jmp(Unconditional, -1) with ip == 0 wraps around to codeLen-1.
	e := &fakeEntity{ip: 0, codeLen: 4}
	Execute(Action{Kind: ActJmp, JumpKind: JumpUnconditional, Offset: -1}, e, newFakeHost(1, 1))
	require.Equal(t, 3, e.ip)
}

func TestExecuteJumpFalseLeavesIPUnchanged(t *testing.T) {
	e := &fakeEntity{ip: 2, codeLen: 4}
	e.regs.Write(Long0, 1)
	e.regs.Write(Long1, 2)
	Execute(Action{Kind: ActJmp, JumpKind: JumpR0Eq, Offset: 1}, e, newFakeHost(1, 1))
	require.Equal(t, 2, e.ip)
}

func TestExecuteCallPassesOperandValueToHost(t *testing.T) {
	e := &fakeEntity{codeLen: 1}
	h := newFakeHost(1, 1)
	Execute(Action{Kind: ActCall, Operand: Const(7)}, e, h)
	require.Equal(t, []uint64{7}, h.calls)
}

func TestJumpLtAndLeAreEquivalent(t *testing.T) {
	// R0Lt and R0Le both compute "<=" rather than giving Lt a strict form.
	require.True(t, jumpCondition(JumpR0Lt, 5, 5))
	require.False(t, jumpCondition(JumpR0Lt, 6, 5))
	require.Equal(t, jumpCondition(JumpR0Lt, 3, 5), jumpCondition(JumpR0Le, 3, 5))
}
