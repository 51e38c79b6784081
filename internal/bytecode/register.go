// Package bytecode implements the entity instruction set: the register
// file, the 32-bit instruction decoder, the predicate evaluator and the
// action executor. Nothing in this package touches the grid or the
// entity vector directly — it is handed an Entity and a Host and works
// purely through those interfaces.
package bytecode

// Selector names one of the ten addressable registers: the two 64-bit
// long registers and the eight byte lanes aliased over them.
type Selector uint8

const (
	Long0 Selector = iota
	Long1
	Byte0_0
	Byte0_1
	Byte0_2
	Byte0_3
	Byte1_0
	Byte1_1
	Byte1_2
	Byte1_3
)

// byteRegisterTable maps the 3-bit operand-rule encoding (000..111) onto
// a Selector, long0's four lanes followed by long1's.
var byteRegisterTable = [8]Selector{
	Byte0_0, Byte0_1, Byte0_2, Byte0_3,
	Byte1_0, Byte1_1, Byte1_2, Byte1_3,
}

// ByteRegister resolves a 3-bit lane index (0..7) to its Selector.
func ByteRegister(idx uint8) Selector {
	return byteRegisterTable[idx&0x7]
}

// RegOrConst is a sum of a register selector or an 8-bit zero-extended
// constant.
type RegOrConst struct {
	isConst bool
	reg     Selector
	konst   uint8
}

// Reg builds a RegOrConst naming a register.
func Reg(sel Selector) RegOrConst { return RegOrConst{reg: sel} }

// Const builds a RegOrConst naming a zero-extended 8-bit constant.
func Const(v uint8) RegOrConst { return RegOrConst{isConst: true, konst: v} }

// RegisterFile is the pair of 64-bit words an entity carries, each
// aliasable as four little-endian byte lanes.
type RegisterFile struct {
	long0 uint64
	long1 uint64
}

func NewRegisterFile(long0, long1 uint64) RegisterFile {
	/*
	   NewRegisterFile builds a register file with the given initial long
	   values. The eight byte lanes are not set independently; they read
	   back as slices of long0/long1 from the moment the file exists.
	*/

	return RegisterFile{long0: long0, long1: long1}
}

// ------------------------------------------------------------------------------
// Read / write
// ------------------------------------------------------------------------------

// Read returns the zero-extended value named by sel.
func (r RegisterFile) Read(sel Selector) uint64 {
	switch sel {
	case Long0:
		return r.long0
	case Long1:
		return r.long1
	case Byte0_0:
		return uint64(byte(r.long0))
	case Byte0_1:
		return uint64(byte(r.long0 >> 8))
	case Byte0_2:
		return uint64(byte(r.long0 >> 16))
	case Byte0_3:
		return uint64(byte(r.long0 >> 24))
	case Byte1_0:
		return uint64(byte(r.long1))
	case Byte1_1:
		return uint64(byte(r.long1 >> 8))
	case Byte1_2:
		return uint64(byte(r.long1 >> 16))
	case Byte1_3:
		return uint64(byte(r.long1 >> 24))
	default:
		return 0
	}
}

// Write stores v into the lane or long named by sel. Byte lanes take
// v mod 256 and leave the other three lanes of their long untouched;
// longs take v wholesale.
func (r *RegisterFile) Write(sel Selector, v uint64) {
	switch sel {
	case Long0:
		r.long0 = v
	case Long1:
		r.long1 = v
	case Byte0_0:
		r.long0 = (r.long0 &^ 0xFF) | uint64(byte(v))
	case Byte0_1:
		r.long0 = (r.long0 &^ 0xFF00) | uint64(byte(v))<<8
	case Byte0_2:
		r.long0 = (r.long0 &^ 0xFF0000) | uint64(byte(v))<<16
	case Byte0_3:
		r.long0 = (r.long0 &^ 0xFF000000) | uint64(byte(v))<<24
	case Byte1_0:
		r.long1 = (r.long1 &^ 0xFF) | uint64(byte(v))
	case Byte1_1:
		r.long1 = (r.long1 &^ 0xFF00) | uint64(byte(v))<<8
	case Byte1_2:
		r.long1 = (r.long1 &^ 0xFF0000) | uint64(byte(v))<<16
	case Byte1_3:
		r.long1 = (r.long1 &^ 0xFF000000) | uint64(byte(v))<<24
	}
}

// ReadRC resolves a RegOrConst against this register file, zero-extending
// a constant operand.
func (r RegisterFile) ReadRC(rc RegOrConst) uint64 {
	if rc.isConst {
		return uint64(rc.konst)
	}
	return r.Read(rc.reg)
}

// Long0 returns the raw LONG0 word, used by jump-predicate evaluation
// which always compares the two longs regardless of the instruction's
// own operand selection.
func (r RegisterFile) Long0() uint64 { return r.long0 }

// Long1 returns the raw LONG1 word.
func (r RegisterFile) Long1() uint64 { return r.long1 }
