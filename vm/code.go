package vm

import (
	"encoding/binary"
	"fmt"
)

const (
	CODE_SIZE    = 5  // Bytes per instruction word.
	OPCODE_BITS  = 7  // Bits of the opcode field (A).
	OPERAND_BITS = 26 // Encodable bits of the operand field (B).

	OPCODE_MASK = (1 << OPCODE_BITS) - 1
	OPERAND_MAX = (1 << OPERAND_BITS) - 1
)

// Code is a single decoded instruction: a 7-bit opcode and its operand.
//
// A decoded operand may exceed OPERAND_MAX - the decoder takes all the
// bits above the opcode field, bounded only by the 5-byte word. The
// encoder is the only range gate.
type Code struct {
	Op      Op
	Operand int64
}

// MakeCode builds an instruction from an opcode and operand, checking
// both against their encodable ranges.
func MakeCode(op Op, operand int64) (code Code, err error) {
	if op < 0 || op > OPCODE_MASK {
		err = ErrOpcodeRange(op)
		return
	}
	if operand < 0 || operand > OPERAND_MAX {
		err = ErrOperandRange(operand)
		return
	}

	code = Code{Op: op, Operand: operand}

	return
}

// Bytes renders the instruction as a 5-byte little-endian word:
// value = opcode | operand<<7.
func (code Code) Bytes() (word [CODE_SIZE]byte) {
	value := uint64(code.Op) | (uint64(code.Operand) << OPCODE_BITS)

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	copy(word[:], buf[:CODE_SIZE])

	return
}

// Decode reinterprets a 5-byte little-endian word as an instruction.
// The opcode field must be a member of the instruction set; the
// operand is taken unmasked from the remaining bits.
func Decode(word []byte) (code Code, err error) {
	if len(word) != CODE_SIZE {
		err = ErrCodeLength(len(word))
		return
	}

	var buf [8]byte
	copy(buf[:], word)
	value := binary.LittleEndian.Uint64(buf[:])

	op := Op(value & OPCODE_MASK)
	if !op.Valid() {
		err = ErrOpcodeUnknown(op)
		return
	}

	code = Code{Op: op, Operand: int64(value >> OPCODE_BITS)}

	return
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	return fmt.Sprintf("%v; %v", code.Op, code.Operand)
}
