package vm

// Op is a 7-bit instruction opcode (field A of the instruction word).
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_READ_VALUE  = Op(11) // read_value
	OP_LOAD_CONST  = Op(14) // load_const
	OP_LESS        = Op(69) // less
	OP_WRITE_VALUE = Op(94) // write_value
)

// opMap maps assembler mnemonics to opcodes.
var opMap = map[string]Op{
	"load_const":  OP_LOAD_CONST,
	"read_value":  OP_READ_VALUE,
	"write_value": OP_WRITE_VALUE,
	"less":        OP_LESS,
}

// OpByName looks up an opcode by its assembler mnemonic.
func OpByName(mnemonic string) (op Op, ok bool) {
	op, ok = opMap[mnemonic]
	return
}

// Valid returns true if the opcode is a member of the instruction set.
func (op Op) Valid() bool {
	switch op {
	case OP_READ_VALUE, OP_LOAD_CONST, OP_LESS, OP_WRITE_VALUE:
		return true
	}
	return false
}
