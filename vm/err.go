package vm

import (
	"errors"

	"github.com/ezrec/uvm/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
)

// ErrArgumentMissing names a mnemonic that is missing its integer argument.
type ErrArgumentMissing string

func (err ErrArgumentMissing) Error() string {
	return f("command '%v' requires an argument (format: '%v; number')", string(err), string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("unknown mnemonic '%v'", string(err))
}

// ErrSyntax wraps an assembly error with its source location.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// Encoding errors

type ErrOpcodeRange Op

func (err ErrOpcodeRange) Error() string {
	return f("opcode %d does not fit in %d bits", int(err), OPCODE_BITS)
}

type ErrOperandRange int64

func (err ErrOperandRange) Error() string {
	return f("operand %d does not fit in %d bits", int64(err), OPERAND_BITS)
}

// Decoding errors

type ErrCodeLength int

func (err ErrCodeLength) Error() string {
	return f("expected %d instruction bytes, got %d", CODE_SIZE, int(err))
}

type ErrOpcodeUnknown Op

func (err ErrOpcodeUnknown) Error() string {
	return f("unknown opcode (field A): %d", int(err))
}

// Runtime errors

type ErrAddressRange int64

func (err ErrAddressRange) Error() string {
	return f("address %d outside of data memory", int64(err))
}
