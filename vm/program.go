package vm

import (
	"fmt"
)

// Entry is a single IR element: one source line's mnemonic and
// integer argument.
type Entry struct {
	LineNo   int
	Mnemonic string
	Arg      int64
}

// Program is the intermediate representation of an assembled source:
// an ordered list of (mnemonic, argument) entries. Entry order is
// execution order.
type Program struct {
	Entries []Entry
}

// Debug maps an instruction index back to its IR entry, or nil if the
// index is outside the program.
func (prog *Program) Debug(ip int) (entry *Entry) {
	if ip >= 0 && ip < len(prog.Entries) {
		entry = &prog.Entries[ip]
	}

	return
}

// Binary lowers the full IR to the binary instruction stream: the
// concatenation of all 5-byte words in entry order, with no padding
// and no header. Lowering is all-or-nothing.
func (prog *Program) Binary() (bytecode []byte, err error) {
	for _, entry := range prog.Entries {
		op, ok := OpByName(entry.Mnemonic)
		if !ok {
			err = &ErrSyntax{
				LineNo: entry.LineNo,
				Line:   fmt.Sprintf("%v; %v", entry.Mnemonic, entry.Arg),
				Err:    ErrMnemonicUnknown(entry.Mnemonic),
			}
			return
		}

		var code Code
		code, err = MakeCode(op, entry.Arg)
		if err != nil {
			err = &ErrSyntax{
				LineNo: entry.LineNo,
				Line:   fmt.Sprintf("%v; %v", entry.Mnemonic, entry.Arg),
				Err:    err,
			}
			return
		}

		word := code.Bytes()
		bytecode = append(bytecode, word[:]...)
	}

	return
}
