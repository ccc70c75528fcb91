package vm

import (
	"fmt"
	"log"
)

// Vm drives the fetch-decode-execute loop over an assembled byte
// stream.
type Vm struct {
	Verbose bool    // If set, logs each executed instruction.
	Memory  *Memory // Machine state, created fresh per Vm.
}

// NewVm creates a machine with fresh state.
func NewVm() (vm *Vm) {
	vm = &Vm{
		Memory: NewMemory(),
	}

	return
}

// Execute executes a single decoded instruction against machine
// state. The instruction pointer is not advanced here; the loop
// driver owns it.
func (vm *Vm) Execute(code Code) (err error) {
	mem := vm.Memory

	switch code.Op {
	case OP_LOAD_CONST:
		mem.Acc = code.Operand
	case OP_READ_VALUE:
		var value int64
		value, err = mem.Read(code.Operand)
		if err != nil {
			return
		}
		mem.Acc = value
	case OP_WRITE_VALUE:
		err = mem.Write(code.Operand, mem.Acc)
	case OP_LESS:
		// The stored cell is the left-hand side, the accumulator
		// the right-hand side. Do not swap.
		var lhs int64
		lhs, err = mem.Read(code.Operand)
		if err != nil {
			return
		}
		result := int64(0)
		if lhs < mem.Acc {
			result = 1
		}
		err = mem.Write(code.Operand, result)
	default:
		// Decode already rejects unknown opcodes; defend anyway.
		err = ErrOpcodeUnknown(code.Op)
	}

	return
}

// Run partitions the byte stream into consecutive 5-byte words and
// executes them in order, collecting a trace entry per instruction
// plus a final summary.
//
// The instruction count is len(bytecode)/5: a trailing fragment that
// does not form a full word is never reached and never rejected.
//
// Decode and memory faults halt the loop and are folded into the
// trace; the halting fault is also returned (nil on normal
// termination) so callers can inspect it without parsing trace text.
func (vm *Vm) Run(bytecode []byte) (trace []string, fault error) {
	mem := vm.Memory
	count := len(bytecode) / CODE_SIZE

	emit := func(entry string) {
		if vm.Verbose {
			log.Print(entry)
		}
		trace = append(trace, entry)
	}

	emit(fmt.Sprintf("[INFO] Program started. Total instructions: %d", count))

	for mem.Ip < count {
		at := mem.Ip

		code, err := Decode(bytecode[at*CODE_SIZE : (at+1)*CODE_SIZE])
		if err != nil {
			fault = err
			emit(fmt.Sprintf("[RUNTIME ERROR] At address %d: %v", at, err))
			break
		}

		emit(fmt.Sprintf("[%03d] Executing: %-12v | B (operand): %d | ACC=%d",
			at, code.Op, code.Operand, mem.Acc))

		err = vm.Execute(code)
		if err != nil {
			fault = err
			emit(fmt.Sprintf("[RUNTIME ERROR] At address %d: %v", at, err))
			break
		}

		mem.Ip = at + 1
	}

	snap := mem.Data
	if len(snap) > 16 {
		snap = snap[:16]
	}

	emit(fmt.Sprintf("\n--- Program run finished at IP=%d ---", mem.Ip))
	emit(fmt.Sprintf("Final ACC: %d", mem.Acc))
	emit(fmt.Sprintf("Memory (first 16 cells): %v", snap))

	return
}
