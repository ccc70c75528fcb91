// Package runner ties the assembler, interpreter, and memory dump
// together for embedding shells (desktop GUI, CLI, tests).
package runner

import (
	"fmt"
	"iter"
	"maps"
	"strings"

	"github.com/ezrec/uvm/dump"
	"github.com/ezrec/uvm/internal"
	"github.com/ezrec/uvm/vm"
)

const (
	DUMP_FIRST = 0  // First data memory cell in the report dump.
	DUMP_LAST  = 31 // Last data memory cell in the report dump.
)

var _runner_defines = map[string]string{
	"DUMP_FIRST": fmt.Sprintf("%v", DUMP_FIRST),
	"DUMP_LAST":  fmt.Sprintf("%v", DUMP_LAST),
}

// Runner state: assembler + machine + the program being run.
type Runner struct {
	Verbose bool          // If set, enables verbose logging.
	Asm     *vm.Assembler // Assembler instance with runner predefines.
	Vm      *vm.Vm        // Machine; state is reset per Execute.
	Program *vm.Program   // IR of the most recent Assemble.
}

// NewRunner creates a runner and feeds its defines to the assembler
// as predefined equates.
func NewRunner() (run *Runner) {
	run = &Runner{
		Asm: &vm.Assembler{},
		Vm:  vm.NewVm(),
	}

	for attr, val := range run.Defines() {
		run.Asm.Predefine(attr, val)
	}

	return
}

// Defines returns an iterator over all of the defines
func (run *Runner) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_runner_defines),
		run.Vm.Memory.Defines(),
	)
}

// Assemble parses the source text and lowers it to bytecode. The IR
// is retained on the runner for Debug mapping.
func (run *Runner) Assemble(source string) (bytecode []byte, err error) {
	run.Asm.Verbose = run.Verbose

	prog, err := run.Asm.Parse(strings.NewReader(source))
	if err != nil {
		return
	}

	bytecode, err = prog.Binary()
	if err != nil {
		return
	}

	run.Program = prog

	return
}

// Execute runs bytecode against fresh machine state and returns the
// complete trace. A runtime fault is returned annotated with the
// source line it halted on, when the IR for the bytecode is known.
func (run *Runner) Execute(bytecode []byte) (trace []string, err error) {
	run.Vm.Verbose = run.Verbose
	run.Vm.Memory.Reset()

	trace, fault := run.Vm.Run(bytecode)
	if fault != nil {
		err = fault
		if run.Program != nil {
			if entry := run.Program.Debug(run.Vm.Memory.Ip); entry != nil {
				err = &ErrRuntime{LineNo: entry.LineNo, Err: fault}
			}
		}
	}

	return
}

// Report assembles and executes source text and returns the combined
// text report: generated bytecode in hex, the execution trace, and an
// XML dump of data memory cells DUMP_FIRST..DUMP_LAST. Assembly
// failures and runtime faults are folded into the report; an empty
// source is a soft warning, not an error.
func (run *Runner) Report(source string) (report string) {
	source = strings.TrimSpace(source)
	if len(source) == 0 {
		return f("[WARN] Source text is empty - nothing to execute.")
	}

	var parts []string

	bytecode, err := run.Assemble(source)
	if err != nil {
		return f("[ASM ERROR] %v", err)
	}

	hex := make([]string, 0, len(bytecode))
	for _, b := range bytecode {
		hex = append(hex, fmt.Sprintf("0x%02X", b))
	}
	parts = append(parts, "--- Generated bytecode ---")
	parts = append(parts, strings.Join(hex, " "))

	trace, _ := run.Execute(bytecode)
	parts = append(parts, "\n--- Execution log ---")
	parts = append(parts, strings.Join(trace, "\n"))

	text, err := dump.New(run.Vm.Memory, DUMP_FIRST, DUMP_LAST).String()
	if err != nil {
		text = f("[DUMP ERROR] %v", err)
	}
	parts = append(parts, fmt.Sprintf("\n--- Memory dump (XML, addresses %d..%d) ---", DUMP_FIRST, DUMP_LAST))
	parts = append(parts, text)

	return strings.Join(parts, "\n")
}
