package vm

import (
	"fmt"
	"iter"
	"maps"
)

const (
	DATA_SIZE = 2048 // Default data memory cells.
)

var _vm_defines = map[string]string{
	"DATA_SIZE": fmt.Sprintf("%v", DATA_SIZE),
	"CODE_SIZE": fmt.Sprintf("%v", CODE_SIZE),
}

// Memory is the machine state of a single run: flat data memory,
// instruction pointer, and accumulator.
//
// Data cells and the accumulator are 64-bit signed integers; decoded
// operands are at most 33 bits, so a load never truncates.
type Memory struct {
	Data  []int64 // Flat data memory, addressable 0..len(Data)-1.
	Stack Stack   // Vestigial; no opcode touches it. Kept for dump parity.
	Ip    int     // Instruction pointer, counted in instructions.
	Acc   int64   // Accumulator register.
}

// NewMemory creates machine state with the default data memory size.
func NewMemory() (mem *Memory) {
	mem = &Memory{
		Data: make([]int64, DATA_SIZE),
	}

	return
}

// Defines for the machine
func (mem *Memory) Defines() iter.Seq2[string, string] {
	return maps.All(_vm_defines)
}

// Reset clears the machine state for a fresh run.
func (mem *Memory) Reset() {
	clear(mem.Data)
	mem.Stack.Reset()
	mem.Ip = 0
	mem.Acc = 0
}

// Read returns the cell at the given data memory address. Addresses
// outside 0..len(Data)-1 are an error, not wraparound.
func (mem *Memory) Read(address int64) (value int64, err error) {
	if address < 0 || address >= int64(len(mem.Data)) {
		err = ErrAddressRange(address)
		return
	}

	value = mem.Data[address]

	return
}

// Write stores a value at the given data memory address, with the
// same bounds rule as Read.
func (mem *Memory) Write(address int64, value int64) (err error) {
	if address < 0 || address >= int64(len(mem.Data)) {
		err = ErrAddressRange(address)
		return
	}

	mem.Data[address] = value

	return
}
