// Package vm implements the assembler and interpreter for the UVM
// teaching machine.
//
// The machine is a single-accumulator design with a flat data memory
// of 2048 cells. Instructions are fixed-width 5-byte little-endian
// words: the low 7 bits select the opcode, the remaining bits carry
// the operand (a constant or a data memory address).
//
// The assembler translates a line-oriented source format, one
// instruction per line ("mnemonic; argument"), into an intermediate
// representation and then into the binary instruction stream. It
// supports '#' trailing comments, .equ equates, and compile-time
// $() expression evaluation.
package vm
