package vm

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Entries))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal(fmt.Sprintf("%v", DATA_SIZE), asm.Equate["DATA_SIZE"])
	assert.Equal(fmt.Sprintf("%v", CODE_SIZE), asm.Equate["CODE_SIZE"])
}

func TestAssembler_Program(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	source := "load_const; 381\nread_value; 435\nwrite_value; 308\nless; 989\n"

	prog, err := asm.Parse(strings.NewReader(source))
	assert.NoError(err)

	expected := []Entry{
		{1, "load_const", 381},
		{2, "read_value", 435},
		{3, "write_value", 308},
		{4, "less", 989},
	}
	assert.Equal(expected, prog.Entries)

	bytecode, err := prog.Binary()
	assert.NoError(err)
	assert.Equal([]byte{
		0x8E, 0xBE, 0x00, 0x00, 0x00,
		0x8B, 0xD9, 0x00, 0x00, 0x00,
		0x5E, 0x9A, 0x00, 0x00, 0x00,
		0xC5, 0xEE, 0x01, 0x00, 0x00,
	}, bytecode)
}

func TestAssembler_CommentsAndWhitespace(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	loose, err := asm.Parse(strings.NewReader("  load_const; 381  # comment"))
	assert.NoError(err)

	tight, err := asm.Parse(strings.NewReader("load_const;381"))
	assert.NoError(err)

	assert.Equal(tight.Entries, loose.Entries)

	blank, err := asm.Parse(strings.NewReader("\n# only a comment\n\n   \nless; 1\n"))
	assert.NoError(err)
	assert.Equal(1, len(blank.Entries))
	assert.Equal(Entry{5, "less", 1}, blank.Entries[0])
}

func TestAssembler_NegativeArgument(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// A negative argument parses into the IR; it is the encoder's
	// range check that rejects it at lowering time.
	prog, err := asm.Parse(strings.NewReader("load_const; -1"))
	assert.NoError(err)
	assert.Equal(int64(-1), prog.Entries[0].Arg)

	_, err = prog.Binary()
	var eo ErrOperandRange
	assert.True(errors.As(err, &eo))
}

func TestAssembler_Equ(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		".equ LIMIT 64",
		"load_const; LIMIT",
		"load_const; $(LIMIT * 2)",
		"write_value; $(DATA_SIZE - 1)",
		".equ DOUBLED $(2 * LIMIT + LIMIT)",
		"read_value; DOUBLED",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	expected := []Entry{
		{2, "load_const", 64},
		{3, "load_const", 128},
		{4, "write_value", DATA_SIZE - 1},
		{6, "read_value", 192},
	}
	assert.Equal(expected, prog.Entries)
}

func TestAssembler_Lineno(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"# header comment",
		"",
		"load_const; $(LINENO)",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal([]Entry{{3, "load_const", 3}}, prog.Entries)
}

func TestAssembler_Predefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("BASE", "10")

	prog, err := asm.Parse(strings.NewReader("read_value; BASE\nless; $(BASE + 1)\n"))
	assert.NoError(err)

	expected := []Entry{
		{1, "read_value", 10},
		{2, "less", 11},
	}
	assert.Equal(expected, prog.Entries)
}

func TestAssembler_UnknownMnemonic(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Any mnemonic parses into the IR; lowering rejects ones outside
	// the instruction set.
	prog, err := asm.Parse(strings.NewReader("load_const; 1\nhalt; 0\n"))
	assert.NoError(err)
	assert.Equal(2, len(prog.Entries))

	bytecode, err := prog.Binary()
	assert.Nil(bytecode)

	var em ErrMnemonicUnknown
	assert.True(errors.As(err, &em))
	assert.Equal("halt", string(em))

	var se *ErrSyntax
	assert.True(errors.As(err, &se))
	assert.Equal(2, se.LineNo)
}

func TestAssembler_ErrSyntax(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Various syntax errors
	table := [](struct {
		prog string
		line int
	}){
		{"load_const", 1},
		{"load_const;", 1},
		{"load_const;   ", 1},
		{"load_const; abc", 1},
		{"load_const; 1.5", 1},
		{"load_const; 1\nread_value\n", 2},
		{"load_const; 0x10", 1},
		{".equ", 1},
		{".equ A", 1},
		{".equ A 1 2", 1},
		{".equ A 1\n.equ A 2\n", 2},
		{"load_const; $(\"aaa\")", 1},
		{"load_const; $(nothing)", 1},
		{"load_const; $(more(\"aaa\"))", 1},
		{"less; # no argument", 1},
	}

	for _, entry := range table {
		_, err := asm.Parse(strings.NewReader(entry.prog))
		var se *ErrSyntax
		assert.NotNil(err, entry.prog)
		if err != nil {
			assert.True(errors.As(err, &se), entry.prog)
			assert.Equal(entry.line, se.LineNo, entry.prog)
		}
	}
}

func TestAssembler_ArgumentMissing(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := asm.Parse(strings.NewReader("write_value"))
	var ea ErrArgumentMissing
	assert.True(errors.As(err, &ea))
	assert.Equal("write_value", string(ea))
}
