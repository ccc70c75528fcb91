package vm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":    "0",
	"DATA_SIZE": fmt.Sprintf("%v", DATA_SIZE),
	"CODE_SIZE": fmt.Sprintf("%v", CODE_SIZE),
}

// Assembler is a single pass assembler for the UVM instruction set.
type Assembler struct {
	Verbose bool    // If set, verbosely logs the assembler actions.
	Entries []Entry // Parsed intermediate representation, in line order.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		value64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(value64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine parses a single source line into at most one IR entry.
func (asm *Assembler) parseLine(line string, lineno int) (err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Strip the trailing comment.
	if n := strings.Index(line, "#"); n >= 0 {
		line = line[:n]
	}

	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return
	}

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	// .equ CONST VALUE
	if strings.HasPrefix(line, ".equ") {
		words := strings.Fields(line)
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		return
	}

	// "mnemonic; argument"
	mnemonic, arg, found := strings.Cut(line, ";")
	mnemonic = strings.TrimSpace(mnemonic)
	arg = strings.TrimSpace(arg)
	if !found || len(arg) == 0 {
		err = ErrArgumentMissing(mnemonic)
		return
	}

	// Equates substitute in the argument field only.
	equate, ok := asm.Equate[arg]
	if ok {
		arg = equate
	}

	value, perr := strconv.ParseInt(arg, 10, 64)
	if perr != nil {
		err = ErrParseNumber(arg)
		return
	}

	asm.Entries = append(asm.Entries, Entry{LineNo: lineno, Mnemonic: mnemonic, Arg: value})

	return
}

// Parse parses an input stream into a Program containing IR entries.
//
// Assembly is all-or-nothing: the first failing line aborts the parse
// and no Program is returned. An empty input is not an error; it
// yields an empty Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Entries = asm.Entries[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = text
		err = asm.parseLine(text, lineno)
		if err != nil {
			return
		}
	}

	prog = &Program{
		Entries: slices.Clone(asm.Entries),
	}

	return
}
