package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezrec/uvm/dump"
	"github.com/ezrec/uvm/runner"
)

func main() {
	var compile string
	var binfile string
	var save bool
	var dumpfile string
	var dumprange string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".uvm source file to assemble")
	flag.StringVar(&binfile, "b", "", "bytecode file (written with -s, read when executing without -c)")
	flag.BoolVar(&save, "s", false, "Save bytecode, do not execute")
	flag.StringVar(&dumpfile, "d", "", "Memory dump XML output file")
	flag.StringVar(&dumprange, "r", "0:31", "Memory dump address range (START:END)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	first, last, err := dump.ParseRange(dumprange)
	if err != nil {
		log.Fatalf("%v: %v", dumprange, err)
	}

	run := runner.NewRunner()
	run.Verbose = verbose

	var bytecode []byte

	// Assemble a new instruction stream.
	if len(compile) != 0 {
		source, err := os.ReadFile(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		bytecode, err = run.Assemble(string(source))
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		if save {
			if len(binfile) == 0 {
				log.Fatalf("%v: -s requires a bytecode file (-b)", os.Args[0])
			}
			err = os.WriteFile(binfile, bytecode, 0o644)
			if err != nil {
				log.Fatalf("%v: %v", binfile, err)
			}
			return
		}
	} else {
		if len(binfile) == 0 {
			log.Fatalf("%v: nothing to do: need a source (-c) or bytecode (-b) file", os.Args[0])
		}
		bytecode, err = os.ReadFile(binfile)
		if err != nil {
			log.Fatalf("%v: %v", binfile, err)
		}
	}

	trace, _ := run.Execute(bytecode)
	fmt.Println(strings.Join(trace, "\n"))

	if len(dumpfile) != 0 {
		ouf, err := os.Create(dumpfile)
		if err != nil {
			log.Fatalf("%v: %v", dumpfile, err)
		}
		defer ouf.Close()

		_, err = dump.New(run.Vm.Memory, first, last).WriteTo(ouf)
		if err != nil {
			log.Fatalf("%v: %v", dumpfile, err)
		}
	}
}
