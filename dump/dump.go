// Package dump renders a read-only XML projection of machine state:
// the stack contents, the IP and ACC registers, and a contiguous
// address range of data memory. It is a reporting concern only and
// has no effect on execution.
package dump

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/uvm/vm"
)

// Cell is one data memory cell in the projection.
type Cell struct {
	Address int   `xml:"address,attr"`
	Value   int64 `xml:",chardata"`
}

// Registers holds the register snapshot.
type Registers struct {
	Ip  int   `xml:"ip"`
	Acc int64 `xml:"acc"`
}

// Dump is the <memory_dump> document.
type Dump struct {
	XMLName   xml.Name  `xml:"memory_dump"`
	Stack     string    `xml:"stack"`
	Registers Registers `xml:"registers"`
	Cells     []Cell    `xml:"data_memory>cell"`
}

// New projects machine state over the inclusive address range
// [first, last], clamped to the data memory bounds.
func New(mem *vm.Memory, first, last int) (d *Dump) {
	stack := make([]string, 0, len(mem.Stack.Data))
	for _, value := range mem.Stack.Data {
		stack = append(stack, fmt.Sprintf("%v", value))
	}

	d = &Dump{
		Stack: strings.Join(stack, ", "),
		Registers: Registers{
			Ip:  mem.Ip,
			Acc: mem.Acc,
		},
	}

	first = max(0, first)
	last = min(last, len(mem.Data)-1)
	for addr := first; addr <= last; addr++ {
		d.Cells = append(d.Cells, Cell{Address: addr, Value: mem.Data[addr]})
	}

	return
}

// WriteTo writes the projection as an XML document with declaration.
func (d *Dump) WriteTo(w io.Writer) (n int64, err error) {
	text, err := d.String()
	if err != nil {
		return
	}

	written, err := io.WriteString(w, text)
	n = int64(written)

	return
}

// String renders the projection as an XML document with declaration.
func (d *Dump) String() (text string, err error) {
	body, err := xml.MarshalIndent(d, "", "  ")
	if err != nil {
		return
	}

	text = xml.Header + string(body) + "\n"

	return
}

// ParseRange parses a "first:last" inclusive address range argument.
func ParseRange(s string) (first, last int, err error) {
	a, b, found := strings.Cut(s, ":")
	if !found {
		err = ErrRangeSyntax(s)
		return
	}

	first, ferr := strconv.Atoi(strings.TrimSpace(a))
	if ferr != nil {
		err = ErrRangeSyntax(s)
		return
	}

	last, lerr := strconv.Atoi(strings.TrimSpace(b))
	if lerr != nil {
		err = ErrRangeSyntax(s)
		return
	}

	return
}
