package runner

import (
	"github.com/ezrec/uvm/translate"
)

var f = translate.From

// ErrRuntime indicates the source location of a runtime fault.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
