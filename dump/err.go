package dump

import (
	"github.com/ezrec/uvm/translate"
)

var f = translate.From

// ErrRangeSyntax reports a malformed "first:last" range argument.
type ErrRangeSyntax string

func (err ErrRangeSyntax) Error() string {
	return f("'%v' is not a START:END address range", string(err))
}
