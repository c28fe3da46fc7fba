package session

import (
	"errors"

	"github.com/ezrec/jc62/translate"
)

var f = translate.From

var (
	ErrProgramTooLong = errors.New(f("program too long"))
)

// ErrRuntime is a run that stopped early, at a source line of the listing.
type ErrRuntime struct {
	LineNo int    // Source line of the next instruction, 0 if none.
	Line   string // Program text of the next instruction.
	Err    error
}

func (err *ErrRuntime) Error() string {
	if len(err.Line) == 0 {
		return f("line %d %v", err.LineNo, err.Err)
	}
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
