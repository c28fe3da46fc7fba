package machine

import (
	"errors"

	"github.com/ezrec/jc62/memory"
	"github.com/ezrec/jc62/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrProgramCompleted   = errors.New(f("program completed"))
	ErrStepBudgetExceeded = errors.New(f("step budget exceeded"))
	ErrInvalidAddress     = memory.ErrAddressInvalid

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrDataSyntax         = errors.New(f(".data syntax"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrOperandExtra       = errors.New(f("excessive operands"))
	ErrTargetInvalid      = errors.New(f("target invalid"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
