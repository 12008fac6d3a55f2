package program

import (
	"errors"

	"github.com/ezrec/dojo/translate"
)

var f = translate.From

var (
	ErrExpression = errors.New(f("not a list of cells"))
)

// ErrSyntax indicates the location of a parse error.
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

// ErrParseValue is a cell that is not a 32-bit integer.
type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a 32-bit integer", string(err))
}
