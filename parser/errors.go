package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/lazy/lexer"
)

// ErrInvalid is returned when no alternative matches at a point where one is
// required, including when the current token is a lexical error.
var ErrInvalid = errors.New("invalid construct")

// ExpectedError is returned once a construct has started and a token it
// requires is missing.
type ExpectedError struct {
	What string
}

func (e *ExpectedError) Error() string {
	return "expected " + e.What
}

// SyntaxError is returned by the entry points. It carries the token the
// parser was looking at when it stopped.
type SyntaxError struct {
	Err   error
	Token lexer.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at offset %d (got %v)", e.Err, e.Token.Pos(), e.Token.Type())
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
