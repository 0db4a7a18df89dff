package rpn

import (
	"errors"
	"fmt"
)

var (
	ErrStackUnderflow        = errors.New("stack underflow")
	ErrNameNotFound          = errors.New("name not found")
	ErrBadNumberParse        = errors.New("bad number parse")
	ErrBadWordDefinitionForm = errors.New("bad word definition form")
	ErrDivisionByZero        = errors.New("division by zero")
	ErrExpansionTooDeep      = errors.New("word expansion too deep")

	// ErrBye is returned by Eval when the line asked to end the session.
	// It is a control signal rather than a failure; hosts should check for it
	// with errors.Is before treating an error as a user mistake.
	ErrBye = errors.New("bye")
)

// TokenError annotates an evaluation failure with the token that caused it.
type TokenError struct {
	Token string
	Err   error
}

func (te TokenError) Error() string { return fmt.Sprintf("%v: %q", te.Err, te.Token) }
func (te TokenError) Unwrap() error { return te.Err }

// depthError records how deep expansion had gone when the limit was hit.
type depthError struct {
	word  string
	depth int
}

func (de depthError) Error() string {
	return fmt.Sprintf("%v expanding %q at depth %v", ErrExpansionTooDeep, de.word, de.depth)
}

func (de depthError) Unwrap() error { return ErrExpansionTooDeep }
