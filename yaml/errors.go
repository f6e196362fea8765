package yaml

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies a parse/schema failure.
type ErrorKind uint8

const (
	ErrUnexpectedToken ErrorKind = iota
	ErrUnexpectedEndOfStream
	ErrUnknownAlias
	ErrInvalidSyntax
	ErrInvalidBool
	ErrInvalidInt
	ErrInvalidFloat
	ErrInvalidTag
)

// String returns the kind's taxonomy name.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnexpectedToken:
		return "UnexpectedToken"
	case ErrUnexpectedEndOfStream:
		return "UnexpectedEndOfStream"
	case ErrUnknownAlias:
		return "UnknownAlias"
	case ErrInvalidSyntax:
		return "InvalidSyntax"
	case ErrInvalidBool:
		return "InvalidBool"
	case ErrInvalidInt:
		return "InvalidInt"
	case ErrInvalidFloat:
		return "InvalidFloat"
	case ErrInvalidTag:
		return "InvalidTag"
	default:
		return "Unknown"
	}
}

// Position is a 1-based line/column source location.
type Position struct {
	Line   int
	Column int
}

// String renders "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Error is the concrete error type returned by every parser and
// schema-resolution failure. Pos holds the line/column of the offending
// token for errors raised while parsing a token; it is the zero
// Position for errors raised without one (ResolveScalar called
// directly, Value accessors, a non-scalar explicit mapping key).
type Error struct {
	Kind ErrorKind
	Pos  Position
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Msg)
}

// errorf constructs an *Error and immediately wraps it with a stack
// trace via pkg/errors, so every failure surfaced across a public
// boundary carries both a taxonomy kind and a trace.
func errorf(kind ErrorKind, pos Position, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

// AsError unwraps err to the innermost *Error, if any, following
// pkg/errors' Cause chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// withPosition rewrites the Position of an *Error, if err wraps one.
// Used by the parser to attach a token's real position to an error
// raised by the schema resolver, which knows only the lexeme.
func withPosition(err error, pos Position) error {
	e, ok := AsError(err)
	if !ok {
		return err
	}
	rewrapped := *e
	rewrapped.Pos = pos
	return errors.WithStack(&rewrapped)
}
