package object

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the runtime errors arithmetic can produce. The
// kinds are deliberately distinguishable: division by zero and modulo
// by zero are separate kinds, not one kind with two messages.
type ErrorKind uint8

const (
	Overflow ErrorKind = iota
	DivisionByZero
	ModuloByZero
	TypeMismatch
	LengthMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case Overflow:
		return "OverflowError"
	case DivisionByZero:
		return "ZeroDivisionError"
	case ModuloByZero:
		return "ModuloByZeroError"
	case TypeMismatch:
		return "TypeError"
	case LengthMismatch:
		return "ValueError"
	default:
		return "Error"
	}
}

// Error is the runtime error type for the value system. All arithmetic
// errors are deterministic functions of their inputs and are surfaced
// immediately, never retried or swallowed.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Message
}

func NewError(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// NewDivisionByZero and NewModuloByZero mirror the two common factory
// cases; the messages are fixed so callers can rely on them.
func NewDivisionByZero() *Error {
	return &Error{Kind: DivisionByZero, Message: "division by zero"}
}

func NewModuloByZero() *Error {
	return &Error{Kind: ModuloByZero, Message: "modulo by zero"}
}

// KindOf extracts the ErrorKind from err, unwrapping as needed. The
// second result is false when err is not a value-system error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
