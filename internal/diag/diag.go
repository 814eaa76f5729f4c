// Package diag defines the runtime error taxonomy for the evaluator.
package diag

import (
	"errors"
	"fmt"

	"mint-lang/internal/span"
)

// Kind classifies an evaluation failure. Failures propagate unmodified
// through every enclosing evaluation; the driver distinguishes them by kind.
type Kind int

const (
	NameError     Kind = iota // unbound name anywhere in the scope chain
	OperatorError             // operator symbol missing from the dispatch tables
	ArityError                // fewer arguments than declared parameters
	TypeError                 // function value in number position, or vice versa
	InputError                // read could not obtain an integer
	DivideByZero
	StackOverflow // call depth exceeded the interpreter bound
)

func (k Kind) String() string {
	switch k {
	case NameError:
		return "NameError"
	case OperatorError:
		return "OperatorError"
	case ArityError:
		return "ArityError"
	case TypeError:
		return "TypeError"
	case InputError:
		return "InputError"
	case DivideByZero:
		return "DivideByZero"
	case StackOverflow:
		return "StackOverflow"
	default:
		return "unknown"
	}
}

// Error is an evaluation failure with a kind and an optional source span.
type Error struct {
	Kind    Kind
	Message string
	Span    span.Span
}

func (e *Error) Error() string {
	if e.Span.IsZero() {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Span.Start, e.Message)
}

// Newf creates an evaluation error of the given kind at the given span.
func Newf(kind Kind, s span.Span, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Span: s}
}

// KindOf extracts the failure kind from err. The second result is false
// when err is nil or did not originate in the evaluator.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
