package nutrition

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the only failure kind the calculators return. Every
// error from this package wraps it, so callers can test with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports which operation rejected which argument and why.
type ArgumentError struct {
	Op  string // e.g. "CalculateBMI"
	Arg string // parameter name, e.g. "weight_kg"
	Msg string
}

func (e *ArgumentError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Arg, e.Msg)
}

// Unwrap lets errors.Is(err, ErrInvalidArgument) match.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(op, arg, msg string) error {
	return &ArgumentError{Op: op, Arg: arg, Msg: msg}
}
