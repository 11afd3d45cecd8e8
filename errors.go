package reactive

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel wrapped by every ArgumentError.
// Use errors.Is(err, ErrInvalidArgument) to detect validation failures.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports a rejected argument or payload field.
type ArgumentError struct {
	// Param is the name of the offending parameter or field.
	Param string

	// Reason describes the violated rule.
	Reason string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidArgument, e.Param, e.Reason)
}

// Unwrap returns ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func newArgumentError(param, reason string) *ArgumentError {
	return &ArgumentError{Param: param, Reason: reason}
}
