package component

import (
	"errors"
	"fmt"
)

var (
	// ErrParse matches any *ParseError.
	ErrParse = errors.New("invalid components manifest")
	// ErrNotFound matches any *NotFoundError.
	ErrNotFound = errors.New("component not found")
)

// ParseError reports a manifest that could not be decoded into Components.
// Line and Column are 1-based and zero when the decoder gave no position.
type ParseError struct {
	Err    error
	Key    string
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	msg := "parse components manifest"
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d, column %d)", msg, e.Line, e.Column)
	}
	if e.Key != "" {
		msg = fmt.Sprintf("%s: component %q", msg, e.Key)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// NotFoundError reports a name that is neither in the manifest nor Fuelup.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("component with name '%s' does not exist", e.Name)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
