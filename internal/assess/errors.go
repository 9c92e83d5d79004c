package assess

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is matched by every error Compute returns.
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single missing or out-of-range observation.
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) Error() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// InputError lists every invalid field of an Input.
type InputError struct {
	Fields []FieldError
}

func (e *InputError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }
