package types

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatchingKind is returned when no variant of a union matches the
	// keys present in a record.
	ErrNoMatchingKind = errors.New("no matching message kind")
	// ErrAmbiguousKind is returned when keys of mutually exclusive variants
	// are present together.
	ErrAmbiguousKind = errors.New("ambiguous message kind")
	// ErrMissingField is wrapped by a FieldError for a required key that is
	// absent or null.
	ErrMissingField = errors.New("missing field")
)

// FieldError reports a wire field that is missing or has the wrong shape for
// its target type. Key is the wire name of the field.
type FieldError struct {
	Key string
	Err error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Key, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
