// Package codec holds the field-level wire codecs shared by the Bot API types:
// Unix timestamps, durations in whole seconds and URLs that may be empty.
//
// Every codec is a named type implementing json.Marshaler and json.Unmarshaler,
// so a struct opts in per field and keeps default encoding everywhere else.
package codec

import (
	"bytes"
	"fmt"
)

var null = []byte("null")

// RangeError reports a numeric wire value that does not fit its target type.
type RangeError struct {
	Value string
	Max   uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("codec: value %s out of range [0, %d]", e.Value, e.Max)
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), null)
}
