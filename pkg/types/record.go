package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/reshetovitsme/tgtypes/pkg/codec"
)

// record is a wire object split into its top-level keys. Union variants are
// chosen by looking at which keys a record carries.
type record map[string]json.RawMessage

func parseRecord(data []byte) (record, error) {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("expected a JSON object, got %s", bytes.TrimSpace(data))
	}
	return r, nil
}

// has reports whether key is present with a non-null value.
func (r record) has(key string) bool {
	raw, ok := r[key]
	return ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func (r record) hasAll(keys ...string) bool {
	return lo.EveryBy(keys, r.has)
}

func (r record) hasAny(keys ...string) bool {
	return lo.SomeBy(keys, r.has)
}

// required decodes key into a T or fails with a FieldError naming key.
func required[T any](r record, key string) (T, error) {
	var v T
	if !r.has(key) {
		return v, &FieldError{Key: key, Err: ErrMissingField}
	}
	if err := json.Unmarshal(r[key], &v); err != nil {
		return v, &FieldError{Key: key, Err: err}
	}
	return v, nil
}

// optional decodes key into a *T, leaving nil when key is absent or null.
func optional[T any](r record, key string) (*T, error) {
	if !r.has(key) {
		return nil, nil
	}
	v, err := required[T](r, key)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// optionalValue decodes key into a T, leaving the zero value when key is
// absent or null.
func optionalValue[T any](r record, key string) (T, error) {
	if !r.has(key) {
		var zero T
		return zero, nil
	}
	return required[T](r, key)
}

// entities decodes an optional entity list, normalizing empty to nil.
func entities(r record, key string) ([]MessageEntity, error) {
	list, err := optionalValue[[]MessageEntity](r, key)
	if len(list) == 0 {
		return nil, err
	}
	return list, err
}

// trueField decodes a service flag that the API only ever sends as true.
func trueField(r record, key string) error {
	v, err := required[bool](r, key)
	if err != nil {
		return err
	}
	if !v {
		return &FieldError{Key: key, Err: fmt.Errorf("expected true, got false")}
	}
	return nil
}

func unixTime(r record, key string) (time.Time, error) {
	u, err := required[codec.UnixTime](r, key)
	return u.Time(), err
}

func optionalUnixTime(r record, key string) (*time.Time, error) {
	u, err := optional[codec.UnixTime](r, key)
	if err != nil {
		return nil, err
	}
	return u.TimePtr(), nil
}

// wire collects the keys of a record being encoded.
type wire map[string]any

func (w wire) setString(key, v string) {
	if v != "" {
		w[key] = v
	}
}

func (w wire) setEntities(key string, v []MessageEntity) {
	if len(v) > 0 {
		w[key] = v
	}
}

func (w wire) setOptionalUnixTime(key string, t *time.Time) {
	if t != nil {
		w[key] = codec.NewUnixTime(*t)
	}
}

func (w wire) setFlag(key string, v bool) {
	if v {
		w[key] = true
	}
}

func marshalWire(w wire) ([]byte, error) {
	return json.Marshal(map[string]any(w))
}
