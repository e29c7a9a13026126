package codec

import (
	"encoding/json"
	"strconv"
	"time"
)

// UnixTime is an instant carried on the wire as a signed count of seconds
// since the Unix epoch. Decoded values are always in UTC.
//
// Use *UnixTime with `omitempty` for optional dates: an absent field decodes
// to nil and nil is omitted on encode, never written as null.
type UnixTime time.Time

// NewUnixTime truncates t to whole seconds.
func NewUnixTime(t time.Time) UnixTime {
	return UnixTime(FromUnix(ToUnix(t)))
}

// ToUnix encodes t as seconds since the epoch, dropping sub-second precision.
func ToUnix(t time.Time) int64 {
	return t.Unix()
}

// FromUnix decodes seconds since the epoch into a UTC instant.
func FromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// Time returns the instant as a time.Time.
func (u UnixTime) Time() time.Time {
	return time.Time(u)
}

func (u UnixTime) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, ToUnix(time.Time(u)), 10), nil
}

func (u *UnixTime) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	var sec int64
	if err := json.Unmarshal(data, &sec); err != nil {
		return err
	}

	*u = UnixTime(FromUnix(sec))
	return nil
}

// OptionalUnixTime converts an optional instant into its field form.
func OptionalUnixTime(t *time.Time) *UnixTime {
	if t == nil {
		return nil
	}
	u := NewUnixTime(*t)
	return &u
}

// TimePtr converts an optional field back into an optional instant.
func (u *UnixTime) TimePtr() *time.Time {
	if u == nil {
		return nil
	}
	t := time.Time(*u)
	return &t
}
