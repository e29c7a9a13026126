package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// MaxSeconds is the largest wire value that fits a time.Duration.
const MaxSeconds = uint64(math.MaxInt64 / int64(time.Second))

// Seconds is a duration carried on the wire as a non-negative integer number
// of seconds.
type Seconds time.Duration

// Duration returns s as a time.Duration.
func (s Seconds) Duration() time.Duration {
	return time.Duration(s)
}

func (s Seconds) MarshalJSON() ([]byte, error) {
	if s < 0 {
		return nil, fmt.Errorf("codec: negative duration %s", time.Duration(s))
	}
	return strconv.AppendUint(nil, uint64(time.Duration(s)/time.Second), 10), nil
}

func (s *Seconds) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	if len(data) == 0 || data[0] == '"' {
		return fmt.Errorf("codec: seconds must be a JSON number, got %s", data)
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	secs, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return &RangeError{Value: n.String(), Max: MaxSeconds}
		}
		return fmt.Errorf("codec: seconds must be a non-negative integer, got %s", n)
	}
	if secs > MaxSeconds {
		return &RangeError{Value: n.String(), Max: MaxSeconds}
	}

	*s = Seconds(time.Duration(secs) * time.Second)
	return nil
}
