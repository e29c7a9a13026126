package codec

import (
	"encoding/json"
	"net/url"
)

// OptionalURL is a URL carried on the wire as a string that is always
// present, with "" standing for "no URL".
//
// Decoding never fails: a malformed or non-absolute string, or a value that
// is not a string at all, decodes to a nil URL. Upstream data occasionally
// carries garbage here and losing it is preferable to rejecting the record.
type OptionalURL struct {
	URL *url.URL
}

// NewOptionalURL wraps u, which may be nil.
func NewOptionalURL(u *url.URL) OptionalURL {
	return OptionalURL{URL: u}
}

// ParseOptionalURL applies the decode rule to a plain string.
func ParseOptionalURL(s string) OptionalURL {
	if s == "" {
		return OptionalURL{}
	}

	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		return OptionalURL{}
	}
	return OptionalURL{URL: u}
}

// String returns the wire form: the URL or "".
func (o OptionalURL) String() string {
	if o.URL == nil {
		return ""
	}
	return o.URL.String()
}

func (o OptionalURL) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *OptionalURL) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*o = OptionalURL{}
		return nil
	}

	*o = ParseOptionalURL(s)
	return nil
}
