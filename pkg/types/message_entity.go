package types

import (
	"encoding/json"
	"fmt"
	"net/url"
	"unicode/utf16"

	"github.com/samber/lo"
)

// MessageEntity is a formatted or special span of message text, such as a
// hashtag, a link or a bold run. Offset and Length count UTF-16 code units.
//
// Language is only meaningful for EntityTypePre, URL for EntityTypeTextLink
// and User for EntityTypeTextMention.
type MessageEntity struct {
	Type     EntityType
	Offset   int
	Length   int
	Language string
	URL      *url.URL
	User     *User
}

// NewMessageEntity builds an entity without payload.
func NewMessageEntity(typ EntityType, offset, length int) MessageEntity {
	return MessageEntity{Type: typ, Offset: offset, Length: length}
}

// UserMention builds a text link that mentions a user by id, which works
// for users without a username.
func UserMention(id UserID, offset, length int) MessageEntity {
	return MessageEntity{Type: EntityTypeTextLink, Offset: offset, Length: length, URL: id.URL()}
}

// Extract returns the part of text covered by the entity. ok is false when
// the entity does not fit in text.
func (e MessageEntity) Extract(text string) (string, bool) {
	units := utf16.Encode([]rune(text))
	end := e.Offset + e.Length
	if e.Offset < 0 || e.Length < 0 || end > len(units) {
		return "", false
	}
	return string(utf16.Decode(units[e.Offset:end])), true
}

func (e MessageEntity) MarshalJSON() ([]byte, error) {
	w := wire{
		"type":   e.Type,
		"offset": e.Offset,
		"length": e.Length,
	}

	switch e.Type {
	case EntityTypePre:
		w.setString("language", e.Language)
	case EntityTypeTextLink:
		if e.URL == nil {
			return nil, &FieldError{Key: "url", Err: ErrMissingField}
		}
		w["url"] = e.URL.String()
	case EntityTypeTextMention:
		if e.User == nil {
			return nil, &FieldError{Key: "user", Err: ErrMissingField}
		}
		w["user"] = e.User
	}

	return marshalWire(w)
}

func (e *MessageEntity) UnmarshalJSON(data []byte) error {
	r, err := parseRecord(data)
	if err != nil {
		return err
	}

	typ, err := required[EntityType](r, "type")
	if err != nil {
		return err
	}
	// The wire tag is lowercase; IsValid alone would accept any casing.
	if !lo.Contains(EntityTypeNames(), string(typ)) {
		return &FieldError{Key: "type", Err: fmt.Errorf("%q is %w", typ, ErrInvalidEntityType)}
	}

	out := MessageEntity{Type: typ}
	if out.Offset, err = unitCount(r, "offset"); err != nil {
		return err
	}
	if out.Length, err = unitCount(r, "length"); err != nil {
		return err
	}

	switch typ {
	case EntityTypePre:
		if out.Language, err = optionalValue[string](r, "language"); err != nil {
			return err
		}
	case EntityTypeTextLink:
		raw, err := required[string](r, "url")
		if err != nil {
			return err
		}
		u, err := url.Parse(raw)
		if err != nil {
			return &FieldError{Key: "url", Err: err}
		}
		if !u.IsAbs() {
			return &FieldError{Key: "url", Err: fmt.Errorf("relative url %q", raw)}
		}
		out.URL = u
	case EntityTypeTextMention:
		user, err := required[User](r, "user")
		if err != nil {
			return err
		}
		out.User = &user
	}

	*e = out
	return nil
}

// unitCount decodes a required UTF-16 offset or length.
func unitCount(r record, key string) (int, error) {
	n, err := required[int](r, key)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, &FieldError{Key: key, Err: fmt.Errorf("negative value %d", n)}
	}
	return n, nil
}

var _ json.Unmarshaler = (*MessageEntity)(nil)
