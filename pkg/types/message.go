package types

import (
	"errors"
	"time"

	"github.com/reshetovitsme/tgtypes/pkg/codec"
)

// Message is a message in a chat. The fields of Kind are flattened into the
// same wire object as the envelope fields.
//
// A decoded Message is not modified in place; build a new value to represent
// an edit.
type Message struct {
	// ID is unique within Chat only.
	ID     int32
	Date   time.Time
	Chat   Chat
	ViaBot *User
	Kind   MessageKind
}

// WithoutReply returns a copy of m whose own reply, if any, is removed.
// Messages nested as a reply target or as a pinned message are stored this
// way so nesting never goes deeper than one level.
func (m *Message) WithoutReply() *Message {
	if m == nil {
		return nil
	}
	out := *m
	if c, ok := m.Kind.(*MessageCommon); ok && c != nil && c.ReplyToMessage != nil {
		trimmed := *c
		trimmed.ReplyToMessage = nil
		out.Kind = &trimmed
	}
	return &out
}

func (m Message) MarshalJSON() ([]byte, error) {
	if m.Kind == nil {
		return nil, errors.New("types: message has no kind")
	}

	w := wire{
		"message_id": m.ID,
		"date":       codec.NewUnixTime(m.Date),
		"chat":       m.Chat,
	}
	if m.ViaBot != nil {
		w["via_bot"] = m.ViaBot
	}
	m.Kind.encode(w)
	return marshalWire(w)
}

func (m *Message) UnmarshalJSON(data []byte) error {
	r, err := parseRecord(data)
	if err != nil {
		return err
	}

	var out Message
	if out.ID, err = required[int32](r, "message_id"); err != nil {
		return err
	}
	if out.Date, err = unixTime(r, "date"); err != nil {
		return err
	}
	if out.Chat, err = required[Chat](r, "chat"); err != nil {
		return err
	}
	if out.ViaBot, err = optional[User](r, "via_bot"); err != nil {
		return err
	}
	if out.Kind, err = resolve(r, messageCandidates); err != nil {
		return err
	}

	*m = out
	return nil
}
