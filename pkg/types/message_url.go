package types

import (
	"fmt"
	"net/url"
)

// URL returns a t.me link to the message, or nil when the chat has none.
//
// Private chats and basic groups have no message links. Public supergroups
// and channels get a link by username; private ones get a /c/ link that
// only resolves for members.
func (m *Message) URL() *url.URL {
	if m == nil {
		return nil
	}

	bare, ok := m.Chat.ID.ToBare()
	if !ok || bare.Kind != BareChatKindChannel {
		return nil
	}

	path := fmt.Sprintf("/c/%d/%d/", bare.ID, m.ID)
	if m.Chat.Username != "" {
		path = fmt.Sprintf("/%s/%d/", m.Chat.Username, m.ID)
	}
	return &url.URL{Scheme: "https", Host: "t.me", Path: path}
}
