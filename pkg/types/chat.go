package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/reshetovitsme/tgtypes/pkg/codec"
)

// ChatID is a chat identifier in the "marked" form used by the Bot API:
// positive for users, negative for groups, -100... for channels and
// supergroups.
type ChatID int64

const (
	minMarkedChatID    ChatID = -999999999999
	maxMarkedChannelID ChatID = -1000000000000
	maxBareID                 = int64(1)<<40 - 1
	minMarkedChannelID        = maxMarkedChannelID - ChatID(maxBareID)
)

// BareChatID is a chat id with the marking removed, as used in t.me links.
type BareChatID struct {
	Kind BareChatKind
	ID   uint64
}

// ToBare strips the marking from id. ok is false for ids outside every
// known range.
func (id ChatID) ToBare() (bare BareChatID, ok bool) {
	switch {
	case id >= minMarkedChatID && id <= -1:
		return BareChatID{Kind: BareChatKindGroup, ID: uint64(-id)}, true
	case id >= minMarkedChannelID && id <= maxMarkedChannelID:
		return BareChatID{Kind: BareChatKindChannel, ID: uint64(maxMarkedChannelID - id)}, true
	case id >= 0 && int64(id) <= maxBareID:
		return BareChatID{Kind: BareChatKindUser, ID: uint64(id)}, true
	default:
		return BareChatID{}, false
	}
}

// IsUser reports whether id belongs to a private chat.
func (id ChatID) IsUser() bool {
	bare, ok := id.ToBare()
	return ok && bare.Kind == BareChatKindUser
}

// IsGroup reports whether id belongs to a basic group.
func (id ChatID) IsGroup() bool {
	bare, ok := id.ToBare()
	return ok && bare.Kind == BareChatKindGroup
}

// IsChannelOrSupergroup reports whether id belongs to a channel or a
// supergroup.
func (id ChatID) IsChannelOrSupergroup() bool {
	bare, ok := id.ToBare()
	return ok && bare.Kind == BareChatKindChannel
}

func (id ChatID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ChatPhoto holds the file ids of a chat's profile photo.
type ChatPhoto struct {
	SmallFileID       string `json:"small_file_id"`
	SmallFileUniqueID string `json:"small_file_unique_id"`
	BigFileID         string `json:"big_file_id"`
	BigFileUniqueID   string `json:"big_file_unique_id"`
}

// Chat is a private chat, group, supergroup or channel.
type Chat struct {
	ID                    ChatID         `json:"id"`
	Type                  ChatType       `json:"type"`
	Title                 string         `json:"title,omitempty"`
	Username              string         `json:"username,omitempty"`
	FirstName             string         `json:"first_name,omitempty"`
	LastName              string         `json:"last_name,omitempty"`
	Photo                 *ChatPhoto     `json:"photo,omitempty"`
	Bio                   string         `json:"bio,omitempty"`
	Description           string         `json:"description,omitempty"`
	InviteLink            string         `json:"invite_link,omitempty"`
	SlowModeDelay         *codec.Seconds `json:"slow_mode_delay,omitempty"`
	MessageAutoDeleteTime *codec.Seconds `json:"message_auto_delete_time,omitempty"`
	HasProtectedContent   bool           `json:"has_protected_content,omitempty"`
	StickerSetName        string         `json:"sticker_set_name,omitempty"`
	CanSetStickerSet      bool           `json:"can_set_sticker_set,omitempty"`
	LinkedChatID          ChatID         `json:"linked_chat_id,omitempty"`
}

// IsPrivate reports whether the chat is a one-to-one chat with a user.
func (c Chat) IsPrivate() bool {
	return c.Type == ChatTypePrivate
}

// IsPublic reports whether the chat can be joined by username.
func (c Chat) IsPublic() bool {
	return !c.IsPrivate() && c.Username != ""
}

// DisplayName returns the title of a group or channel, or the full name of
// the user of a private chat.
func (c Chat) DisplayName() string {
	if c.Title != "" {
		return c.Title
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// Recipient addresses a chat either by id or by the "@username" of a public
// channel or supergroup.
type Recipient struct {
	ChatID          ChatID
	ChannelUsername string
}

// ChatRecipient addresses a chat by id.
func ChatRecipient(id ChatID) Recipient {
	return Recipient{ChatID: id}
}

// ChannelRecipient addresses a public channel or supergroup by username,
// adding the leading "@" when missing.
func ChannelRecipient(username string) Recipient {
	if !strings.HasPrefix(username, "@") {
		username = "@" + username
	}
	return Recipient{ChannelUsername: username}
}

func (r Recipient) String() string {
	if r.ChannelUsername != "" {
		return r.ChannelUsername
	}
	return r.ChatID.String()
}

func (r Recipient) MarshalJSON() ([]byte, error) {
	if r.ChannelUsername != "" {
		return json.Marshal(r.ChannelUsername)
	}
	return json.Marshal(int64(r.ChatID))
}

func (r *Recipient) UnmarshalJSON(data []byte) error {
	var username string
	if err := json.Unmarshal(data, &username); err == nil {
		*r = Recipient{ChannelUsername: username}
		return nil
	}

	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("recipient must be a chat id or a channel username: %w", err)
	}
	*r = Recipient{ChatID: ChatID(id)}
	return nil
}
