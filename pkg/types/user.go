package types

import (
	"net/url"
	"strconv"
)

// UserID is a unique identifier of a user or bot.
type UserID uint64

const (
	// anonymousGroupAdminID is the "GroupAnonymousBot" user that sends
	// messages on behalf of anonymous group administrators.
	anonymousGroupAdminID UserID = 1087968824
	// channelBotID is the "Channel_Bot" user that sends messages on behalf of
	// channels.
	channelBotID UserID = 136817688
	// telegramID is the service account used for notifications and for
	// channel posts forwarded into linked groups.
	telegramID UserID = 777000
)

// URL returns a tg:// link that opens the user's profile.
func (id UserID) URL() *url.URL {
	return &url.URL{
		Scheme:   "tg",
		Host:     "user",
		Path:     "/",
		RawQuery: "id=" + strconv.FormatUint(uint64(id), 10),
	}
}

// User is a Telegram user or bot.
type User struct {
	ID           UserID `json:"id"`
	IsBot        bool   `json:"is_bot"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	IsPremium    bool   `json:"is_premium,omitempty"`
}

// FullName joins the first and last name.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Mention returns "@username" or "" for users without a username.
func (u User) Mention() string {
	if u.Username == "" {
		return ""
	}
	return "@" + u.Username
}

// IsAnonymous reports whether the user is the placeholder used for
// anonymous group administrators.
func (u User) IsAnonymous() bool {
	return u.ID == anonymousGroupAdminID
}

// IsChannel reports whether the user is the placeholder used for messages
// sent on behalf of a channel.
func (u User) IsChannel() bool {
	return u.ID == channelBotID
}

// IsTelegram reports whether the user is the Telegram service account.
func (u User) IsTelegram() bool {
	return u.ID == telegramID
}
