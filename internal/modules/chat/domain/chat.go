package domain

import (
	"time"

	"github.com/reshetovitsme/tgtypes/pkg/types"
)

// WatchedChat is a chat whose messages are stored and published as a feed.
type WatchedChat struct {
	ID         types.ChatID   `json:"id"`
	Type       types.ChatType `json:"type"`
	Title      string         `json:"title"`
	Username   string         `json:"username,omitempty"`
	AddedBy    int64          `json:"added_by"`
	AddedAt    time.Time      `json:"added_at"`
	Filters    []Filter       `json:"filters"`
	LastUpdate time.Time      `json:"last_update"`
	IsActive   bool           `json:"is_active"`
}

// Filter represents content filtering criteria. Values hold keywords,
// author names or message kind names depending on Type.
type Filter struct {
	Type    FilterType `json:"type"`
	Values  []string   `json:"values"`
	Enabled bool       `json:"enabled"`
}

// NewWatchedChat starts watching chat on behalf of addedBy.
func NewWatchedChat(chat types.Chat, addedBy int64, now time.Time) *WatchedChat {
	return &WatchedChat{
		ID:         chat.ID,
		Type:       chat.Type,
		Title:      chat.DisplayName(),
		Username:   chat.Username,
		AddedBy:    addedBy,
		AddedAt:    now,
		Filters:    []Filter{},
		LastUpdate: now,
		IsActive:   true,
	}
}

// Refresh copies the title and username from a newer view of the chat.
func (c *WatchedChat) Refresh(chat types.Chat) {
	c.Title = chat.DisplayName()
	c.Username = chat.Username
}
