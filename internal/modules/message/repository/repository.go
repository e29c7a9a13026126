package repository

import (
	"time"

	"github.com/reshetovitsme/tgtypes/pkg/types"
)

// Repository defines the interface for message persistence. Messages are
// kept in their wire form so they decode back into the same kind.
type Repository interface {
	SaveMessage(message *types.Message) error
	GetMessage(chatID types.ChatID, messageID int32) (*types.Message, error)
	GetMessages(chatID types.ChatID, limit int) ([]*types.Message, error)
	GetRecentMessages(chatID types.ChatID, since time.Time) ([]*types.Message, error)
	Prune(chatID types.ChatID, keep int) (int, error)
	DeleteMessages(chatID types.ChatID) error
}
