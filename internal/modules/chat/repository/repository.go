package repository

import (
	"github.com/reshetovitsme/tgtypes/internal/modules/chat/domain"
	"github.com/reshetovitsme/tgtypes/pkg/types"
)

// Repository defines the interface for watched chat persistence
type Repository interface {
	SaveChat(chat *domain.WatchedChat) error
	GetChat(chatID types.ChatID) (*domain.WatchedChat, error)
	GetAllChats() ([]*domain.WatchedChat, error)
	DeleteChat(chatID types.ChatID) error
}
