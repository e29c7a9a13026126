package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/reshetovitsme/tgtypes/internal/modules/chat/domain"
	"github.com/reshetovitsme/tgtypes/internal/shared/errors"
	"github.com/reshetovitsme/tgtypes/pkg/types"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// FileStorage keeps one JSON document per watched chat.
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a new file-based chat repository
func NewFileStorage(basePath string) (Repository, error) {
	chatPath := filepath.Join(basePath, "chats")
	if err := os.MkdirAll(chatPath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create chats directory").Wrap(err)
	}

	return &FileStorage{basePath: chatPath}, nil
}

func (s *FileStorage) path(chatID types.ChatID) string {
	return filepath.Join(s.basePath, chatID.String()+".json")
}

func (s *FileStorage) SaveChat(chat *domain.WatchedChat) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(chat, "", "  ")
	if err != nil {
		return oops.With("chat_id", chat.ID, "context", "failed to marshal chat").Wrap(err)
	}

	if err := os.WriteFile(s.path(chat.ID), data, 0644); err != nil {
		return oops.With("chat_id", chat.ID, "context", "failed to write chat").Wrap(err)
	}
	return nil
}

func (s *FileStorage) GetChat(chatID types.ChatID) (*domain.WatchedChat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(chatID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oops.With("chat_id", chatID).Wrap(errors.ErrChatNotFound)
		}
		return nil, oops.With("chat_id", chatID, "context", "failed to read chat").Wrap(err)
	}

	var chat domain.WatchedChat
	if err := json.Unmarshal(data, &chat); err != nil {
		return nil, oops.With("chat_id", chatID, "context", "failed to unmarshal chat").Wrap(err)
	}

	return &chat, nil
}

func (s *FileStorage) GetAllChats() ([]*domain.WatchedChat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, oops.With("directory", s.basePath, "context", "failed to read chats directory").Wrap(err)
	}

	chats := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (*domain.WatchedChat, bool) {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			return nil, false
		}

		data, err := os.ReadFile(filepath.Join(s.basePath, entry.Name()))
		if err != nil {
			return nil, false
		}

		var chat domain.WatchedChat
		if err := json.Unmarshal(data, &chat); err != nil {
			return nil, false
		}

		return &chat, true
	})

	slices.SortFunc(chats, func(a, b *domain.WatchedChat) int {
		return a.AddedAt.Compare(b.AddedAt)
	})
	return chats, nil
}

func (s *FileStorage) DeleteChat(chatID types.ChatID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(chatID)); err != nil {
		if os.IsNotExist(err) {
			return oops.With("chat_id", chatID).Wrap(errors.ErrChatNotFound)
		}
		return oops.With("chat_id", chatID, "context", "failed to delete chat").Wrap(err)
	}
	return nil
}
