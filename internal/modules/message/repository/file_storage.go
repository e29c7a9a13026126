package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/reshetovitsme/tgtypes/internal/shared/errors"
	"github.com/reshetovitsme/tgtypes/pkg/types"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// FileStorage implements Repository using one file per message under a
// directory per chat.
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a new file-based message repository
func NewFileStorage(basePath string) (Repository, error) {
	messagePath := filepath.Join(basePath, "messages")
	if err := os.MkdirAll(messagePath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create messages directory").Wrap(err)
	}

	return &FileStorage{basePath: messagePath}, nil
}

func (s *FileStorage) chatDir(chatID types.ChatID) string {
	return filepath.Join(s.basePath, chatID.String())
}

// fileName zero pads the id so directory order is message order.
func fileName(messageID int32) string {
	return fmt.Sprintf("%010d.json", messageID)
}

func (s *FileStorage) SaveMessage(message *types.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgDir := s.chatDir(message.Chat.ID)
	if err := os.MkdirAll(msgDir, 0755); err != nil {
		return oops.With("message_dir", msgDir, "context", "failed to create message directory").Wrap(err)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return oops.With("chat_id", message.Chat.ID, "message_id", message.ID, "context", "failed to marshal message").Wrap(err)
	}

	path := filepath.Join(msgDir, fileName(message.ID))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return oops.With("chat_id", message.Chat.ID, "message_id", message.ID, "context", "failed to write message").Wrap(err)
	}
	return nil
}

func (s *FileStorage) GetMessage(chatID types.ChatID, messageID int32) (*types.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := filepath.Join(s.chatDir(chatID), fileName(messageID))
	message, err := readMessage(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oops.With("chat_id", chatID, "message_id", messageID).Wrap(errors.ErrMessageNotFound)
		}
		return nil, oops.With("chat_id", chatID, "message_id", messageID, "context", "failed to read message").Wrap(err)
	}
	return message, nil
}

// GetMessages returns up to limit messages, newest first. Files that no
// longer decode are skipped.
func (s *FileStorage) GetMessages(chatID types.ChatID, limit int) ([]*types.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := s.entries(chatID)
	if err != nil {
		return nil, err
	}

	var messages []*types.Message
	for i := len(entries) - 1; i >= 0 && len(messages) < limit; i-- {
		message, err := readMessage(filepath.Join(s.chatDir(chatID), entries[i].Name()))
		if err != nil {
			continue
		}
		messages = append(messages, message)
	}

	return messages, nil
}

func (s *FileStorage) GetRecentMessages(chatID types.ChatID, since time.Time) ([]*types.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := s.entries(chatID)
	if err != nil {
		return nil, err
	}

	messages := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (*types.Message, bool) {
		message, err := readMessage(filepath.Join(s.chatDir(chatID), entry.Name()))
		if err != nil {
			return nil, false
		}
		return message, message.Date.After(since)
	})

	return messages, nil
}

// Prune deletes all but the newest keep messages of a chat and returns how
// many were removed.
func (s *FileStorage) Prune(chatID types.ChatID, keep int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.entries(chatID)
	if err != nil {
		return 0, err
	}
	if len(entries) <= keep {
		return 0, nil
	}

	removed := 0
	for _, entry := range entries[:len(entries)-keep] {
		path := filepath.Join(s.chatDir(chatID), entry.Name())
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return removed, oops.With("chat_id", chatID, "path", path, "context", "failed to prune message").Wrap(err)
		}
		removed++
	}
	return removed, nil
}

func (s *FileStorage) DeleteMessages(chatID types.ChatID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.RemoveAll(s.chatDir(chatID)); err != nil {
		return oops.With("chat_id", chatID, "context", "failed to delete messages").Wrap(err)
	}
	return nil
}

// entries lists the message files of a chat in ascending id order. A chat
// without messages has no directory.
func (s *FileStorage) entries(chatID types.ChatID) ([]os.DirEntry, error) {
	msgDir := s.chatDir(chatID)
	entries, err := os.ReadDir(msgDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, oops.With("chat_id", chatID, "message_dir", msgDir, "context", "failed to read messages directory").Wrap(err)
	}

	return lo.Filter(entries, func(entry os.DirEntry, _ int) bool {
		return !entry.IsDir() && filepath.Ext(entry.Name()) == ".json"
	}), nil
}

func readMessage(path string) (*types.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var message types.Message
	if err := json.Unmarshal(data, &message); err != nil {
		return nil, oops.With("path", path).Wrap(err)
	}
	return &message, nil
}
