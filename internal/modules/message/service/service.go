package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/reshetovitsme/tgtypes/internal/modules/message/domain"
	"github.com/reshetovitsme/tgtypes/internal/modules/message/repository"
	"github.com/reshetovitsme/tgtypes/internal/shared/errors"
	"github.com/reshetovitsme/tgtypes/internal/shared/metrics"
	"github.com/reshetovitsme/tgtypes/pkg/types"
	"github.com/samber/oops"
)

// Processor decides whether a decoded message is kept and stores it.
type Processor interface {
	ProcessMessage(msg *types.Message) error
}

// Service decodes incoming messages and reads stored ones.
type Service struct {
	repo      repository.Repository
	processor Processor
}

// New creates a new message service
func New(repo repository.Repository, processor Processor) *Service {
	return &Service{
		repo:      repo,
		processor: processor,
	}
}

// Ingest decodes a wire message and hands it to the processor. Messages of
// unwatched or paused chats and filtered messages are not errors; they are
// reported through the result.
func (s *Service) Ingest(raw []byte) (*domain.IngestResult, error) {
	var msg types.Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		metrics.MessagesRejected.WithLabelValues("decode").Inc()
		return nil, oops.In("message").Wrap(fmt.Errorf("%w: %w", errors.ErrInvalidMessage, err))
	}

	summary := domain.Summarize(&msg)
	metrics.MessagesClassified.WithLabelValues(summary.Kind.String(), summary.Media.String()).Inc()

	result := &domain.IngestResult{Summary: summary}
	err := s.processor.ProcessMessage(&msg)
	switch {
	case err == nil:
		result.Stored = true
	case errors.Is(err, errors.ErrChatNotFound):
		result.Reason = "not_watched"
	case errors.Is(err, errors.ErrChatInactive):
		result.Reason = "inactive"
	case errors.Is(err, errors.ErrFiltered):
		result.Reason = "filtered"
	default:
		metrics.MessagesRejected.WithLabelValues("storage").Inc()
		return nil, err
	}

	if !result.Stored {
		metrics.MessagesRejected.WithLabelValues(result.Reason).Inc()
	}
	slog.Debug("Message ingested", "chat_id", msg.Chat.ID, "message_id", msg.ID, "kind", summary.Kind, "media", summary.Media, "stored", result.Stored)
	return result, nil
}

// GetMessage retrieves one stored message
func (s *Service) GetMessage(chatID types.ChatID, messageID int32) (*types.Message, error) {
	return s.repo.GetMessage(chatID, messageID)
}

// GetMessages retrieves the newest messages of a chat
func (s *Service) GetMessages(chatID types.ChatID, limit int) ([]*types.Message, error) {
	return s.repo.GetMessages(chatID, limit)
}

// GetRecentMessages retrieves messages newer than since
func (s *Service) GetRecentMessages(chatID types.ChatID, since time.Time) ([]*types.Message, error) {
	return s.repo.GetRecentMessages(chatID, since)
}

// Permalink returns the public link of a stored message.
func (s *Service) Permalink(chatID types.ChatID, messageID int32) (string, error) {
	msg, err := s.repo.GetMessage(chatID, messageID)
	if err != nil {
		return "", err
	}
	u := msg.URL()
	if u == nil {
		return "", oops.With("chat_id", chatID, "message_id", messageID).Wrap(errors.ErrNoPermalink)
	}
	return u.String(), nil
}
