package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/reshetovitsme/tgtypes/internal/modules/chat/domain"
	chatRepo "github.com/reshetovitsme/tgtypes/internal/modules/chat/repository"
	messageDomain "github.com/reshetovitsme/tgtypes/internal/modules/message/domain"
	messageRepo "github.com/reshetovitsme/tgtypes/internal/modules/message/repository"
	"github.com/reshetovitsme/tgtypes/internal/shared/config"
	"github.com/reshetovitsme/tgtypes/internal/shared/errors"
	"github.com/reshetovitsme/tgtypes/internal/shared/metrics"
	"github.com/reshetovitsme/tgtypes/pkg/types"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Service handles watched chats: which chats are stored, their filters and
// message retention.
type Service struct {
	cfg         *config.Config
	chatRepo    chatRepo.Repository
	messageRepo messageRepo.Repository
	now         func() time.Time
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

// New creates a new chat service
func New(cfg *config.Config, chatRepo chatRepo.Repository, messageRepo messageRepo.Repository) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		cfg:         cfg,
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		now:         time.Now,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start begins pruning stored messages on the configured interval.
func (s *Service) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.pruneLoop(ctx)
}

// Stop stops the pruning loop and waits for it to exit.
func (s *Service) Stop() {
	s.cancel()
	s.wg.Wait()
}

// Watch starts storing messages of chat. Watching a chat again refreshes
// its title and resumes it.
func (s *Service) Watch(chat types.Chat, addedBy int64) (*domain.WatchedChat, error) {
	watched, err := s.chatRepo.GetChat(chat.ID)
	switch {
	case err == nil:
		watched.Refresh(chat)
		watched.IsActive = true
	case errors.Is(err, errors.ErrChatNotFound):
		watched = domain.NewWatchedChat(chat, addedBy, s.now())
	default:
		return nil, err
	}

	if err := s.chatRepo.SaveChat(watched); err != nil {
		return nil, oops.With("chat_id", chat.ID, "context", "failed to save chat").Wrap(err)
	}

	slog.Info("Watching chat", "chat_id", chat.ID, "title", watched.Title, "added_by", addedBy)
	return watched, nil
}

// Unwatch forgets a chat and deletes its stored messages.
func (s *Service) Unwatch(chatID types.ChatID) error {
	if err := s.chatRepo.DeleteChat(chatID); err != nil {
		return err
	}
	if err := s.messageRepo.DeleteMessages(chatID); err != nil {
		return oops.With("chat_id", chatID, "context", "failed to delete chat messages").Wrap(err)
	}

	slog.Info("Stopped watching chat", "chat_id", chatID)
	return nil
}

// SetActive pauses or resumes storing messages of a chat.
func (s *Service) SetActive(chatID types.ChatID, active bool) error {
	chat, err := s.chatRepo.GetChat(chatID)
	if err != nil {
		return err
	}
	chat.IsActive = active
	return s.chatRepo.SaveChat(chat)
}

// GetChat retrieves a watched chat by ID
func (s *Service) GetChat(chatID types.ChatID) (*domain.WatchedChat, error) {
	return s.chatRepo.GetChat(chatID)
}

// GetAllChats retrieves all watched chats
func (s *Service) GetAllChats() ([]*domain.WatchedChat, error) {
	return s.chatRepo.GetAllChats()
}

// AddFilter appends filter to a chat. Kind filters must name a message
// kind or a media kind.
func (s *Service) AddFilter(chatID types.ChatID, filter domain.Filter) error {
	if !filter.Type.IsValid() {
		return oops.With("filter_type", filter.Type).Wrap(domain.ErrInvalidFilterType)
	}
	if len(filter.Values) == 0 {
		return oops.With("filter_type", filter.Type).Errorf("filter has no values")
	}
	if filter.Type == domain.FilterTypeKind {
		if bad, found := lo.Find(filter.Values, func(v string) bool { return !isKindName(v) }); found {
			return oops.With("filter_type", filter.Type, "value", bad).Wrap(types.ErrInvalidMessageKindName)
		}
	}

	chat, err := s.chatRepo.GetChat(chatID)
	if err != nil {
		return err
	}
	chat.Filters = append(chat.Filters, filter)
	return s.chatRepo.SaveChat(chat)
}

// RemoveFilter removes the filter at the 1-based index.
func (s *Service) RemoveFilter(chatID types.ChatID, index int) error {
	chat, err := s.chatRepo.GetChat(chatID)
	if err != nil {
		return err
	}
	if index < 1 || index > len(chat.Filters) {
		return oops.With("chat_id", chatID, "index", index, "filters", len(chat.Filters)).Errorf("filter index out of range")
	}

	chat.Filters = append(chat.Filters[:index-1], chat.Filters[index:]...)
	return s.chatRepo.SaveChat(chat)
}

// ProcessMessage stores msg if its chat is watched, active and the message
// passes the chat's filters.
func (s *Service) ProcessMessage(msg *types.Message) error {
	chat, err := s.chatRepo.GetChat(msg.Chat.ID)
	if err != nil {
		return err
	}
	if !chat.IsActive {
		return oops.With("chat_id", chat.ID).Wrap(errors.ErrChatInactive)
	}
	if !PassesFilters(chat, msg) {
		return oops.With("chat_id", chat.ID, "message_id", msg.ID).Wrap(errors.ErrFiltered)
	}

	if err := s.messageRepo.SaveMessage(msg); err != nil {
		return oops.With("chat_id", chat.ID, "message_id", msg.ID, "context", "failed to save message").Wrap(err)
	}

	chat.Refresh(msg.Chat)
	chat.LastUpdate = s.now()
	if err := s.chatRepo.SaveChat(chat); err != nil {
		slog.Error("Failed to update chat last update time", "chat_id", chat.ID, "error", err)
	}

	return nil
}

// PassesFilters checks if a message passes all enabled filters of chat.
func PassesFilters(chat *domain.WatchedChat, msg *types.Message) bool {
	return lo.EveryBy(chat.Filters, func(filter domain.Filter) bool {
		if !filter.Enabled {
			return true
		}

		switch filter.Type {
		case domain.FilterTypeKeywords:
			text := searchableText(msg)
			return lo.SomeBy(filter.Values, func(keyword string) bool { return containsFold(text, keyword) })
		case domain.FilterTypeExcludeKeywords:
			text := searchableText(msg)
			return !lo.SomeBy(filter.Values, func(keyword string) bool { return containsFold(text, keyword) })
		case domain.FilterTypeAuthor:
			names := authorNames(msg)
			return lo.SomeBy(filter.Values, func(value string) bool {
				return lo.SomeBy(names, func(name string) bool { return strings.EqualFold(name, value) })
			})
		case domain.FilterTypeKind:
			kinds := []string{msg.KindName().String()}
			if media, ok := msg.MediaKindName(); ok {
				kinds = append(kinds, media.String())
			}
			return lo.SomeBy(filter.Values, func(value string) bool {
				return lo.SomeBy(kinds, func(kind string) bool { return strings.EqualFold(kind, value) })
			})
		default:
			return true
		}
	})
}

func (s *Service) pruneLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(time.Duration(s.cfg.PruneInterval) * time.Second)
	defer ticker.Stop()

	s.pruneChats()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.pruneChats()
		}
	}
}

func (s *Service) pruneChats() {
	if s.cfg.RetainMessages == 0 {
		return
	}

	chats, err := s.chatRepo.GetAllChats()
	if err != nil {
		slog.Error("Failed to load chats for pruning", "error", err)
		return
	}

	for _, chat := range chats {
		removed, err := s.messageRepo.Prune(chat.ID, s.cfg.RetainMessages)
		if err != nil {
			slog.Error("Failed to prune messages", "chat_id", chat.ID, "error", err)
			continue
		}
		if removed > 0 {
			metrics.MessagesPruned.Add(float64(removed))
			slog.Debug("Pruned messages", "chat_id", chat.ID, "removed", removed)
		}
	}
}

func searchableText(msg *types.Message) string {
	if text, ok := msg.Text(); ok {
		return text
	}
	caption, _ := msg.Caption()
	return caption
}

// authorNames lists the names an author filter may match: the credited
// author plus the sender's username with and without "@".
func authorNames(msg *types.Message) []string {
	names := []string{messageDomain.Author(msg)}
	if from := msg.From(); from != nil && from.Username != "" {
		names = append(names, from.Username, from.Mention())
	}
	if chat := msg.SenderChat(); chat != nil && chat.Username != "" {
		names = append(names, chat.Username, "@"+chat.Username)
	}
	return lo.Compact(names)
}

func containsFold(text, keyword string) bool {
	return keyword != "" && strings.Contains(strings.ToLower(text), strings.ToLower(keyword))
}

func isKindName(value string) bool {
	if _, err := types.ParseMessageKindName(value); err == nil {
		return true
	}
	_, err := types.ParseMediaKindName(value)
	return err == nil
}
