package service

import (
	"fmt"
	"html"
	"strings"

	"github.com/gorilla/feeds"
	chatRepo "github.com/reshetovitsme/tgtypes/internal/modules/chat/repository"
	"github.com/reshetovitsme/tgtypes/internal/modules/feed/domain"
	messageDomain "github.com/reshetovitsme/tgtypes/internal/modules/message/domain"
	messageRepo "github.com/reshetovitsme/tgtypes/internal/modules/message/repository"
	"github.com/reshetovitsme/tgtypes/internal/shared/config"
	"github.com/reshetovitsme/tgtypes/internal/shared/metrics"
	"github.com/reshetovitsme/tgtypes/pkg/types"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Service handles feed generation
type Service struct {
	cfg         *config.Config
	chatRepo    chatRepo.Repository
	messageRepo messageRepo.Repository
}

// New creates a new feed service
func New(cfg *config.Config, chatRepo chatRepo.Repository, messageRepo messageRepo.Repository) *Service {
	return &Service{
		cfg:         cfg,
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
	}
}

// GenerateFeed generates a feed of the newest stored messages of a chat
func (s *Service) GenerateFeed(chatID types.ChatID, baseURL string) (*feeds.Feed, error) {
	chat, err := s.chatRepo.GetChat(chatID)
	if err != nil {
		return nil, oops.With("chat_id", chatID, "context", "chat not found").Wrap(err)
	}

	messages, err := s.messageRepo.GetMessages(chatID, s.cfg.FeedLimit)
	if err != nil {
		return nil, oops.With("chat_id", chatID, "context", "failed to get messages").Wrap(err)
	}

	feedURL := fmt.Sprintf("%s/rss/%s", baseURL, chat.ID)
	feed := &feeds.Feed{
		Title:       fmt.Sprintf("%s - RSS Feed", chat.Title),
		Link:        &feeds.Link{Href: feedURL},
		Description: fmt.Sprintf("RSS feed for Telegram %s: %s", chat.Type, chat.Title),
		Author:      &feeds.Author{Name: lo.CoalesceOrEmpty(chat.Username, chat.Title)},
		Created:     chat.AddedAt,
		Updated:     chat.LastUpdate,
	}

	feed.Items = lo.Map(messages, func(msg *types.Message, _ int) *feeds.Item {
		return messageToFeedItem(messageDomain.Summarize(msg), feedURL)
	})

	metrics.FeedsServed.WithLabelValues(chat.ID.String()).Inc()
	return feed, nil
}

// Render serializes feed in the requested format.
func Render(feed *feeds.Feed, format domain.Format) (string, error) {
	var (
		out string
		err error
	)
	switch format {
	case domain.FormatAtom:
		out, err = feed.ToAtom()
	case domain.FormatJson:
		out, err = feed.ToJSON()
	default:
		out, err = feed.ToRss()
	}
	if err != nil {
		return "", oops.With("format", format, "context", "failed to render feed").Wrap(err)
	}
	return out, nil
}

func messageToFeedItem(msg *messageDomain.Summary, feedURL string) *feeds.Item {
	description := msg.Text
	if description == "" {
		description = describe(msg)
	}

	var content strings.Builder
	fmt.Fprintf(&content, "<p>%s</p>", html.EscapeString(description))
	if len(msg.Files) > 0 {
		content.WriteString("<p><strong>Media attachments:</strong></p><ul>")
		for _, file := range msg.Files {
			fmt.Fprintf(&content, "<li>%s: %s</li>", file.Kind, html.EscapeString(file.FileID))
		}
		content.WriteString("</ul>")
	}

	// Messages of private chats have no public link
	link := msg.Link
	if link == "" {
		link = fmt.Sprintf("%s#%d", feedURL, msg.ID)
	}

	return &feeds.Item{
		Title:       truncate(description, 100),
		Link:        &feeds.Link{Href: link},
		Description: description,
		Content:     content.String(),
		Author:      &feeds.Author{Name: msg.Author},
		Created:     msg.Date,
		Id:          fmt.Sprintf("%s-%d", msg.ChatID, msg.ID),
	}
}

// describe names a message without text by its kind, e.g. "[photo]" or
// "[pinned]".
func describe(msg *messageDomain.Summary) string {
	if msg.Media != "" && msg.Kind == types.MessageKindNameCommon {
		return fmt.Sprintf("[%s]", msg.Media)
	}
	return fmt.Sprintf("[%s]", msg.Kind)
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
