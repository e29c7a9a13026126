package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	chatDomain "github.com/reshetovitsme/tgtypes/internal/modules/chat/domain"
	chatService "github.com/reshetovitsme/tgtypes/internal/modules/chat/service"
	messageService "github.com/reshetovitsme/tgtypes/internal/modules/message/service"
	"github.com/reshetovitsme/tgtypes/internal/shared/config"
	"github.com/reshetovitsme/tgtypes/internal/shared/errors"
	"github.com/reshetovitsme/tgtypes/pkg/payloads"
	"github.com/reshetovitsme/tgtypes/pkg/types"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Handler handles Telegram bot interactions
type Handler struct {
	cfg            *config.Config
	chatService    *chatService.Service
	messageService *messageService.Service
}

// New creates a new Telegram handler
func New(cfg *config.Config, chatService *chatService.Service, messageService *messageService.Service) *Handler {
	return &Handler{
		cfg:            cfg,
		chatService:    chatService,
		messageService: messageService,
	}
}

type command struct {
	types.BotCommand
	match   bot.MatchType
	handler bot.HandlerFunc
}

func (h *Handler) commands() []command {
	return []command{
		{types.BotCommand{Command: "start", Description: "Show usage"}, bot.MatchTypeExact, h.handleStart},
		{types.BotCommand{Command: "help", Description: "Show usage"}, bot.MatchTypeExact, h.handleStart},
		{types.BotCommand{Command: "watch", Description: "Store messages of this or another chat"}, bot.MatchTypePrefix, h.handleWatch},
		{types.BotCommand{Command: "unwatch", Description: "Stop storing messages of a chat"}, bot.MatchTypePrefix, h.handleUnwatch},
		{types.BotCommand{Command: "pause", Description: "Stop storing messages of a chat for now"}, bot.MatchTypePrefix, h.handleSetActive(false)},
		{types.BotCommand{Command: "resume", Description: "Resume storing messages of a chat"}, bot.MatchTypePrefix, h.handleSetActive(true)},
		{types.BotCommand{Command: "chats", Description: "List watched chats"}, bot.MatchTypeExact, h.handleListChats},
		{types.BotCommand{Command: "addfilter", Description: "Add a filter to a chat"}, bot.MatchTypePrefix, h.handleAddFilter},
		{types.BotCommand{Command: "removefilter", Description: "Remove a filter from a chat"}, bot.MatchTypePrefix, h.handleRemoveFilter},
		{types.BotCommand{Command: "rsslink", Description: "Get feed links"}, bot.MatchTypePrefix, h.handleRSSLink},
		{types.BotCommand{Command: "link", Description: "Reply to a message to get its link"}, bot.MatchTypeExact, h.handleLink},
		{types.BotCommand{Command: "kind", Description: "Reply to a message to see how it is classified"}, bot.MatchTypeExact, h.handleKind},
	}
}

// RegisterCommands registers bot command handlers and publishes the command
// list to Telegram.
func (h *Handler) RegisterCommands(ctx context.Context, b *bot.Bot) error {
	for _, c := range h.commands() {
		b.RegisterHandler(bot.HandlerTypeMessageText, "/"+c.Command, c.match, c.handler)
	}

	menu, err := h.menu()
	if err != nil {
		return err
	}

	_, err = b.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: lo.Map(menu.Commands, func(c types.BotCommand, _ int) models.BotCommand {
			return models.BotCommand{Command: c.Command, Description: c.Description}
		}),
	})
	if err != nil {
		return oops.With("context", "failed to publish bot commands").Wrap(err)
	}
	return nil
}

// menu is the published command list, validated against the Bot API limits.
func (h *Handler) menu() (*payloads.SetMyCommands, error) {
	menu := payloads.NewSetMyCommands(lo.Map(h.commands(), func(c command, _ int) types.BotCommand {
		return c.BotCommand
	})...)
	if err := payloads.Validate(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// HandleUpdate ingests every message the bot sees that is not a command
func (h *Handler) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg, _ := lo.Find([]*models.Message{
		update.ChannelPost,
		update.EditedChannelPost,
		update.Message,
		update.EditedMessage,
	}, func(m *models.Message) bool { return m != nil })
	if msg == nil {
		return
	}

	h.ingest(msg)
}

func (h *Handler) ingest(msg *models.Message) {
	raw, err := toWire(msg)
	if err != nil {
		slog.Error("Error encoding message", "error", err, "chat_id", msg.Chat.ID, "message_id", msg.ID)
		return
	}

	result, err := h.messageService.Ingest(raw)
	if err != nil {
		slog.Error("Error processing message", "error", err, "chat_id", msg.Chat.ID, "message_id", msg.ID)
		return
	}

	if result.Stored {
		slog.Info("New message", "chat", result.ChatName, "chat_id", result.ChatID, "message_id", result.ID, "kind", result.Kind, "media", result.Media)
	}
}

func (h *Handler) reply(ctx context.Context, b *bot.Bot, update *models.Update, text string) {
	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	}); err != nil {
		slog.Error("Failed to send reply", "error", err, "chat_id", update.Message.Chat.ID)
	}
}

// authorize replies with a refusal when the sender may not manage chats.
func (h *Handler) authorize(ctx context.Context, b *bot.Bot, update *models.Update) bool {
	err := h.checkAccess(update.Message.From)
	if err == nil {
		return true
	}
	slog.Warn("Rejected command", "error", err, "chat_id", update.Message.Chat.ID)
	h.reply(ctx, b, update, "❌ Unauthorized")
	return false
}

func (h *Handler) checkAccess(from *models.User) error {
	if from == nil {
		return errors.ErrUnauthorized
	}
	if !h.cfg.IsAllowed(from.ID) {
		return oops.With("user_id", from.ID).Wrap(errors.ErrUnauthorized)
	}
	return nil
}

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.authorize(ctx, b, update) {
		return
	}

	var text strings.Builder
	text.WriteString("👋 I store messages of watched chats and publish them as feeds.\n\nAvailable commands:\n")
	for _, c := range h.commands() {
		fmt.Fprintf(&text, "/%s - %s\n", c.Command, c.Description)
	}
	text.WriteString(`
Examples:
/watch @example_channel
/addfilter -1001234567890 keywords golang,release
/addfilter -1001234567890 kind photo,video`)

	h.reply(ctx, b, update, text.String())
}

func (h *Handler) handleWatch(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.authorize(ctx, b, update) {
		return
	}

	var (
		chat types.Chat
		err  error
	)
	parts := strings.Fields(update.Message.Text)
	if len(parts) < 2 {
		if update.Message.Chat.Type == "private" {
			h.reply(ctx, b, update, "Usage: /watch <@username|chat_id>\nOr send /watch inside the group to watch.")
			return
		}
		chat, err = toChat(update.Message.Chat)
	} else {
		info, getErr := b.GetChat(ctx, &bot.GetChatParams{ChatID: parseRecipient(parts[1]).String()})
		if err = getErr; err == nil {
			chat, err = toChat(info)
		}
	}
	if err != nil {
		h.reply(ctx, b, update, fmt.Sprintf("❌ Failed to get chat info: %v\nMake sure the bot is a member of the chat.", err))
		return
	}

	watched, err := h.chatService.Watch(chat, update.Message.From.ID)
	if err != nil {
		h.reply(ctx, b, update, fmt.Sprintf("❌ Failed to watch chat: %v", err))
		return
	}

	h.reply(ctx, b, update, fmt.Sprintf("✅ Watching %s (%s)\nFeed: %s", watched.Title, watched.ID, h.feedURL(watched.ID)))
}

func (h *Handler) handleUnwatch(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.authorize(ctx, b, update) {
		return
	}

	chatID, ok := h.chatArg(ctx, b, update, "Usage: /unwatch <chat_id>")
	if !ok {
		return
	}

	if err := h.chatService.Unwatch(chatID); err != nil {
		h.reply(ctx, b, update, fmt.Sprintf("❌ Failed to unwatch chat: %v", err))
		return
	}

	h.reply(ctx, b, update, fmt.Sprintf("✅ Chat %s removed", chatID))
}

func (h *Handler) handleSetActive(active bool) bot.HandlerFunc {
	usage := lo.Ternary(active, "Usage: /resume <chat_id>", "Usage: /pause <chat_id>")
	done := lo.Ternary(active, "resumed", "paused")

	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if !h.authorize(ctx, b, update) {
			return
		}

		chatID, ok := h.chatArg(ctx, b, update, usage)
		if !ok {
			return
		}

		if err := h.chatService.SetActive(chatID, active); err != nil {
			h.reply(ctx, b, update, fmt.Sprintf("❌ Failed to update chat: %v", err))
			return
		}

		h.reply(ctx, b, update, fmt.Sprintf("✅ Chat %s %s", chatID, done))
	}
}

func (h *Handler) handleListChats(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.authorize(ctx, b, update) {
		return
	}

	chats, err := h.chatService.GetAllChats()
	if err != nil {
		h.reply(ctx, b, update, fmt.Sprintf("❌ Failed to get chats: %v", err))
		return
	}
	if len(chats) == 0 {
		h.reply(ctx, b, update, "No chats are watched yet. Use /watch to add one.")
		return
	}

	var text strings.Builder
	text.WriteString("📋 Watched chats:\n\n")
	for _, chat := range chats {
		status := lo.Ternary(chat.IsActive, "✅", "⏸")
		fmt.Fprintf(&text, "%s %s (%s)\nID: %s\nFilters: %d\n\n", status, chat.Title, chat.Type, chat.ID, len(chat.Filters))
	}

	h.reply(ctx, b, update, text.String())
}

func (h *Handler) handleAddFilter(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.authorize(ctx, b, update) {
		return
	}

	usage := "Usage: /addfilter <chat_id> <" + strings.Join(chatDomain.FilterTypeNames(), "|") + "> <value1,value2>"
	parts := strings.Fields(update.Message.Text)
	if len(parts) < 4 {
		h.reply(ctx, b, update, usage)
		return
	}

	chatID, err := parseChatID(parts[1])
	if err != nil {
		h.reply(ctx, b, update, usage)
		return
	}
	filterType, err := chatDomain.ParseFilterType(parts[2])
	if err != nil {
		h.reply(ctx, b, update, fmt.Sprintf("❌ %v\n%s", err, usage))
		return
	}

	values := lo.Compact(lo.Map(strings.Split(strings.Join(parts[3:], " "), ","), func(v string, _ int) string {
		return strings.TrimSpace(v)
	}))
	filter := chatDomain.Filter{Type: filterType, Values: values, Enabled: true}

	if err := h.chatService.AddFilter(chatID, filter); err != nil {
		h.reply(ctx, b, update, fmt.Sprintf("❌ Failed to add filter: %v", err))
		return
	}

	h.reply(ctx, b, update, fmt.Sprintf("✅ Filter added to chat %s: %s %s", chatID, filterType, strings.Join(values, ", ")))
}

func (h *Handler) handleRemoveFilter(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.authorize(ctx, b, update) {
		return
	}

	parts := strings.Fields(update.Message.Text)
	if len(parts) < 3 {
		h.reply(ctx, b, update, "Usage: /removefilter <chat_id> <filter_index>")
		return
	}

	chatID, err := parseChatID(parts[1])
	if err != nil {
		h.reply(ctx, b, update, "❌ Invalid chat id")
		return
	}
	index, err := strconv.Atoi(parts[2])
	if err != nil {
		h.reply(ctx, b, update, "❌ Invalid filter index")
		return
	}

	if err := h.chatService.RemoveFilter(chatID, index); err != nil {
		h.reply(ctx, b, update, fmt.Sprintf("❌ Failed to remove filter: %v", err))
		return
	}

	h.reply(ctx, b, update, fmt.Sprintf("✅ Filter %d removed from chat %s", index, chatID))
}

func (h *Handler) handleRSSLink(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.authorize(ctx, b, update) {
		return
	}

	parts := strings.Fields(update.Message.Text)
	if len(parts) < 2 {
		chats, err := h.chatService.GetAllChats()
		if err != nil {
			h.reply(ctx, b, update, fmt.Sprintf("❌ Failed to get chats: %v", err))
			return
		}

		var text strings.Builder
		text.WriteString("🔗 Feed Links:\n\n")
		for _, chat := range chats {
			fmt.Fprintf(&text, "%s:\n%s\n\n", chat.Title, h.feedURL(chat.ID))
		}
		h.reply(ctx, b, update, text.String())
		return
	}

	chatID, err := parseChatID(parts[1])
	if err != nil {
		h.reply(ctx, b, update, "❌ Invalid chat id")
		return
	}
	chat, err := h.chatService.GetChat(chatID)
	if err != nil {
		h.reply(ctx, b, update, fmt.Sprintf("❌ Chat not found: %s", chatID))
		return
	}

	h.reply(ctx, b, update, fmt.Sprintf("🔗 Feed for %s:\n%s", chat.Title, h.feedURL(chat.ID)))
}

func (h *Handler) handleLink(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg, ok := h.repliedTo(ctx, b, update, "/link")
	if !ok {
		return
	}

	u := msg.URL()
	if u == nil {
		h.reply(ctx, b, update, fmt.Sprintf("❌ %v: only channels and supergroups have message links", errors.ErrNoPermalink))
		return
	}
	h.reply(ctx, b, update, u.String())
}

func (h *Handler) handleKind(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg, ok := h.repliedTo(ctx, b, update, "/kind")
	if !ok {
		return
	}

	text := fmt.Sprintf("Kind: %s", msg.KindName())
	if media, ok := msg.MediaKindName(); ok {
		text += fmt.Sprintf("\nMedia: %s", media)
	}
	if groupID, ok := msg.MediaGroupID(); ok {
		text += fmt.Sprintf("\nMedia group: %s", groupID)
	}
	if forward := msg.Forward(); forward != nil {
		text += fmt.Sprintf("\nForwarded: %s", forward.Date.UTC().Format("2006-01-02 15:04"))
	}
	h.reply(ctx, b, update, text)
}

// repliedTo decodes the message the command replies to.
func (h *Handler) repliedTo(ctx context.Context, b *bot.Bot, update *models.Update, name string) (*types.Message, bool) {
	if update.Message.ReplyToMessage == nil {
		h.reply(ctx, b, update, fmt.Sprintf("Reply to a message with %s", name))
		return nil, false
	}

	msg, err := toMessage(update.Message.ReplyToMessage)
	if err != nil {
		h.reply(ctx, b, update, fmt.Sprintf("❌ Failed to decode message: %v", err))
		return nil, false
	}
	return msg, true
}

func (h *Handler) chatArg(ctx context.Context, b *bot.Bot, update *models.Update, usage string) (types.ChatID, bool) {
	parts := strings.Fields(update.Message.Text)
	if len(parts) < 2 {
		h.reply(ctx, b, update, usage)
		return 0, false
	}
	chatID, err := parseChatID(parts[1])
	if err != nil {
		h.reply(ctx, b, update, usage)
		return 0, false
	}
	return chatID, true
}

func (h *Handler) feedURL(chatID types.ChatID) string {
	return fmt.Sprintf("%s/rss/%s", h.cfg.BaseURL(), chatID)
}

func parseChatID(s string) (types.ChatID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, oops.With("chat_id", s).Wrap(err)
	}
	return types.ChatID(id), nil
}

// parseRecipient accepts a numeric chat id or a public "@username".
func parseRecipient(s string) types.Recipient {
	if id, err := parseChatID(s); err == nil {
		return types.ChatRecipient(id)
	}
	return types.ChannelRecipient(s)
}
