package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	chatService "github.com/reshetovitsme/tgtypes/internal/modules/chat/service"
	feedDomain "github.com/reshetovitsme/tgtypes/internal/modules/feed/domain"
	feedService "github.com/reshetovitsme/tgtypes/internal/modules/feed/service"
	messageDomain "github.com/reshetovitsme/tgtypes/internal/modules/message/domain"
	messageService "github.com/reshetovitsme/tgtypes/internal/modules/message/service"
	"github.com/reshetovitsme/tgtypes/internal/shared/config"
	"github.com/reshetovitsme/tgtypes/internal/shared/errors"
	"github.com/reshetovitsme/tgtypes/pkg/types"
	"github.com/samber/lo"
	sloghttp "github.com/samber/slog-http"
)

// maxMessageSize bounds the body of POST /messages.
const maxMessageSize = 1 << 20

// Server exposes ingestion, stored messages and feeds over HTTP
type Server struct {
	cfg            *config.Config
	feedService    *feedService.Service
	messageService *messageService.Service
	chatService    *chatService.Service
	logger         *slog.Logger
	server         *http.Server
}

// New creates a new HTTP server
func New(cfg *config.Config, feedService *feedService.Service, messageService *messageService.Service, chatService *chatService.Service) *Server {
	return &Server{
		cfg:            cfg,
		feedService:    feedService,
		messageService: messageService,
		chatService:    chatService,
		logger:         slog.Default(),
		server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler returns the routed handler wrapped in logging and recovery.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /messages", s.handleIngest)
	mux.HandleFunc("GET /chats", s.handleListChats)
	mux.HandleFunc("GET /chats/{chatID}/messages", s.handleListMessages)
	mux.HandleFunc("GET /chats/{chatID}/messages/{messageID}", s.handleGetMessage)
	mux.HandleFunc("GET /chats/{chatID}/messages/{messageID}/link", s.handleMessageLink)
	mux.HandleFunc("GET /rss/{chatID}", s.handleFeed)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /{$}", s.handleRoot)

	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)
	return handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", "addr", s.server.Addr)

	s.server.Handler = s.Handler()
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
// It may be called from another goroutine than Start, before or after it.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxMessageSize))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, err.Error(), "")
		return
	}

	result, err := s.messageService.Ingest(raw)
	if err != nil {
		var fieldErr *types.FieldError
		switch {
		case errors.As(err, &fieldErr):
			writeError(w, http.StatusUnprocessableEntity, err.Error(), fieldErr.Key)
		case errors.Is(err, types.ErrNoMatchingKind), errors.Is(err, types.ErrAmbiguousKind):
			writeError(w, http.StatusUnprocessableEntity, err.Error(), "")
		case errors.Is(err, errors.ErrInvalidMessage):
			writeError(w, http.StatusBadRequest, err.Error(), "")
		default:
			s.logger.Error("Error ingesting message", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to ingest message", "")
		}
		return
	}

	writeJSON(w, lo.Ternary(result.Stored, http.StatusCreated, http.StatusAccepted), result)
}

func (s *Server) handleListChats(w http.ResponseWriter, r *http.Request) {
	chats, err := s.chatService.GetAllChats()
	if err != nil {
		s.logger.Error("Error listing chats", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list chats", "")
		return
	}
	writeJSON(w, http.StatusOK, chats)
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	chatID, ok := parseChatID(w, r)
	if !ok {
		return
	}

	limit := s.cfg.FeedLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer", "limit")
			return
		}
		limit = n
	}

	var (
		messages []*types.Message
		err      error
	)
	if v := r.URL.Query().Get("since"); v != "" {
		since, parseErr := strconv.ParseInt(v, 10, 64)
		if parseErr != nil {
			writeError(w, http.StatusBadRequest, "since must be a unix timestamp", "since")
			return
		}
		messages, err = s.messageService.GetRecentMessages(chatID, time.Unix(since, 0))
		messages = lo.Slice(messages, 0, limit)
	} else {
		messages, err = s.messageService.GetMessages(chatID, limit)
	}
	if err != nil {
		s.logger.Error("Error listing messages", "chat_id", chatID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list messages", "")
		return
	}

	writeJSON(w, http.StatusOK, lo.Map(messages, func(msg *types.Message, _ int) *messageDomain.Summary {
		return messageDomain.Summarize(msg)
	}))
}

func (s *Server) handleGetMessage(w http.ResponseWriter, r *http.Request) {
	chatID, messageID, ok := parseMessageRef(w, r)
	if !ok {
		return
	}

	msg, err := s.messageService.GetMessage(chatID, messageID)
	if err != nil {
		if errors.Is(err, errors.ErrMessageNotFound) {
			writeError(w, http.StatusNotFound, err.Error(), "")
			return
		}
		s.logger.Error("Error reading message", "chat_id", chatID, "message_id", messageID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read message", "")
		return
	}

	// The stored wire form, so clients decode it with the same types.
	writeJSON(w, http.StatusOK, msg)
}

func (s *Server) handleMessageLink(w http.ResponseWriter, r *http.Request) {
	chatID, messageID, ok := parseMessageRef(w, r)
	if !ok {
		return
	}

	link, err := s.messageService.Permalink(chatID, messageID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"link": link})
	case errors.Is(err, errors.ErrMessageNotFound), errors.Is(err, errors.ErrNoPermalink):
		writeError(w, http.StatusNotFound, err.Error(), "")
	default:
		s.logger.Error("Error building permalink", "chat_id", chatID, "message_id", messageID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to build link", "")
	}
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	chatID, ok := parseChatID(w, r)
	if !ok {
		return
	}

	format := feedDomain.FormatRss
	if v := r.URL.Query().Get("format"); v != "" {
		parsed, err := feedDomain.ParseFormat(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "format")
			return
		}
		format = parsed
	}

	baseURL := fmt.Sprintf("%s://%s", getScheme(r), r.Host)
	feed, err := s.feedService.GenerateFeed(chatID, baseURL)
	if err != nil {
		if errors.Is(err, errors.ErrChatNotFound) {
			writeError(w, http.StatusNotFound, "chat is not watched", "")
			return
		}
		s.logger.Error("Error generating feed", "chat_id", chatID, "error", err)
		http.Error(w, "Failed to generate feed", http.StatusInternalServerError)
		return
	}

	body, err := feedService.Render(feed, format)
	if err != nil {
		s.logger.Error("Error rendering feed", "chat_id", chatID, "format", format, "error", err)
		http.Error(w, "Failed to render feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Telegram Message Feeds</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        .info { background: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0; }
        code { background: #e8e8e8; padding: 2px 6px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>Telegram Message Feeds</h1>
    <div class="info">
        <p>POST Bot API message objects to <code>/messages</code>.</p>
        <p>Feeds of watched chats: <code>/rss/{chatID}</code>, with <code>?format=atom</code> or <code>?format=json</code>.</p>
        <p>Example: <code>/rss/-1001234567890</code></p>
    </div>
    <p><a href="/health">Health Check</a> | <a href="/metrics">Metrics</a></p>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

func parseChatID(w http.ResponseWriter, r *http.Request) (types.ChatID, bool) {
	id, err := strconv.ParseInt(r.PathValue("chatID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chat id", "chatID")
		return 0, false
	}
	return types.ChatID(id), true
}

func parseMessageRef(w http.ResponseWriter, r *http.Request) (types.ChatID, int32, bool) {
	chatID, ok := parseChatID(w, r)
	if !ok {
		return 0, 0, false
	}
	messageID, err := strconv.ParseInt(r.PathValue("messageID"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid message id", "messageID")
		return 0, 0, false
	}
	return chatID, int32(messageID), true
}

type errorResponse struct {
	Error string `json:"error"`
	Key   string `json:"key,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message, key string) {
	writeJSON(w, status, errorResponse{Error: message, Key: key})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error writing response", "error", err)
	}
}

func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
