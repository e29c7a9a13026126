package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatRepo "github.com/reshetovitsme/tgtypes/internal/modules/chat/repository"
	chatService "github.com/reshetovitsme/tgtypes/internal/modules/chat/service"
	feedService "github.com/reshetovitsme/tgtypes/internal/modules/feed/service"
	messageRepo "github.com/reshetovitsme/tgtypes/internal/modules/message/repository"
	messageService "github.com/reshetovitsme/tgtypes/internal/modules/message/service"
	"github.com/reshetovitsme/tgtypes/internal/shared/config"
	"github.com/reshetovitsme/tgtypes/pkg/types"
)

var goNews = types.Chat{ID: -1001234567890, Type: types.ChatTypeChannel, Title: "Go News", Username: "gonews"}

const goNewsPost = `{"message_id":7,"date":1714564800,
	"chat":{"id":-1001234567890,"title":"Go News","username":"gonews","type":"channel"},
	"text":"Go 1.23 is out"}`

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	return newServer(t).Handler()
}

func newServer(t *testing.T) *Server {
	t.Helper()

	dir := t.TempDir()
	chats, err := chatRepo.NewFileStorage(dir)
	require.NoError(t, err)
	messages, err := messageRepo.NewFileStorage(dir)
	require.NoError(t, err)

	cfg := &config.Config{HTTPPort: "0", FeedLimit: 50}
	chatSvc := chatService.New(cfg, chats, messages)
	t.Cleanup(chatSvc.Stop)

	_, err = chatSvc.Watch(goNews, 1)
	require.NoError(t, err)

	return New(cfg,
		feedService.New(cfg, chats, messages),
		messageService.New(messages, chatSvc),
		chatSvc,
	)
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIngest(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		key    string
	}{
		{name: "stored", body: goNewsPost, status: http.StatusCreated},
		{
			name:   "unwatched chat",
			body:   `{"message_id":1,"date":1714564800,"chat":{"id":-4012345,"title":"Friends","type":"group"},"text":"hi"}`,
			status: http.StatusAccepted,
		},
		{name: "malformed json", body: `{"message_id":`, status: http.StatusBadRequest},
		{
			name:   "missing chat",
			body:   `{"message_id":1,"date":1714564800,"text":"hi"}`,
			status: http.StatusUnprocessableEntity,
			key:    "chat",
		},
		{
			name:   "unknown content",
			body:   `{"message_id":1,"date":1714564800,"chat":{"id":-1001234567890,"type":"channel"},"hologram":{}}`,
			status: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestServer(t)
			rec := serve(t, h, http.MethodPost, "/messages", tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			if tt.status >= http.StatusBadRequest {
				var resp errorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Error)
				assert.Equal(t, tt.key, resp.Key)
			}
		})
	}
}

func TestIngest_ResultBody(t *testing.T) {
	h := newTestServer(t)

	rec := serve(t, h, http.MethodPost, "/messages", goNewsPost)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["stored"])
	assert.Equal(t, "common", body["kind"])
	assert.Equal(t, "text", body["media"])
	assert.Equal(t, "https://t.me/gonews/7/", body["link"])
}

func TestMessages(t *testing.T) {
	h := newTestServer(t)
	require.Equal(t, http.StatusCreated, serve(t, h, http.MethodPost, "/messages", goNewsPost).Code)

	t.Run("list", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/chats/-1001234567890/messages?limit=5", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var summaries []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
		require.Len(t, summaries, 1)
		assert.Equal(t, "Go 1.23 is out", summaries[0]["text"])
	})

	t.Run("bad limit", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/chats/-1001234567890/messages?limit=0", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get round trips the wire form", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/chats/-1001234567890/messages/7", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var msg types.Message
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
		text, ok := msg.Text()
		require.True(t, ok)
		assert.Equal(t, "Go 1.23 is out", text)
	})

	t.Run("missing", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/chats/-1001234567890/messages/8", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("since", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/chats/-1001234567890/messages?since=1714564799", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Go 1.23 is out")

		rec = serve(t, h, http.MethodGet, "/chats/-1001234567890/messages?since=1714564800", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())

		rec = serve(t, h, http.MethodGet, "/chats/-1001234567890/messages?since=yesterday", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("link", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/chats/-1001234567890/messages/7/link", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"link":"https://t.me/gonews/7/"}`, rec.Body.String())

		rec = serve(t, h, http.MethodGet, "/chats/-1001234567890/messages/8/link", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad chat id", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/chats/gonews/messages", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFeed(t *testing.T) {
	h := newTestServer(t)
	require.Equal(t, http.StatusCreated, serve(t, h, http.MethodPost, "/messages", goNewsPost).Code)

	tests := []struct {
		name        string
		target      string
		status      int
		contentType string
	}{
		{name: "rss by default", target: "/rss/-1001234567890", status: http.StatusOK, contentType: "application/rss+xml"},
		{name: "atom", target: "/rss/-1001234567890?format=atom", status: http.StatusOK, contentType: "application/atom+xml"},
		{name: "json", target: "/rss/-1001234567890?format=json", status: http.StatusOK, contentType: "application/feed+json"},
		{name: "unknown format", target: "/rss/-1001234567890?format=yaml", status: http.StatusBadRequest},
		{name: "unwatched chat", target: "/rss/-4012345", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, h, http.MethodGet, tt.target, "")
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.contentType != "" {
				assert.Contains(t, rec.Header().Get("Content-Type"), tt.contentType)
				assert.Contains(t, rec.Body.String(), "Go 1.23 is out")
			}
		})
	}
}

func TestListChats(t *testing.T) {
	h := newTestServer(t)

	rec := serve(t, h, http.MethodGet, "/chats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var chats []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chats))
	require.Len(t, chats, 1)
	assert.Equal(t, "Go News", chats[0]["title"])
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestServer(t)

	rec := serve(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = serve(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/rss/")
}

func TestStartAndShutdown(t *testing.T) {
	server := newServer(t)

	done := make(chan error, 1)
	go func() { done <- server.Start() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-ctx.Done():
		t.Fatal("Start did not return after Shutdown")
	}
}

func TestShutdownBeforeStart(t *testing.T) {
	server := newServer(t)
	assert.NoError(t, server.Shutdown(context.Background()))
	assert.NoError(t, server.Start())
}
