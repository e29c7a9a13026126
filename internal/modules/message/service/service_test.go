package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshetovitsme/tgtypes/internal/modules/message/repository"
	"github.com/reshetovitsme/tgtypes/internal/shared/errors"
	"github.com/reshetovitsme/tgtypes/pkg/types"
)

type stubProcessor struct {
	err  error
	seen []*types.Message
	repo repository.Repository
}

func (p *stubProcessor) ProcessMessage(msg *types.Message) error {
	p.seen = append(p.seen, msg)
	if p.err != nil {
		return p.err
	}
	return p.repo.SaveMessage(msg)
}

const channelPost = `{"message_id":42,"date":1714564800,
	"chat":{"id":-1001234567890,"title":"Go News","username":"gonews","type":"channel"},
	"video":{"file_id":"vid","file_unique_id":"v","width":640,"height":360,"duration":12},"caption":"demo"}`

const privatePost = `{"message_id":3,"date":1714564800,
	"chat":{"id":250918540,"first_name":"Ada","type":"private"},
	"from":{"id":250918540,"is_bot":false,"first_name":"Ada"},"text":"hi"}`

func newService(t *testing.T, err error) (*Service, *stubProcessor) {
	t.Helper()

	repo, repoErr := repository.NewFileStorage(t.TempDir())
	require.NoError(t, repoErr)
	p := &stubProcessor{err: err, repo: repo}
	return New(repo, p), p
}

func TestIngest_Stored(t *testing.T) {
	svc, p := newService(t, nil)

	result, err := svc.Ingest([]byte(channelPost))
	require.NoError(t, err)
	require.Len(t, p.seen, 1)

	assert.True(t, result.Stored)
	assert.Empty(t, result.Reason)
	assert.Equal(t, types.MessageKindNameCommon, result.Kind)
	assert.Equal(t, types.MediaKindNameVideo, result.Media)
	assert.Equal(t, "demo", result.Text)

	stored, err := svc.GetMessage(-1001234567890, 42)
	require.NoError(t, err)
	assert.NotNil(t, stored.Video())

	link, err := svc.Permalink(-1001234567890, 42)
	require.NoError(t, err)
	assert.Contains(t, link, "https://t.me/gonews/42")
}

func TestIngest_NotStored(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		reason string
	}{
		{name: "unwatched", err: errors.ErrChatNotFound, reason: "not_watched"},
		{name: "paused", err: errors.ErrChatInactive, reason: "inactive"},
		{name: "filtered", err: errors.ErrFiltered, reason: "filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t, tt.err)

			result, err := svc.Ingest([]byte(channelPost))
			require.NoError(t, err)
			assert.False(t, result.Stored)
			assert.Equal(t, tt.reason, result.Reason)
		})
	}
}

func TestIngest_StorageFailure(t *testing.T) {
	boom := assert.AnError
	svc, _ := newService(t, boom)

	_, err := svc.Ingest([]byte(channelPost))
	assert.ErrorIs(t, err, boom)
}

func TestIngest_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		key  string
		kind error
	}{
		{name: "not json", raw: `{"message_id":`},
		{name: "missing chat", raw: `{"message_id":1,"date":1714564800,"text":"x"}`, key: "chat"},
		{name: "unknown content", raw: `{"message_id":1,"date":1714564800,"chat":{"id":1,"first_name":"A","type":"private"},"hologram":{}}`, kind: types.ErrNoMatchingKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, p := newService(t, nil)

			_, err := svc.Ingest([]byte(tt.raw))
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidMessage)
			assert.Empty(t, p.seen)

			if tt.key != "" {
				var fieldErr *types.FieldError
				require.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, tt.key, fieldErr.Key)
			}
			if tt.kind != nil {
				assert.ErrorIs(t, err, tt.kind)
			}
		})
	}
}

func TestPermalink_PrivateChat(t *testing.T) {
	svc, _ := newService(t, nil)

	_, err := svc.Ingest([]byte(privatePost))
	require.NoError(t, err)

	_, err = svc.Permalink(250918540, 3)
	assert.ErrorIs(t, err, errors.ErrNoPermalink)
}
