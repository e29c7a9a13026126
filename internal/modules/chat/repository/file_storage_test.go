package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshetovitsme/tgtypes/internal/modules/chat/domain"
	"github.com/reshetovitsme/tgtypes/internal/shared/errors"
	"github.com/reshetovitsme/tgtypes/pkg/types"
)

func newChat(id types.ChatID, title string, addedAt time.Time) *domain.WatchedChat {
	return domain.NewWatchedChat(types.Chat{ID: id, Type: types.ChatTypeChannel, Title: title}, 1, addedAt)
}

func TestFileStorage_SaveAndGet(t *testing.T) {
	repo, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	added := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	chat := newChat(-1001, "News", added)
	chat.Filters = []domain.Filter{{Type: domain.FilterTypeKind, Values: []string{"photo"}, Enabled: true}}
	require.NoError(t, repo.SaveChat(chat))

	got, err := repo.GetChat(-1001)
	require.NoError(t, err)
	assert.Equal(t, "News", got.Title)
	assert.Equal(t, types.ChatTypeChannel, got.Type)
	assert.True(t, got.AddedAt.Equal(added))
	assert.Equal(t, chat.Filters, got.Filters)
	assert.True(t, got.IsActive)
}

func TestFileStorage_GetMissing(t *testing.T) {
	repo, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	_, err = repo.GetChat(-1002)
	assert.True(t, errors.Is(err, errors.ErrChatNotFound))

	err = repo.DeleteChat(-1002)
	assert.True(t, errors.Is(err, errors.ErrChatNotFound))
}

func TestFileStorage_GetAllChatsOrderedByAddedAt(t *testing.T) {
	repo, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveChat(newChat(-3, "third", base.Add(2*time.Hour))))
	require.NoError(t, repo.SaveChat(newChat(-1, "first", base)))
	require.NoError(t, repo.SaveChat(newChat(-2, "second", base.Add(time.Hour))))

	chats, err := repo.GetAllChats()
	require.NoError(t, err)
	require.Len(t, chats, 3)
	assert.Equal(t, "first", chats[0].Title)
	assert.Equal(t, "second", chats[1].Title)
	assert.Equal(t, "third", chats[2].Title)

	require.NoError(t, repo.DeleteChat(-2))
	chats, err = repo.GetAllChats()
	require.NoError(t, err)
	assert.Len(t, chats, 2)
}
