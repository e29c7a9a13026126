package telegram

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshetovitsme/tgtypes/internal/shared/config"
	"github.com/reshetovitsme/tgtypes/internal/shared/errors"
	"github.com/reshetovitsme/tgtypes/pkg/types"
)

func TestParseRecipient(t *testing.T) {
	assert.Equal(t, types.ChatRecipient(-1001234567890), parseRecipient("-1001234567890"))
	assert.Equal(t, types.ChannelRecipient("gonews"), parseRecipient("gonews"))
	assert.Equal(t, "@gonews", parseRecipient("@gonews").String())

	_, err := parseChatID("gonews")
	assert.Error(t, err)
}

func TestCheckAccess(t *testing.T) {
	open := New(&config.Config{}, nil, nil)
	restricted := New(&config.Config{AllowedUsers: []int64{7}}, nil, nil)

	assert.NoError(t, open.checkAccess(&models.User{ID: 99}))
	assert.NoError(t, restricted.checkAccess(&models.User{ID: 7}))
	assert.ErrorIs(t, restricted.checkAccess(&models.User{ID: 99}), errors.ErrUnauthorized)
	assert.ErrorIs(t, open.checkAccess(nil), errors.ErrUnauthorized)
}

func TestMenu(t *testing.T) {
	h := New(&config.Config{}, nil, nil)

	menu, err := h.menu()
	require.NoError(t, err)
	require.Len(t, menu.Commands, len(h.commands()))

	names := make(map[string]bool)
	for _, c := range menu.Commands {
		assert.False(t, names[c.Command], "duplicate command %s", c.Command)
		names[c.Command] = true
	}
	assert.True(t, names["link"])
	assert.True(t, names["pause"])
}
