package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshetovitsme/tgtypes/pkg/types"
)

func TestMessage_URL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		chat types.Chat
		want string
	}{
		{
			name: "private chat",
			chat: types.Chat{ID: 250918540, Type: types.ChatTypePrivate, Username: "aka_dude"},
		},
		{
			name: "basic group",
			chat: types.Chat{ID: -599075523, Type: types.ChatTypeGroup, Title: "test"},
		},
		{
			name: "public supergroup",
			chat: types.Chat{ID: -1000000000123, Type: types.ChatTypeSupergroup, Username: "foo"},
			want: "https://t.me/foo/42/",
		},
		{
			name: "private supergroup",
			chat: types.Chat{ID: -1000000000123, Type: types.ChatTypeSupergroup},
			want: "https://t.me/c/123/42/",
		},
		{
			name: "private channel",
			chat: types.Chat{ID: -1001160242915, Type: types.ChatTypeChannel},
			want: "https://t.me/c/1160242915/42/",
		},
		{
			name: "malformed id",
			chat: types.Chat{ID: -1 << 62, Type: types.ChatTypeSupergroup},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := &types.Message{ID: 42, Chat: tt.chat, Kind: &types.MessageCommon{Media: &types.MediaText{Text: "x"}}}
			u := m.URL()
			if tt.want == "" {
				assert.Nil(t, u)
				return
			}
			require.NotNil(t, u)
			assert.Equal(t, tt.want, u.String())
		})
	}

	var nilMessage *types.Message
	assert.Nil(t, nilMessage.URL())
}
