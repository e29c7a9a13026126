package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshetovitsme/tgtypes/pkg/types"
)

func TestChatID_ToBare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   types.ChatID
		kind types.BareChatKind
		bare uint64
		ok   bool
	}{
		{id: 250918540, kind: types.BareChatKindUser, bare: 250918540, ok: true},
		{id: 0, kind: types.BareChatKindUser, bare: 0, ok: true},
		{id: -1, kind: types.BareChatKindGroup, bare: 1, ok: true},
		{id: -599075523, kind: types.BareChatKindGroup, bare: 599075523, ok: true},
		{id: -999999999999, kind: types.BareChatKindGroup, bare: 999999999999, ok: true},
		{id: -1000000000000, kind: types.BareChatKindChannel, bare: 0, ok: true},
		{id: -1000000000123, kind: types.BareChatKindChannel, bare: 123, ok: true},
		{id: -1001555296434, kind: types.BareChatKindChannel, bare: 1555296434, ok: true},
		{id: 1 << 40, ok: false},
		{id: -1 << 62, ok: false},
	}

	for _, tt := range tests {
		bare, ok := tt.id.ToBare()
		require.Equal(t, tt.ok, ok, tt.id.String())
		if !ok {
			continue
		}
		assert.Equal(t, types.BareChatID{Kind: tt.kind, ID: tt.bare}, bare, tt.id.String())
	}

	assert.True(t, types.ChatID(1).IsUser())
	assert.True(t, types.ChatID(-5).IsGroup())
	assert.True(t, types.ChatID(-1001555296434).IsChannelOrSupergroup())
}

func TestRecipient_JSON(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(types.ChannelRecipient("news"))
	require.NoError(t, err)
	assert.JSONEq(t, `"@news"`, string(out))

	out, err = json.Marshal(types.ChatRecipient(-100123))
	require.NoError(t, err)
	assert.JSONEq(t, `-100123`, string(out))

	var r types.Recipient
	require.NoError(t, json.Unmarshal([]byte(`"@news"`), &r))
	assert.Equal(t, "@news", r.String())

	require.NoError(t, json.Unmarshal([]byte(`42`), &r))
	assert.Equal(t, types.ChatRecipient(42), r)
}

func TestUser_ServiceAccounts(t *testing.T) {
	t.Parallel()

	assert.True(t, types.User{ID: 1087968824}.IsAnonymous())
	assert.True(t, types.User{ID: 136817688}.IsChannel())
	assert.True(t, types.User{ID: 777000}.IsTelegram())
	assert.False(t, types.User{ID: 42}.IsAnonymous())
	assert.Equal(t, "tg://user/?id=42", types.UserID(42).URL().String())
}
