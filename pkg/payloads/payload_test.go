package payloads_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshetovitsme/tgtypes/pkg/payloads"
	"github.com/reshetovitsme/tgtypes/pkg/types"
)

type fakeRequester struct {
	method   string
	body     []byte
	response string
	err      error
}

func (f *fakeRequester) Do(_ context.Context, method string, body []byte) ([]byte, error) {
	f.method = method
	f.body = body
	return []byte(f.response), f.err
}

const sentMessage = `{"message_id":5,"date":1600000000,"chat":{"id":-1000000000123,"type":"channel","title":"c"},
	"sticker":{"file_id":"s","file_unique_id":"su","width":512,"height":512,"is_animated":false,"is_video":false}}`

func TestSendSticker(t *testing.T) {
	t.Parallel()

	rq := &fakeRequester{response: `{"ok":true,"result":` + sentMessage + `}`}

	msg, err := payloads.NewSendSticker(types.ChannelRecipient("news"), types.FileID("s")).
		WithDisableNotification(true).
		WithReplyMarkup(types.NewInlineKeyboard().Append(types.InlineKeyboardCallback("like", "+1"))).
		Send(context.Background(), rq)
	require.NoError(t, err)

	assert.Equal(t, "sendSticker", rq.method)
	assert.JSONEq(t, `{
		"chat_id": "@news",
		"sticker": "s",
		"disable_notification": true,
		"reply_markup": {"inline_keyboard": [[{"text": "like", "callback_data": "+1"}]]}
	}`, string(rq.body))

	require.NotNil(t, msg.Sticker())
	assert.Equal(t, "s", msg.Sticker().FileID)
}

func TestSendMediaGroup(t *testing.T) {
	t.Parallel()

	rq := &fakeRequester{response: `{"ok":true,"result":[` + sentMessage + `,` + sentMessage + `]}`}

	photo, err := url.Parse("https://example.com/a.jpg")
	require.NoError(t, err)

	msgs, err := payloads.NewSendMediaGroup(types.ChatRecipient(-1000000000123),
		types.NewInputMedia(types.InputMediaPhoto, types.FileURL(photo)).WithCaption("first"),
		types.NewInputMedia(types.InputMediaPhoto, types.FileID("abc")),
	).WithReplyToMessageID(4).Send(context.Background(), rq)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	assert.Equal(t, "sendMediaGroup", rq.method)
	assert.JSONEq(t, `{
		"chat_id": -1000000000123,
		"media": [
			{"type": "photo", "media": "https://example.com/a.jpg", "caption": "first"},
			{"type": "photo", "media": "abc"}
		],
		"reply_to_message_id": 4
	}`, string(rq.body))
}

func TestSendMediaGroup_Validation(t *testing.T) {
	t.Parallel()

	rq := &fakeRequester{}
	_, err := payloads.NewSendMediaGroup(types.ChatRecipient(1),
		types.NewInputMedia(types.InputMediaPhoto, types.FileID("only")),
	).Send(context.Background(), rq)
	require.Error(t, err)
	assert.Empty(t, rq.method, "invalid payloads are not sent")
}

func TestSetGameScoreInline(t *testing.T) {
	t.Parallel()

	rq := &fakeRequester{response: `{"ok":true,"result":` + sentMessage + `}`}

	_, err := payloads.NewSetGameScoreInline(7, 100, "inline-1").WithForce(true).Send(context.Background(), rq)
	require.NoError(t, err)
	assert.Equal(t, "setGameScore", rq.method)
	assert.JSONEq(t, `{"user_id":7,"score":100,"inline_message_id":"inline-1","force":true}`, string(rq.body))

	_, err = payloads.NewSetGameScoreInline(7, 100, "").Send(context.Background(), rq)
	assert.Error(t, err)
}

func TestSetMyCommands(t *testing.T) {
	t.Parallel()

	rq := &fakeRequester{response: `{"ok":true,"result":true}`}

	ok, err := payloads.NewSetMyCommands(
		types.BotCommand{Command: "watch", Description: "watch this chat"},
		types.BotCommand{Command: "link", Description: "link to a message"},
	).Send(context.Background(), rq)
	require.NoError(t, err)
	assert.True(t, ok)

	var body struct {
		Commands []types.BotCommand `json:"commands"`
	}
	require.NoError(t, json.Unmarshal(rq.body, &body))
	assert.Len(t, body.Commands, 2)

	_, err = payloads.NewSetMyCommands(types.BotCommand{Command: "empty"}).Send(context.Background(), rq)
	assert.Error(t, err)
}

func TestDecodeResponse_APIError(t *testing.T) {
	t.Parallel()

	_, err := payloads.DecodeResponse[bool]([]byte(`{
		"ok": false,
		"error_code": 429,
		"description": "Too Many Requests: retry after 5",
		"parameters": {"retry_after": 5}
	}`))

	var apiErr *payloads.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 429, apiErr.Code)
	assert.Equal(t, 5*time.Second, apiErr.RetryAfter)

	_, err = payloads.DecodeResponse[bool]([]byte(`{
		"ok": false,
		"error_code": 400,
		"description": "Bad Request: group chat was upgraded to a supergroup chat",
		"parameters": {"migrate_to_chat_id": -1001555296434}
	}`))
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, types.ChatID(-1001555296434), apiErr.MigrateToChatID)
}

func TestSend_TransportError(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	rq := &fakeRequester{err: boom}

	_, err := payloads.NewSetMyCommands().Send(context.Background(), rq)
	assert.ErrorIs(t, err, boom)
}
