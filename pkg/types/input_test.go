package types_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshetovitsme/tgtypes/pkg/types"
)

func TestInlineQueryResultLocation_JSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *types.InlineQueryResultLocation
		want   string
	}{
		{
			name:   "location only",
			result: types.NewInlineQueryResultLocation("1", "Office", 52.5, 13.4),
			want:   `{"type":"location","id":"1","title":"Office","latitude":52.5,"longitude":13.4}`,
		},
		{
			name: "text content",
			result: types.NewInlineQueryResultLocation("2", "Office", 52.5, 13.4).
				WithLivePeriod(60).
				WithInputMessageContent(&types.InputTextMessageContent{MessageText: "meet here", ParseMode: types.ParseModeHTML}),
			want: `{"type":"location","id":"2","title":"Office","latitude":52.5,"longitude":13.4,"live_period":60,
				"input_message_content":{"message_text":"meet here","parse_mode":"HTML"}}`,
		},
		{
			name: "location content",
			result: types.NewInlineQueryResultLocation("3", "Office", 52.5, 13.4).
				WithInputMessageContent(&types.InputLocationMessageContent{Latitude: 0, Longitude: 13.4}),
			want: `{"type":"location","id":"3","title":"Office","latitude":52.5,"longitude":13.4,
				"input_message_content":{"latitude":0,"longitude":13.4}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.result)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(out))

			var decoded types.InlineQueryResultLocation
			require.NoError(t, json.Unmarshal(out, &decoded))
			assert.Equal(t, *tt.result, decoded)
		})
	}
}

func TestInlineQueryResultLocation_DecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw string
		key string
	}{
		{`{"type":"venue","id":"1","title":"x","latitude":1,"longitude":2}`, "type"},
		{`{"id":"1","title":"x","latitude":1,"longitude":2}`, "type"},
		{`{"type":"location","id":"1","title":"x","latitude":1,"longitude":2,"input_message_content":{"foo":1}}`, "input_message_content"},
	}

	for _, tt := range tests {
		var r types.InlineQueryResultLocation
		err := json.Unmarshal([]byte(tt.raw), &r)

		var fieldErr *types.FieldError
		require.True(t, errors.As(err, &fieldErr), tt.raw)
		assert.Equal(t, tt.key, fieldErr.Key, tt.raw)
	}
}
