package telegram

import (
	"encoding/json"

	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/tgtypes/pkg/types"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// toWire re-encodes a message received by the bot client into the Bot API
// wire form. The client serializes absent optionals as zero values, which
// would otherwise read as present keys, so they are dropped first.
func toWire(msg *models.Message) ([]byte, error) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return nil, oops.In("telegram").With("message_id", msg.ID).Wrap(err)
	}
	return compactWire(raw)
}

// compactWire removes null, false, empty strings and empty arrays from a
// wire object, and objects that only held such values. Objects that are
// empty on input are kept: "video_chat_started":{} is the whole payload of
// its message kind. Zero numbers are dropped from the top level only, where
// they always mean "absent"; nested zeros such as a latitude are data.
func compactWire(raw []byte) ([]byte, error) {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, oops.In("telegram").Wrap(err)
	}

	obj = lo.OmitBy(compactObject(obj), func(_ string, v any) bool {
		n, ok := v.(float64)
		return ok && n == 0
	})

	return json.Marshal(obj)
}

func compactObject(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for key, value := range obj {
		if v, keep := compactValue(value); keep {
			out[key] = v
		}
	}
	return out
}

func compactValue(value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case bool:
		return v, v
	case string:
		return v, v != ""
	case map[string]any:
		if len(v) == 0 {
			return v, true
		}
		obj := compactObject(v)
		return obj, len(obj) > 0
	case []any:
		items := lo.Map(v, func(item any, _ int) any {
			if obj, ok := item.(map[string]any); ok {
				return compactObject(obj)
			}
			return item
		})
		return items, len(items) > 0
	default:
		return v, true
	}
}

// toMessage decodes a client message into the closed message model.
func toMessage(msg *models.Message) (*types.Message, error) {
	raw, err := toWire(msg)
	if err != nil {
		return nil, err
	}

	var out types.Message
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, oops.In("telegram").With("message_id", msg.ID).Wrap(err)
	}
	return &out, nil
}

// toChat converts any client chat representation through its wire form.
func toChat(chat any) (types.Chat, error) {
	raw, err := json.Marshal(chat)
	if err != nil {
		return types.Chat{}, oops.In("telegram").Wrap(err)
	}

	var out types.Chat
	if err := json.Unmarshal(raw, &out); err != nil {
		return types.Chat{}, oops.In("telegram").Wrap(err)
	}
	return out, nil
}
