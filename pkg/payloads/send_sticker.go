package payloads

import (
	"context"

	"github.com/reshetovitsme/tgtypes/pkg/types"
)

// SendSticker sends a static .WEBP, animated .TGS or video .WEBM sticker.
type SendSticker struct {
	ChatID              types.Recipient   `json:"chat_id"`
	Sticker             types.InputFile   `json:"sticker"`
	DisableNotification bool              `json:"disable_notification,omitempty"`
	ReplyToMessageID    *int32            `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         types.ReplyMarkup `json:"reply_markup,omitempty"`
}

func NewSendSticker(chatID types.Recipient, sticker types.InputFile) *SendSticker {
	return &SendSticker{ChatID: chatID, Sticker: sticker}
}

func (p *SendSticker) WithDisableNotification(v bool) *SendSticker {
	p.DisableNotification = v
	return p
}

func (p *SendSticker) WithReplyToMessageID(id int32) *SendSticker {
	p.ReplyToMessageID = &id
	return p
}

func (p *SendSticker) WithReplyMarkup(markup types.ReplyMarkup) *SendSticker {
	p.ReplyMarkup = markup
	return p
}

func (*SendSticker) Method() string { return "sendSticker" }

func (p *SendSticker) Send(ctx context.Context, rq Requester) (types.Message, error) {
	return send[types.Message](ctx, rq, p)
}
