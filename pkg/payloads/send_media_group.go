package payloads

import (
	"context"

	"github.com/reshetovitsme/tgtypes/pkg/types"
)

// SendMediaGroup sends 2 to 10 photos, videos, documents or audio files as
// an album. Documents and audio files can only be grouped with their own
// type.
type SendMediaGroup struct {
	ChatID              types.Recipient    `json:"chat_id"`
	Media               []types.InputMedia `json:"media" validate:"min=2,max=10"`
	DisableNotification bool               `json:"disable_notification,omitempty"`
	ReplyToMessageID    *int32             `json:"reply_to_message_id,omitempty"`
}

func NewSendMediaGroup(chatID types.Recipient, media ...types.InputMedia) *SendMediaGroup {
	return &SendMediaGroup{ChatID: chatID, Media: media}
}

func (p *SendMediaGroup) WithDisableNotification(v bool) *SendMediaGroup {
	p.DisableNotification = v
	return p
}

func (p *SendMediaGroup) WithReplyToMessageID(id int32) *SendMediaGroup {
	p.ReplyToMessageID = &id
	return p
}

func (*SendMediaGroup) Method() string { return "sendMediaGroup" }

// Send returns the messages of the album.
func (p *SendMediaGroup) Send(ctx context.Context, rq Requester) ([]types.Message, error) {
	return send[[]types.Message](ctx, rq, p)
}
