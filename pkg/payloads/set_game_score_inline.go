package payloads

import (
	"context"

	"github.com/reshetovitsme/tgtypes/pkg/types"
)

// SetGameScoreInline sets a user's score in a game sent as an inline
// message.
type SetGameScoreInline struct {
	UserID             types.UserID `json:"user_id" validate:"required"`
	Score              uint64       `json:"score"`
	InlineMessageID    string       `json:"inline_message_id" validate:"required"`
	Force              bool         `json:"force,omitempty"`
	DisableEditMessage bool         `json:"disable_edit_message,omitempty"`
}

func NewSetGameScoreInline(userID types.UserID, score uint64, inlineMessageID string) *SetGameScoreInline {
	return &SetGameScoreInline{UserID: userID, Score: score, InlineMessageID: inlineMessageID}
}

// WithForce allows the score to decrease.
func (p *SetGameScoreInline) WithForce(v bool) *SetGameScoreInline {
	p.Force = v
	return p
}

func (p *SetGameScoreInline) WithDisableEditMessage(v bool) *SetGameScoreInline {
	p.DisableEditMessage = v
	return p
}

func (*SetGameScoreInline) Method() string { return "setGameScore" }

func (p *SetGameScoreInline) Send(ctx context.Context, rq Requester) (types.Message, error) {
	return send[types.Message](ctx, rq, p)
}
