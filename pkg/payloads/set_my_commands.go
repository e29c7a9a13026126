package payloads

import (
	"context"

	"github.com/reshetovitsme/tgtypes/pkg/types"
)

// SetMyCommands replaces the list of the bot's commands.
type SetMyCommands struct {
	Commands []types.BotCommand `json:"commands" validate:"max=100,dive"`
}

func NewSetMyCommands(commands ...types.BotCommand) *SetMyCommands {
	if commands == nil {
		commands = []types.BotCommand{}
	}
	return &SetMyCommands{Commands: commands}
}

func (*SetMyCommands) Method() string { return "setMyCommands" }

func (p *SetMyCommands) Send(ctx context.Context, rq Requester) (bool, error) {
	return send[bool](ctx, rq, p)
}
