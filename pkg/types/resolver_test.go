package types_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/reshetovitsme/tgtypes/pkg/types"
)

func TestMediaKindOrder(t *testing.T) {
	t.Parallel()

	order := lo.Map(types.MediaKindOrder(), func(n types.MediaKindName, _ int) string { return n.String() })
	assert.Equal(t, types.MediaKindNameNames(), order)

	assert.Less(t, lo.IndexOf(order, "venue"), lo.IndexOf(order, "location"))
	assert.Less(t, lo.IndexOf(order, "animation"), lo.IndexOf(order, "document"))
	assert.Equal(t, "migration", order[len(order)-1])
}

func TestMessageKindOrder(t *testing.T) {
	t.Parallel()

	order := lo.Map(types.MessageKindOrder(), func(n types.MessageKindName, _ int) string { return n.String() })
	assert.Equal(t, types.MessageKindNameNames(), order)
	assert.Equal(t, "common", order[0])
}
