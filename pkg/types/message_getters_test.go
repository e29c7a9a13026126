package types_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshetovitsme/tgtypes/pkg/types"
)

var fixedTime = time.Date(2022, 1, 2, 3, 4, 5, 0, time.UTC)

var accessors = map[string]func(m *types.Message) bool{
	"From":                         func(m *types.Message) bool { return m.From() != nil },
	"SenderChat":                   func(m *types.Message) bool { return m.SenderChat() != nil },
	"AuthorSignature":              func(m *types.Message) bool { _, ok := m.AuthorSignature(); return ok },
	"Forward":                      func(m *types.Message) bool { return m.Forward() != nil },
	"ForwardDate":                  func(m *types.Message) bool { _, ok := m.ForwardDate(); return ok },
	"ForwardFrom":                  func(m *types.Message) bool { return m.ForwardFrom() != nil },
	"ForwardFromUser":              func(m *types.Message) bool { return m.ForwardFromUser() != nil },
	"ForwardFromChat":              func(m *types.Message) bool { return m.ForwardFromChat() != nil },
	"ForwardFromSenderName":        func(m *types.Message) bool { _, ok := m.ForwardFromSenderName(); return ok },
	"ForwardFromMessageID":         func(m *types.Message) bool { _, ok := m.ForwardFromMessageID(); return ok },
	"ForwardSignature":             func(m *types.Message) bool { _, ok := m.ForwardSignature(); return ok },
	"ReplyToMessage":               func(m *types.Message) bool { return m.ReplyToMessage() != nil },
	"EditDate":                     func(m *types.Message) bool { _, ok := m.EditDate(); return ok },
	"MediaGroupID":                 func(m *types.Message) bool { _, ok := m.MediaGroupID(); return ok },
	"Text":                         func(m *types.Message) bool { _, ok := m.Text(); return ok },
	"Entities":                     func(m *types.Message) bool { _, ok := m.Entities(); return ok },
	"Caption":                      func(m *types.Message) bool { _, ok := m.Caption(); return ok },
	"CaptionEntities":              func(m *types.Message) bool { _, ok := m.CaptionEntities(); return ok },
	"Animation":                    func(m *types.Message) bool { return m.Animation() != nil },
	"Audio":                        func(m *types.Message) bool { return m.Audio() != nil },
	"Contact":                      func(m *types.Message) bool { return m.Contact() != nil },
	"Document":                     func(m *types.Message) bool { return m.Document() != nil },
	"Game":                         func(m *types.Message) bool { return m.Game() != nil },
	"Venue":                        func(m *types.Message) bool { return m.Venue() != nil },
	"Location":                     func(m *types.Message) bool { return m.Location() != nil },
	"Photo":                        func(m *types.Message) bool { _, ok := m.Photo(); return ok },
	"Poll":                         func(m *types.Message) bool { return m.Poll() != nil },
	"Sticker":                      func(m *types.Message) bool { return m.Sticker() != nil },
	"Video":                        func(m *types.Message) bool { return m.Video() != nil },
	"VideoNote":                    func(m *types.Message) bool { return m.VideoNote() != nil },
	"Voice":                        func(m *types.Message) bool { return m.Voice() != nil },
	"ChatMigration":                func(m *types.Message) bool { _, ok := m.ChatMigration(); return ok },
	"MigrateToChatID":              func(m *types.Message) bool { _, ok := m.MigrateToChatID(); return ok },
	"MigrateFromChatID":            func(m *types.Message) bool { _, ok := m.MigrateFromChatID(); return ok },
	"NewChatMembers":               func(m *types.Message) bool { _, ok := m.NewChatMembers(); return ok },
	"LeftChatMember":               func(m *types.Message) bool { return m.LeftChatMember() != nil },
	"NewChatTitle":                 func(m *types.Message) bool { _, ok := m.NewChatTitle(); return ok },
	"NewChatPhoto":                 func(m *types.Message) bool { _, ok := m.NewChatPhoto(); return ok },
	"DeleteChatPhoto":              func(m *types.Message) bool { return m.DeleteChatPhoto() },
	"GroupChatCreated":             func(m *types.Message) bool { return m.GroupChatCreated() },
	"SupergroupChatCreated":        func(m *types.Message) bool { return m.SupergroupChatCreated() },
	"ChannelChatCreated":           func(m *types.Message) bool { return m.ChannelChatCreated() },
	"AutoDeleteTimerChanged":       func(m *types.Message) bool { return m.AutoDeleteTimerChanged() != nil },
	"PinnedMessage":                func(m *types.Message) bool { return m.PinnedMessage() != nil },
	"Invoice":                      func(m *types.Message) bool { return m.Invoice() != nil },
	"SuccessfulPayment":            func(m *types.Message) bool { return m.SuccessfulPayment() != nil },
	"ConnectedWebsite":             func(m *types.Message) bool { _, ok := m.ConnectedWebsite(); return ok },
	"PassportData":                 func(m *types.Message) bool { return m.PassportData() != nil },
	"Dice":                         func(m *types.Message) bool { return m.Dice() != nil },
	"ProximityAlertTriggered":      func(m *types.Message) bool { return m.ProximityAlertTriggered() != nil },
	"VoiceChatScheduled":           func(m *types.Message) bool { return m.VoiceChatScheduled() != nil },
	"VoiceChatStarted":             func(m *types.Message) bool { return m.VoiceChatStarted() != nil },
	"VoiceChatEnded":               func(m *types.Message) bool { return m.VoiceChatEnded() != nil },
	"VoiceChatParticipantsInvited": func(m *types.Message) bool { return m.VoiceChatParticipantsInvited() != nil },
	"WebAppData":                   func(m *types.Message) bool { return m.WebAppData() != nil },
	"ReplyMarkup":                  func(m *types.Message) bool { return m.ReplyMarkup() != nil },
	"IsAutomaticForward":           func(m *types.Message) bool { return m.IsAutomaticForward() },
	"HasProtectedContent":          func(m *types.Message) bool { return m.HasProtectedContent() },
}

func common(media types.MediaKind) *types.Message {
	return &types.Message{ID: 1, Kind: &types.MessageCommon{Media: media}}
}

func kind(k types.MessageKind) *types.Message {
	return &types.Message{ID: 1, Kind: k}
}

func TestAccessors_PresentExactlyWhenDefined(t *testing.T) {
	t.Parallel()

	bold := []types.MessageEntity{types.NewMessageEntity(types.EntityTypeBold, 0, 1)}

	tests := []struct {
		name string
		msg  *types.Message
		want []string
	}{
		{"nil message", nil, nil},
		{"no kind", &types.Message{}, nil},
		{"text", common(&types.MediaText{Text: "a"}), []string{"Text", "Entities"}},
		{"animation", common(&types.MediaAnimation{Caption: "c"}), []string{"Animation", "Caption", "CaptionEntities"}},
		{"audio", common(&types.MediaAudio{Caption: "c", MediaGroupID: "g"}), []string{"Audio", "Caption", "CaptionEntities", "MediaGroupID"}},
		{"document", common(&types.MediaDocument{CaptionEntities: bold}), []string{"Document", "CaptionEntities"}},
		{"photo", common(&types.MediaPhoto{Caption: "c", MediaGroupID: "g"}), []string{"Photo", "Caption", "CaptionEntities", "MediaGroupID"}},
		{"video", common(&types.MediaVideo{MediaGroupID: "g"}), []string{"Video", "CaptionEntities", "MediaGroupID"}},
		{"voice", common(&types.MediaVoice{Caption: "c"}), []string{"Voice", "Caption", "CaptionEntities"}},
		{"contact", common(&types.MediaContact{}), []string{"Contact"}},
		{"game", common(&types.MediaGame{}), []string{"Game"}},
		{"venue", common(&types.MediaVenue{}), []string{"Venue"}},
		{"location", common(&types.MediaLocation{}), []string{"Location"}},
		{"poll", common(&types.MediaPoll{}), []string{"Poll"}},
		{"sticker", common(&types.MediaSticker{}), []string{"Sticker"}},
		{"video note", common(&types.MediaVideoNote{}), []string{"VideoNote"}},
		{"migration to", common(&types.ChatMigration{Direction: types.MigrationDirectionTo, ChatID: -1001}), []string{"ChatMigration", "MigrateToChatID"}},
		{"migration from", common(&types.ChatMigration{Direction: types.MigrationDirectionFrom, ChatID: -1}), []string{"ChatMigration", "MigrateFromChatID"}},
		{
			"common envelope",
			&types.Message{Kind: &types.MessageCommon{
				From:                &types.User{ID: 1},
				SenderChat:          &types.Chat{ID: -1001},
				AuthorSignature:     "sig",
				Forward:             &types.Forward{From: &types.ForwardFromUser{}, Signature: "fs", MessageID: lo.ToPtr(int32(4))},
				ReplyToMessage:      common(&types.MediaText{}),
				EditDate:            lo.ToPtr(fixedTime),
				ReplyMarkup:         types.NewInlineKeyboard(),
				IsAutomaticForward:  true,
				HasProtectedContent: true,
			}},
			[]string{
				"From", "SenderChat", "AuthorSignature", "Forward", "ForwardDate", "ForwardFrom",
				"ForwardFromUser", "ForwardFromMessageID", "ForwardSignature", "ReplyToMessage",
				"EditDate", "ReplyMarkup", "IsAutomaticForward", "HasProtectedContent",
			},
		},
		{"forward from chat", &types.Message{Kind: &types.MessageCommon{Forward: &types.Forward{From: &types.ForwardFromChat{}}}}, []string{"Forward", "ForwardDate", "ForwardFrom", "ForwardFromChat"}},
		{"forward from name", &types.Message{Kind: &types.MessageCommon{Forward: &types.Forward{From: &types.ForwardFromSenderName{SenderName: "n"}}}}, []string{"Forward", "ForwardDate", "ForwardFrom", "ForwardFromSenderName"}},
		{"new chat members", kind(&types.MessageNewChatMembers{}), []string{"NewChatMembers"}},
		{"left chat member", kind(&types.MessageLeftChatMember{}), []string{"LeftChatMember"}},
		{"new chat title", kind(&types.MessageNewChatTitle{}), []string{"NewChatTitle"}},
		{"new chat photo", kind(&types.MessageNewChatPhoto{}), []string{"NewChatPhoto"}},
		{"delete chat photo", kind(&types.MessageDeleteChatPhoto{}), []string{"DeleteChatPhoto"}},
		{"group created", kind(&types.MessageGroupChatCreated{}), []string{"GroupChatCreated"}},
		{"supergroup created", kind(&types.MessageSupergroupChatCreated{}), []string{"SupergroupChatCreated"}},
		{"channel created", kind(&types.MessageChannelChatCreated{}), []string{"ChannelChatCreated"}},
		{"auto delete timer", kind(&types.MessageAutoDeleteTimerChanged{}), []string{"AutoDeleteTimerChanged"}},
		{"pinned", kind(types.NewMessagePinned(common(&types.MediaText{}))), []string{"PinnedMessage"}},
		{"invoice", kind(&types.MessageInvoice{}), []string{"Invoice"}},
		{"payment", kind(&types.MessageSuccessfulPayment{}), []string{"SuccessfulPayment"}},
		{"website", kind(&types.MessageConnectedWebsite{}), []string{"ConnectedWebsite"}},
		{"passport", kind(&types.MessagePassportData{}), []string{"PassportData"}},
		{"dice", kind(&types.MessageDice{}), []string{"Dice"}},
		{"proximity", kind(&types.MessageProximityAlertTriggered{}), []string{"ProximityAlertTriggered"}},
		{"voice chat scheduled", kind(&types.MessageVoiceChatScheduled{}), []string{"VoiceChatScheduled"}},
		{"voice chat started", kind(&types.MessageVoiceChatStarted{}), []string{"VoiceChatStarted"}},
		{"voice chat ended", kind(&types.MessageVoiceChatEnded{}), []string{"VoiceChatEnded"}},
		{"participants invited", kind(&types.MessageVoiceChatParticipantsInvited{}), []string{"VoiceChatParticipantsInvited"}},
		{"web app data", kind(&types.MessageWebAppData{}), []string{"WebAppData"}},
		{"typed nil common", kind((*types.MessageCommon)(nil)), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for name, accessor := range accessors {
				assert.NotPanics(t, func() { accessor(tt.msg) }, name)
				assert.Equal(t, lo.Contains(tt.want, name), accessor(tt.msg), name)
			}
		})
	}
}

func TestCaption_EmptyReadsAsAbsent(t *testing.T) {
	t.Parallel()

	const photo = `{"message_id":1,"date":1714564800,"chat":{"id":-1001,"type":"channel","title":"c"},
		"photo":[{"file_id":"a","file_unique_id":"b","width":1,"height":1}]%s}`

	tests := []struct {
		name    string
		extra   string
		caption string
		ok      bool
	}{
		{name: "missing", extra: ``, ok: false},
		{name: "empty", extra: `,"caption":""`, ok: false},
		{name: "set", extra: `,"caption":"sunset"`, caption: "sunset", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m types.Message
			require.NoError(t, json.Unmarshal([]byte(fmt.Sprintf(photo, tt.extra)), &m))

			caption, ok := m.Caption()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.caption, caption)
			_, isPhoto := m.Photo()
			assert.True(t, isPhoto)
		})
	}
}
