package types

import (
	"time"
)

// MessageKind is the payload of a message, flattened into the message's
// wire record. Exactly one variant is active; it is chosen while decoding
// by which keys the record carries.
type MessageKind interface {
	KindName() MessageKindName
	encode(w wire)
}

// MessageCommon is a message with content: text, media, a location and so
// on, together with its sender, forward and reply information.
type MessageCommon struct {
	// From is empty for messages sent to channels.
	From *User
	// SenderChat is set for messages sent on behalf of a chat: the channel
	// for channel posts, the supergroup for anonymous admins, the linked
	// channel for automatic forwards to a discussion group.
	SenderChat      *Chat
	AuthorSignature string
	Forward         *Forward
	// ReplyToMessage never carries a reply of its own. Use SetReplyTo.
	ReplyToMessage      *Message
	EditDate            *time.Time
	Media               MediaKind
	ReplyMarkup         *InlineKeyboardMarkup
	IsAutomaticForward  bool
	HasProtectedContent bool
}

func (*MessageCommon) KindName() MessageKindName { return MessageKindNameCommon }

// SetReplyTo stores a copy of m with its own reply removed.
func (c *MessageCommon) SetReplyTo(m *Message) {
	if m == nil {
		c.ReplyToMessage = nil
		return
	}
	c.ReplyToMessage = m.WithoutReply()
}

func (c *MessageCommon) encode(w wire) {
	if c.From != nil {
		w["from"] = c.From
	}
	if c.SenderChat != nil {
		w["sender_chat"] = c.SenderChat
	}
	w.setString("author_signature", c.AuthorSignature)
	if c.Forward != nil {
		c.Forward.encode(w)
	}
	if c.ReplyToMessage != nil {
		w["reply_to_message"] = c.ReplyToMessage.WithoutReply()
	}
	w.setOptionalUnixTime("edit_date", c.EditDate)
	if c.Media != nil {
		c.Media.encode(w)
	}
	if c.ReplyMarkup != nil {
		w["reply_markup"] = c.ReplyMarkup
	}
	w.setFlag("is_automatic_forward", c.IsAutomaticForward)
	w.setFlag("has_protected_content", c.HasProtectedContent)
}

func decodeCommon(r record) (MessageKind, error) {
	media, err := resolve(r, mediaCandidates)
	if err != nil {
		return nil, err
	}

	c := &MessageCommon{Media: media}
	if c.From, err = optional[User](r, "from"); err != nil {
		return nil, err
	}
	if c.SenderChat, err = optional[Chat](r, "sender_chat"); err != nil {
		return nil, err
	}
	if c.AuthorSignature, err = optionalValue[string](r, "author_signature"); err != nil {
		return nil, err
	}
	if c.Forward, err = decodeForward(r); err != nil {
		return nil, err
	}
	reply, err := optional[Message](r, "reply_to_message")
	if err != nil {
		return nil, err
	}
	c.SetReplyTo(reply)
	if c.EditDate, err = optionalUnixTime(r, "edit_date"); err != nil {
		return nil, err
	}
	if c.ReplyMarkup, err = optional[InlineKeyboardMarkup](r, "reply_markup"); err != nil {
		return nil, err
	}
	if c.IsAutomaticForward, err = optionalValue[bool](r, "is_automatic_forward"); err != nil {
		return nil, err
	}
	if c.HasProtectedContent, err = optionalValue[bool](r, "has_protected_content"); err != nil {
		return nil, err
	}
	return c, nil
}

type MessageNewChatMembers struct {
	NewChatMembers []User
}

func (*MessageNewChatMembers) KindName() MessageKindName { return MessageKindNameNewChatMembers }

func (m *MessageNewChatMembers) encode(w wire) { w["new_chat_members"] = m.NewChatMembers }

type MessageLeftChatMember struct {
	LeftChatMember User
}

func (*MessageLeftChatMember) KindName() MessageKindName { return MessageKindNameLeftChatMember }

func (m *MessageLeftChatMember) encode(w wire) { w["left_chat_member"] = m.LeftChatMember }

type MessageNewChatTitle struct {
	NewChatTitle string
}

func (*MessageNewChatTitle) KindName() MessageKindName { return MessageKindNameNewChatTitle }

func (m *MessageNewChatTitle) encode(w wire) { w["new_chat_title"] = m.NewChatTitle }

type MessageNewChatPhoto struct {
	NewChatPhoto []PhotoSize
}

func (*MessageNewChatPhoto) KindName() MessageKindName { return MessageKindNameNewChatPhoto }

func (m *MessageNewChatPhoto) encode(w wire) { w["new_chat_photo"] = m.NewChatPhoto }

type MessageDeleteChatPhoto struct{}

func (*MessageDeleteChatPhoto) KindName() MessageKindName { return MessageKindNameDeleteChatPhoto }

func (*MessageDeleteChatPhoto) encode(w wire) { w["delete_chat_photo"] = true }

type MessageGroupChatCreated struct{}

func (*MessageGroupChatCreated) KindName() MessageKindName { return MessageKindNameGroupChatCreated }

func (*MessageGroupChatCreated) encode(w wire) { w["group_chat_created"] = true }

// MessageSupergroupChatCreated can only be seen as the reply target of the
// first message of a supergroup; bots are never members at creation time.
type MessageSupergroupChatCreated struct{}

func (*MessageSupergroupChatCreated) KindName() MessageKindName {
	return MessageKindNameSupergroupChatCreated
}

func (*MessageSupergroupChatCreated) encode(w wire) { w["supergroup_chat_created"] = true }

// MessageChannelChatCreated can only be seen as the reply target of the
// first post of a channel.
type MessageChannelChatCreated struct{}

func (*MessageChannelChatCreated) KindName() MessageKindName {
	return MessageKindNameChannelChatCreated
}

func (*MessageChannelChatCreated) encode(w wire) { w["channel_chat_created"] = true }

type MessageAutoDeleteTimerChanged struct {
	Timer AutoDeleteTimerChanged
}

func (*MessageAutoDeleteTimerChanged) KindName() MessageKindName {
	return MessageKindNameAutoDeleteTimerChanged
}

func (m *MessageAutoDeleteTimerChanged) encode(w wire) {
	w["message_auto_delete_timer_changed"] = m.Timer
}

// MessagePinned announces a pinned message. Pinned never carries a reply
// of its own.
type MessagePinned struct {
	Pinned *Message
}

// NewMessagePinned stores a copy of m with its own reply removed.
func NewMessagePinned(m *Message) *MessagePinned {
	return &MessagePinned{Pinned: m.WithoutReply()}
}

func (*MessagePinned) KindName() MessageKindName { return MessageKindNamePinned }

func (m *MessagePinned) encode(w wire) {
	if m.Pinned != nil {
		w["pinned_message"] = m.Pinned.WithoutReply()
	}
}

func decodePinned(r record) (MessageKind, error) {
	pinned, err := required[Message](r, "pinned_message")
	if err != nil {
		return nil, err
	}
	return NewMessagePinned(&pinned), nil
}

type MessageInvoice struct {
	Invoice Invoice
}

func (*MessageInvoice) KindName() MessageKindName { return MessageKindNameInvoice }

func (m *MessageInvoice) encode(w wire) { w["invoice"] = m.Invoice }

type MessageSuccessfulPayment struct {
	SuccessfulPayment SuccessfulPayment
}

func (*MessageSuccessfulPayment) KindName() MessageKindName {
	return MessageKindNameSuccessfulPayment
}

func (m *MessageSuccessfulPayment) encode(w wire) { w["successful_payment"] = m.SuccessfulPayment }

// MessageConnectedWebsite carries the domain the user logged in to with
// Telegram Login.
type MessageConnectedWebsite struct {
	ConnectedWebsite string
}

func (*MessageConnectedWebsite) KindName() MessageKindName {
	return MessageKindNameConnectedWebsite
}

func (m *MessageConnectedWebsite) encode(w wire) { w["connected_website"] = m.ConnectedWebsite }

type MessagePassportData struct {
	PassportData PassportData
}

func (*MessagePassportData) KindName() MessageKindName { return MessageKindNamePassportData }

func (m *MessagePassportData) encode(w wire) { w["passport_data"] = m.PassportData }

type MessageDice struct {
	Dice Dice
}

func (*MessageDice) KindName() MessageKindName { return MessageKindNameDice }

func (m *MessageDice) encode(w wire) { w["dice"] = m.Dice }

type MessageProximityAlertTriggered struct {
	ProximityAlertTriggered ProximityAlertTriggered
}

func (*MessageProximityAlertTriggered) KindName() MessageKindName {
	return MessageKindNameProximityAlertTriggered
}

func (m *MessageProximityAlertTriggered) encode(w wire) {
	w["proximity_alert_triggered"] = m.ProximityAlertTriggered
}

// The voice chat kinds keep their old names but read and write the
// video_chat_* keys the API uses now.

type MessageVoiceChatScheduled struct {
	VoiceChatScheduled VideoChatScheduled
}

func (*MessageVoiceChatScheduled) KindName() MessageKindName {
	return MessageKindNameVoiceChatScheduled
}

func (m *MessageVoiceChatScheduled) encode(w wire) { w["video_chat_scheduled"] = m.VoiceChatScheduled }

type MessageVoiceChatStarted struct {
	VoiceChatStarted VideoChatStarted
}

func (*MessageVoiceChatStarted) KindName() MessageKindName { return MessageKindNameVoiceChatStarted }

func (m *MessageVoiceChatStarted) encode(w wire) { w["video_chat_started"] = m.VoiceChatStarted }

type MessageVoiceChatEnded struct {
	VoiceChatEnded VideoChatEnded
}

func (*MessageVoiceChatEnded) KindName() MessageKindName { return MessageKindNameVoiceChatEnded }

func (m *MessageVoiceChatEnded) encode(w wire) { w["video_chat_ended"] = m.VoiceChatEnded }

type MessageVoiceChatParticipantsInvited struct {
	VoiceChatParticipantsInvited VideoChatParticipantsInvited
}

func (*MessageVoiceChatParticipantsInvited) KindName() MessageKindName {
	return MessageKindNameVoiceChatParticipantsInvited
}

func (m *MessageVoiceChatParticipantsInvited) encode(w wire) {
	w["video_chat_participants_invited"] = m.VoiceChatParticipantsInvited
}

type MessageWebAppData struct {
	WebAppData WebAppData
}

func (*MessageWebAppData) KindName() MessageKindName { return MessageKindNameWebAppData }

func (m *MessageWebAppData) encode(w wire) { w["web_app_data"] = m.WebAppData }

var messageCandidates = []candidate[MessageKindName, MessageKind]{
	{MessageKindNameCommon, func(r record) bool { return matchesAny(r, mediaCandidates) }, decodeCommon},
	{MessageKindNameNewChatMembers, requires("new_chat_members"), decodeKind("new_chat_members", func(v []User) MessageKind {
		return &MessageNewChatMembers{NewChatMembers: v}
	})},
	{MessageKindNameLeftChatMember, requires("left_chat_member"), decodeKind("left_chat_member", func(v User) MessageKind {
		return &MessageLeftChatMember{LeftChatMember: v}
	})},
	{MessageKindNameNewChatTitle, requires("new_chat_title"), decodeKind("new_chat_title", func(v string) MessageKind {
		return &MessageNewChatTitle{NewChatTitle: v}
	})},
	{MessageKindNameNewChatPhoto, requires("new_chat_photo"), decodeKind("new_chat_photo", func(v []PhotoSize) MessageKind {
		return &MessageNewChatPhoto{NewChatPhoto: v}
	})},
	{MessageKindNameDeleteChatPhoto, requires("delete_chat_photo"), decodeFlag("delete_chat_photo", func() MessageKind {
		return &MessageDeleteChatPhoto{}
	})},
	{MessageKindNameGroupChatCreated, requires("group_chat_created"), decodeFlag("group_chat_created", func() MessageKind {
		return &MessageGroupChatCreated{}
	})},
	{MessageKindNameSupergroupChatCreated, requires("supergroup_chat_created"), decodeFlag("supergroup_chat_created", func() MessageKind {
		return &MessageSupergroupChatCreated{}
	})},
	{MessageKindNameChannelChatCreated, requires("channel_chat_created"), decodeFlag("channel_chat_created", func() MessageKind {
		return &MessageChannelChatCreated{}
	})},
	{MessageKindNameAutoDeleteTimerChanged, requires("message_auto_delete_timer_changed"), decodeKind("message_auto_delete_timer_changed", func(v AutoDeleteTimerChanged) MessageKind {
		return &MessageAutoDeleteTimerChanged{Timer: v}
	})},
	{MessageKindNamePinned, requires("pinned_message"), decodePinned},
	{MessageKindNameInvoice, requires("invoice"), decodeKind("invoice", func(v Invoice) MessageKind {
		return &MessageInvoice{Invoice: v}
	})},
	{MessageKindNameSuccessfulPayment, requires("successful_payment"), decodeKind("successful_payment", func(v SuccessfulPayment) MessageKind {
		return &MessageSuccessfulPayment{SuccessfulPayment: v}
	})},
	{MessageKindNameConnectedWebsite, requires("connected_website"), decodeKind("connected_website", func(v string) MessageKind {
		return &MessageConnectedWebsite{ConnectedWebsite: v}
	})},
	{MessageKindNamePassportData, requires("passport_data"), decodeKind("passport_data", func(v PassportData) MessageKind {
		return &MessagePassportData{PassportData: v}
	})},
	{MessageKindNameDice, requires("dice"), decodeKind("dice", func(v Dice) MessageKind {
		return &MessageDice{Dice: v}
	})},
	{MessageKindNameProximityAlertTriggered, requires("proximity_alert_triggered"), decodeKind("proximity_alert_triggered", func(v ProximityAlertTriggered) MessageKind {
		return &MessageProximityAlertTriggered{ProximityAlertTriggered: v}
	})},
	{MessageKindNameVoiceChatScheduled, requires("video_chat_scheduled"), decodeKind("video_chat_scheduled", func(v VideoChatScheduled) MessageKind {
		return &MessageVoiceChatScheduled{VoiceChatScheduled: v}
	})},
	{MessageKindNameVoiceChatStarted, requires("video_chat_started"), decodeKind("video_chat_started", func(v VideoChatStarted) MessageKind {
		return &MessageVoiceChatStarted{VoiceChatStarted: v}
	})},
	{MessageKindNameVoiceChatEnded, requires("video_chat_ended"), decodeKind("video_chat_ended", func(v VideoChatEnded) MessageKind {
		return &MessageVoiceChatEnded{VoiceChatEnded: v}
	})},
	{MessageKindNameVoiceChatParticipantsInvited, requires("video_chat_participants_invited"), decodeKind("video_chat_participants_invited", func(v VideoChatParticipantsInvited) MessageKind {
		return &MessageVoiceChatParticipantsInvited{VoiceChatParticipantsInvited: v}
	})},
	{MessageKindNameWebAppData, requires("web_app_data"), decodeKind("web_app_data", func(v WebAppData) MessageKind {
		return &MessageWebAppData{WebAppData: v}
	})},
}

// MessageKindOrder returns the message variant names in the order the
// resolver tries them.
func MessageKindOrder() []MessageKindName {
	return candidateNames(messageCandidates)
}

func decodeKind[T any](key string, build func(T) MessageKind) func(record) (MessageKind, error) {
	return func(r record) (MessageKind, error) {
		v, err := required[T](r, key)
		if err != nil {
			return nil, err
		}
		return build(v), nil
	}
}

func decodeFlag(key string, build func() MessageKind) func(record) (MessageKind, error) {
	return func(r record) (MessageKind, error) {
		if err := trueField(r, key); err != nil {
			return nil, err
		}
		return build(), nil
	}
}
