package types

import "time"

// The accessors below read fields that only some message kinds carry. They
// are safe to call on any message, including a nil one, and report absence
// with a nil pointer or a false ok.

func (m *Message) common() *MessageCommon {
	if m == nil {
		return nil
	}
	c, _ := m.Kind.(*MessageCommon)
	return c
}

func kindAs[T any](m *Message) *T {
	if m == nil {
		return nil
	}
	k, _ := any(m.Kind).(*T)
	return k
}

func mediaAs[T any](m *Message) *T {
	c := m.common()
	if c == nil {
		return nil
	}
	k, _ := any(c.Media).(*T)
	return k
}

// nonEmpty treats an empty string field as absent. Encoding omits empty
// strings, so "caption":"" and no caption decode to the same message.
func nonEmpty(s string) (string, bool) {
	return s, s != ""
}

// KindName returns the name of the active kind, or "" for a message without
// one.
func (m *Message) KindName() MessageKindName {
	if m == nil || m.Kind == nil {
		return ""
	}
	return m.Kind.KindName()
}

// MediaKindName returns the name of the active media kind of a common
// message.
func (m *Message) MediaKindName() (MediaKindName, bool) {
	c := m.common()
	if c == nil || c.Media == nil {
		return "", false
	}
	return c.Media.MediaKindName(), true
}

func (m *Message) From() *User {
	if c := m.common(); c != nil {
		return c.From
	}
	return nil
}

func (m *Message) SenderChat() *Chat {
	if c := m.common(); c != nil {
		return c.SenderChat
	}
	return nil
}

// AuthorSignature reports ok only for a non-empty signature.
func (m *Message) AuthorSignature() (string, bool) {
	if c := m.common(); c != nil {
		return nonEmpty(c.AuthorSignature)
	}
	return "", false
}

func (m *Message) Forward() *Forward {
	if c := m.common(); c != nil {
		return c.Forward
	}
	return nil
}

func (m *Message) ForwardDate() (time.Time, bool) {
	if f := m.Forward(); f != nil {
		return f.Date, true
	}
	return time.Time{}, false
}

func (m *Message) ForwardFrom() ForwardedFrom {
	if f := m.Forward(); f != nil {
		return f.From
	}
	return nil
}

func (m *Message) ForwardFromUser() *User {
	if from, ok := m.ForwardFrom().(*ForwardFromUser); ok && from != nil {
		return &from.User
	}
	return nil
}

func (m *Message) ForwardFromChat() *Chat {
	if from, ok := m.ForwardFrom().(*ForwardFromChat); ok && from != nil {
		return &from.Chat
	}
	return nil
}

func (m *Message) ForwardFromSenderName() (string, bool) {
	if from, ok := m.ForwardFrom().(*ForwardFromSenderName); ok && from != nil {
		return from.SenderName, true
	}
	return "", false
}

func (m *Message) ForwardFromMessageID() (int32, bool) {
	if f := m.Forward(); f != nil && f.MessageID != nil {
		return *f.MessageID, true
	}
	return 0, false
}

// ForwardSignature reports ok only for a non-empty signature.
func (m *Message) ForwardSignature() (string, bool) {
	if f := m.Forward(); f != nil {
		return nonEmpty(f.Signature)
	}
	return "", false
}

func (m *Message) ReplyToMessage() *Message {
	if c := m.common(); c != nil {
		return c.ReplyToMessage
	}
	return nil
}

func (m *Message) EditDate() (time.Time, bool) {
	if c := m.common(); c != nil && c.EditDate != nil {
		return *c.EditDate, true
	}
	return time.Time{}, false
}

// MediaGroupID is set for audio, documents, photos and videos sent as an
// album. An empty id reads as absent.
func (m *Message) MediaGroupID() (string, bool) {
	if c := m.common(); c != nil {
		if g, ok := c.Media.(grouped); ok {
			return nonEmpty(g.mediaGroupID())
		}
	}
	return "", false
}

func (m *Message) Text() (string, bool) {
	if t := mediaAs[MediaText](m); t != nil {
		return t.Text, true
	}
	return "", false
}

func (m *Message) Entities() ([]MessageEntity, bool) {
	if t := mediaAs[MediaText](m); t != nil {
		return t.Entities, true
	}
	return nil, false
}

// Caption is defined for animations, audio, documents, photos, videos and
// voice notes.
// Caption returns the caption of animations, audio, documents, photos,
// videos and voice notes. An empty caption reads as absent: ok is false for
// "caption":"" as well as for a missing key.
func (m *Message) Caption() (string, bool) {
	if c := m.common(); c != nil {
		if cm, ok := c.Media.(captioned); ok {
			return nonEmpty(cm.caption())
		}
	}
	return "", false
}

func (m *Message) CaptionEntities() ([]MessageEntity, bool) {
	if c := m.common(); c != nil {
		if cm, ok := c.Media.(captioned); ok {
			return cm.captionEntities(), true
		}
	}
	return nil, false
}

func (m *Message) Animation() *Animation {
	if k := mediaAs[MediaAnimation](m); k != nil {
		return &k.Animation
	}
	return nil
}

func (m *Message) Audio() *Audio {
	if k := mediaAs[MediaAudio](m); k != nil {
		return &k.Audio
	}
	return nil
}

func (m *Message) Contact() *Contact {
	if k := mediaAs[MediaContact](m); k != nil {
		return &k.Contact
	}
	return nil
}

func (m *Message) Document() *Document {
	if k := mediaAs[MediaDocument](m); k != nil {
		return &k.Document
	}
	return nil
}

func (m *Message) Game() *Game {
	if k := mediaAs[MediaGame](m); k != nil {
		return &k.Game
	}
	return nil
}

func (m *Message) Venue() *Venue {
	if k := mediaAs[MediaVenue](m); k != nil {
		return &k.Venue
	}
	return nil
}

func (m *Message) Location() *Location {
	if k := mediaAs[MediaLocation](m); k != nil {
		return &k.Location
	}
	return nil
}

func (m *Message) Photo() ([]PhotoSize, bool) {
	if k := mediaAs[MediaPhoto](m); k != nil {
		return k.Photo, true
	}
	return nil, false
}

func (m *Message) Poll() *Poll {
	if k := mediaAs[MediaPoll](m); k != nil {
		return &k.Poll
	}
	return nil
}

func (m *Message) Sticker() *Sticker {
	if k := mediaAs[MediaSticker](m); k != nil {
		return &k.Sticker
	}
	return nil
}

func (m *Message) Video() *Video {
	if k := mediaAs[MediaVideo](m); k != nil {
		return &k.Video
	}
	return nil
}

func (m *Message) VideoNote() *VideoNote {
	if k := mediaAs[MediaVideoNote](m); k != nil {
		return &k.VideoNote
	}
	return nil
}

func (m *Message) Voice() *Voice {
	if k := mediaAs[MediaVoice](m); k != nil {
		return &k.Voice
	}
	return nil
}

func (m *Message) ChatMigration() (ChatMigration, bool) {
	if k := mediaAs[ChatMigration](m); k != nil {
		return *k, true
	}
	return ChatMigration{}, false
}

func (m *Message) MigrateToChatID() (ChatID, bool) {
	if mig, ok := m.ChatMigration(); ok && mig.Direction == MigrationDirectionTo {
		return mig.ChatID, true
	}
	return 0, false
}

func (m *Message) MigrateFromChatID() (ChatID, bool) {
	if mig, ok := m.ChatMigration(); ok && mig.Direction == MigrationDirectionFrom {
		return mig.ChatID, true
	}
	return 0, false
}

func (m *Message) NewChatMembers() ([]User, bool) {
	if k := kindAs[MessageNewChatMembers](m); k != nil {
		return k.NewChatMembers, true
	}
	return nil, false
}

func (m *Message) LeftChatMember() *User {
	if k := kindAs[MessageLeftChatMember](m); k != nil {
		return &k.LeftChatMember
	}
	return nil
}

func (m *Message) NewChatTitle() (string, bool) {
	if k := kindAs[MessageNewChatTitle](m); k != nil {
		return k.NewChatTitle, true
	}
	return "", false
}

func (m *Message) NewChatPhoto() ([]PhotoSize, bool) {
	if k := kindAs[MessageNewChatPhoto](m); k != nil {
		return k.NewChatPhoto, true
	}
	return nil, false
}

func (m *Message) DeleteChatPhoto() bool {
	return kindAs[MessageDeleteChatPhoto](m) != nil
}

func (m *Message) GroupChatCreated() bool {
	return kindAs[MessageGroupChatCreated](m) != nil
}

func (m *Message) SupergroupChatCreated() bool {
	return kindAs[MessageSupergroupChatCreated](m) != nil
}

func (m *Message) ChannelChatCreated() bool {
	return kindAs[MessageChannelChatCreated](m) != nil
}

func (m *Message) AutoDeleteTimerChanged() *AutoDeleteTimerChanged {
	if k := kindAs[MessageAutoDeleteTimerChanged](m); k != nil {
		return &k.Timer
	}
	return nil
}

func (m *Message) PinnedMessage() *Message {
	if k := kindAs[MessagePinned](m); k != nil {
		return k.Pinned
	}
	return nil
}

func (m *Message) Invoice() *Invoice {
	if k := kindAs[MessageInvoice](m); k != nil {
		return &k.Invoice
	}
	return nil
}

func (m *Message) SuccessfulPayment() *SuccessfulPayment {
	if k := kindAs[MessageSuccessfulPayment](m); k != nil {
		return &k.SuccessfulPayment
	}
	return nil
}

func (m *Message) ConnectedWebsite() (string, bool) {
	if k := kindAs[MessageConnectedWebsite](m); k != nil {
		return k.ConnectedWebsite, true
	}
	return "", false
}

func (m *Message) PassportData() *PassportData {
	if k := kindAs[MessagePassportData](m); k != nil {
		return &k.PassportData
	}
	return nil
}

func (m *Message) Dice() *Dice {
	if k := kindAs[MessageDice](m); k != nil {
		return &k.Dice
	}
	return nil
}

func (m *Message) ProximityAlertTriggered() *ProximityAlertTriggered {
	if k := kindAs[MessageProximityAlertTriggered](m); k != nil {
		return &k.ProximityAlertTriggered
	}
	return nil
}

func (m *Message) VoiceChatScheduled() *VideoChatScheduled {
	if k := kindAs[MessageVoiceChatScheduled](m); k != nil {
		return &k.VoiceChatScheduled
	}
	return nil
}

func (m *Message) VoiceChatStarted() *VideoChatStarted {
	if k := kindAs[MessageVoiceChatStarted](m); k != nil {
		return &k.VoiceChatStarted
	}
	return nil
}

func (m *Message) VoiceChatEnded() *VideoChatEnded {
	if k := kindAs[MessageVoiceChatEnded](m); k != nil {
		return &k.VoiceChatEnded
	}
	return nil
}

func (m *Message) VoiceChatParticipantsInvited() *VideoChatParticipantsInvited {
	if k := kindAs[MessageVoiceChatParticipantsInvited](m); k != nil {
		return &k.VoiceChatParticipantsInvited
	}
	return nil
}

func (m *Message) WebAppData() *WebAppData {
	if k := kindAs[MessageWebAppData](m); k != nil {
		return &k.WebAppData
	}
	return nil
}

// ReplyMarkup returns the inline keyboard attached to the message.
func (m *Message) ReplyMarkup() *InlineKeyboardMarkup {
	if c := m.common(); c != nil {
		return c.ReplyMarkup
	}
	return nil
}

func (m *Message) IsAutomaticForward() bool {
	c := m.common()
	return c != nil && c.IsAutomaticForward
}

func (m *Message) HasProtectedContent() bool {
	c := m.common()
	return c != nil && c.HasProtectedContent
}
