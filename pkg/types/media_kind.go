package types

import (
	"time"

	"github.com/samber/lo"
)

// MediaKind is the content of a common message. It is one of *MediaAnimation,
// *MediaAudio, *MediaContact, *MediaDocument, *MediaGame, *MediaVenue,
// *MediaLocation, *MediaPhoto, *MediaPoll, *MediaSticker, *MediaText,
// *MediaVideo, *MediaVideoNote, *MediaVoice or *ChatMigration.
type MediaKind interface {
	MediaKindName() MediaKindName
	encode(w wire)
}

type captioned interface {
	caption() string
	captionEntities() []MessageEntity
}

type grouped interface {
	mediaGroupID() string
}

// MediaAnimation is an animation. The wire record also carries the
// animation as a "document", which is ignored.
type MediaAnimation struct {
	Animation       Animation
	Caption         string
	CaptionEntities []MessageEntity
}

func (*MediaAnimation) MediaKindName() MediaKindName { return MediaKindNameAnimation }

func (m *MediaAnimation) encode(w wire) {
	w["animation"] = m.Animation
	w.setString("caption", m.Caption)
	w.setEntities("caption_entities", m.CaptionEntities)
}

func (m *MediaAnimation) caption() string                  { return m.Caption }
func (m *MediaAnimation) captionEntities() []MessageEntity { return m.CaptionEntities }

type MediaAudio struct {
	Audio           Audio
	Caption         string
	CaptionEntities []MessageEntity
	MediaGroupID    string
}

func (*MediaAudio) MediaKindName() MediaKindName { return MediaKindNameAudio }

func (m *MediaAudio) encode(w wire) {
	w["audio"] = m.Audio
	w.setString("caption", m.Caption)
	w.setEntities("caption_entities", m.CaptionEntities)
	w.setString("media_group_id", m.MediaGroupID)
}

func (m *MediaAudio) caption() string                  { return m.Caption }
func (m *MediaAudio) captionEntities() []MessageEntity { return m.CaptionEntities }
func (m *MediaAudio) mediaGroupID() string             { return m.MediaGroupID }

type MediaContact struct {
	Contact Contact
}

func (*MediaContact) MediaKindName() MediaKindName { return MediaKindNameContact }

func (m *MediaContact) encode(w wire) { w["contact"] = m.Contact }

type MediaDocument struct {
	Document        Document
	Caption         string
	CaptionEntities []MessageEntity
	MediaGroupID    string
}

func (*MediaDocument) MediaKindName() MediaKindName { return MediaKindNameDocument }

func (m *MediaDocument) encode(w wire) {
	w["document"] = m.Document
	w.setString("caption", m.Caption)
	w.setEntities("caption_entities", m.CaptionEntities)
	w.setString("media_group_id", m.MediaGroupID)
}

func (m *MediaDocument) caption() string                  { return m.Caption }
func (m *MediaDocument) captionEntities() []MessageEntity { return m.CaptionEntities }
func (m *MediaDocument) mediaGroupID() string             { return m.MediaGroupID }

type MediaGame struct {
	Game Game
}

func (*MediaGame) MediaKindName() MediaKindName { return MediaKindNameGame }

func (m *MediaGame) encode(w wire) { w["game"] = m.Game }

// MediaVenue is a venue. The wire record also carries the venue's location
// as a bare "location", which is ignored.
type MediaVenue struct {
	Venue Venue
}

func (*MediaVenue) MediaKindName() MediaKindName { return MediaKindNameVenue }

func (m *MediaVenue) encode(w wire) { w["venue"] = m.Venue }

type MediaLocation struct {
	Location Location
}

func (*MediaLocation) MediaKindName() MediaKindName { return MediaKindNameLocation }

func (m *MediaLocation) encode(w wire) { w["location"] = m.Location }

// MediaPhoto is a photo in all the sizes available.
type MediaPhoto struct {
	Photo           []PhotoSize
	Caption         string
	CaptionEntities []MessageEntity
	MediaGroupID    string
}

func (*MediaPhoto) MediaKindName() MediaKindName { return MediaKindNamePhoto }

func (m *MediaPhoto) encode(w wire) {
	w["photo"] = lo.Ternary(m.Photo == nil, []PhotoSize{}, m.Photo)
	w.setString("caption", m.Caption)
	w.setEntities("caption_entities", m.CaptionEntities)
	w.setString("media_group_id", m.MediaGroupID)
}

func (m *MediaPhoto) caption() string                  { return m.Caption }
func (m *MediaPhoto) captionEntities() []MessageEntity { return m.CaptionEntities }
func (m *MediaPhoto) mediaGroupID() string             { return m.MediaGroupID }

type MediaPoll struct {
	Poll Poll
}

func (*MediaPoll) MediaKindName() MediaKindName { return MediaKindNamePoll }

func (m *MediaPoll) encode(w wire) { w["poll"] = m.Poll }

type MediaSticker struct {
	Sticker Sticker
}

func (*MediaSticker) MediaKindName() MediaKindName { return MediaKindNameSticker }

func (m *MediaSticker) encode(w wire) { w["sticker"] = m.Sticker }

type MediaText struct {
	Text     string
	Entities []MessageEntity
}

func (*MediaText) MediaKindName() MediaKindName { return MediaKindNameText }

func (m *MediaText) encode(w wire) {
	w["text"] = m.Text
	w.setEntities("entities", m.Entities)
}

type MediaVideo struct {
	Video           Video
	Caption         string
	CaptionEntities []MessageEntity
	MediaGroupID    string
}

func (*MediaVideo) MediaKindName() MediaKindName { return MediaKindNameVideo }

func (m *MediaVideo) encode(w wire) {
	w["video"] = m.Video
	w.setString("caption", m.Caption)
	w.setEntities("caption_entities", m.CaptionEntities)
	w.setString("media_group_id", m.MediaGroupID)
}

func (m *MediaVideo) caption() string                  { return m.Caption }
func (m *MediaVideo) captionEntities() []MessageEntity { return m.CaptionEntities }
func (m *MediaVideo) mediaGroupID() string             { return m.MediaGroupID }

type MediaVideoNote struct {
	VideoNote VideoNote
}

func (*MediaVideoNote) MediaKindName() MediaKindName { return MediaKindNameVideoNote }

func (m *MediaVideoNote) encode(w wire) { w["video_note"] = m.VideoNote }

type MediaVoice struct {
	Voice           Voice
	Caption         string
	CaptionEntities []MessageEntity
}

func (*MediaVoice) MediaKindName() MediaKindName { return MediaKindNameVoice }

func (m *MediaVoice) encode(w wire) {
	w["voice"] = m.Voice
	w.setString("caption", m.Caption)
	w.setEntities("caption_entities", m.CaptionEntities)
}

func (m *MediaVoice) caption() string                  { return m.Caption }
func (m *MediaVoice) captionEntities() []MessageEntity { return m.CaptionEntities }

// ChatMigration is a group being upgraded to a supergroup. The bot receives
// one message per side: the old group gets Direction to with the new
// supergroup's id, and the supergroup gets Direction from with the old id.
type ChatMigration struct {
	Direction MigrationDirection
	ChatID    ChatID
}

func (*ChatMigration) MediaKindName() MediaKindName { return MediaKindNameMigration }

func (m *ChatMigration) encode(w wire) {
	if m.Direction == MigrationDirectionFrom {
		w["migrate_from_chat_id"] = m.ChatID
		return
	}
	w["migrate_to_chat_id"] = m.ChatID
}

func decodeMigration(r record) (MediaKind, error) {
	if r.has("migrate_to_chat_id") {
		id, err := required[ChatID](r, "migrate_to_chat_id")
		return &ChatMigration{Direction: MigrationDirectionTo, ChatID: id}, err
	}
	id, err := required[ChatID](r, "migrate_from_chat_id")
	return &ChatMigration{Direction: MigrationDirectionFrom, ChatID: id}, err
}

// ForwardedFrom is the original sender of a forwarded message: one of
// *ForwardFromUser, *ForwardFromChat or *ForwardFromSenderName.
type ForwardedFrom interface {
	encode(w wire)
}

// ForwardFromUser is a message originally sent by a user.
type ForwardFromUser struct {
	User User
}

func (f *ForwardFromUser) encode(w wire) { w["forward_from"] = f.User }

// ForwardFromChat is a message originally sent on behalf of a channel or an
// anonymous group admin.
type ForwardFromChat struct {
	Chat Chat
}

func (f *ForwardFromChat) encode(w wire) { w["forward_from_chat"] = f.Chat }

// ForwardFromSenderName is a message from a user who hides their account
// in forwards.
type ForwardFromSenderName struct {
	SenderName string
}

func (f *ForwardFromSenderName) encode(w wire) { w["forward_sender_name"] = f.SenderName }

// Forward describes where a forwarded message came from.
type Forward struct {
	Date      time.Time
	From      ForwardedFrom
	Signature string
	MessageID *int32
}

func (f *Forward) encode(w wire) {
	w.setOptionalUnixTime("forward_date", &f.Date)
	if f.From != nil {
		f.From.encode(w)
	}
	w.setString("forward_signature", f.Signature)
	if f.MessageID != nil {
		w["forward_from_message_id"] = *f.MessageID
	}
}

var forwardOriginKeys = []string{"forward_from", "forward_from_chat", "forward_sender_name"}

// decodeForward returns nil when the record is not a forward.
func decodeForward(r record) (*Forward, error) {
	if !r.has("forward_date") {
		return nil, nil
	}

	date, err := unixTime(r, "forward_date")
	if err != nil {
		return nil, err
	}

	origins := lo.Filter(forwardOriginKeys, func(key string, _ int) bool { return r.has(key) })
	var from ForwardedFrom
	switch {
	case len(origins) == 0:
		return nil, &FieldError{Key: "forward_from", Err: ErrNoMatchingKind}
	case len(origins) > 1:
		return nil, &FieldError{Key: origins[1], Err: ErrAmbiguousKind}
	case origins[0] == "forward_from":
		user, err := required[User](r, "forward_from")
		if err != nil {
			return nil, err
		}
		from = &ForwardFromUser{User: user}
	case origins[0] == "forward_from_chat":
		chat, err := required[Chat](r, "forward_from_chat")
		if err != nil {
			return nil, err
		}
		from = &ForwardFromChat{Chat: chat}
	default:
		name, err := required[string](r, "forward_sender_name")
		if err != nil {
			return nil, err
		}
		from = &ForwardFromSenderName{SenderName: name}
	}

	fwd := &Forward{Date: date, From: from}
	if fwd.Signature, err = optionalValue[string](r, "forward_signature"); err != nil {
		return nil, err
	}
	if fwd.MessageID, err = optional[int32](r, "forward_from_message_id"); err != nil {
		return nil, err
	}
	return fwd, nil
}

var mediaCandidates = []candidate[MediaKindName, MediaKind]{
	{MediaKindNameAnimation, requires("animation"), decodeCaptioned("animation", func(v Animation, c string, e []MessageEntity, _ string) MediaKind {
		return &MediaAnimation{Animation: v, Caption: c, CaptionEntities: e}
	})},
	{MediaKindNameAudio, requires("audio"), decodeCaptioned("audio", func(v Audio, c string, e []MessageEntity, g string) MediaKind {
		return &MediaAudio{Audio: v, Caption: c, CaptionEntities: e, MediaGroupID: g}
	})},
	{MediaKindNameContact, requires("contact"), decodeField("contact", func(v Contact) MediaKind { return &MediaContact{Contact: v} })},
	{MediaKindNameDocument, requires("document"), decodeCaptioned("document", func(v Document, c string, e []MessageEntity, g string) MediaKind {
		return &MediaDocument{Document: v, Caption: c, CaptionEntities: e, MediaGroupID: g}
	})},
	{MediaKindNameGame, requires("game"), decodeField("game", func(v Game) MediaKind { return &MediaGame{Game: v} })},
	{MediaKindNameVenue, requires("venue"), decodeField("venue", func(v Venue) MediaKind { return &MediaVenue{Venue: v} })},
	{MediaKindNameLocation, requires("location"), decodeField("location", func(v Location) MediaKind { return &MediaLocation{Location: v} })},
	{MediaKindNamePhoto, requires("photo"), decodeCaptioned("photo", func(v []PhotoSize, c string, e []MessageEntity, g string) MediaKind {
		return &MediaPhoto{Photo: v, Caption: c, CaptionEntities: e, MediaGroupID: g}
	})},
	{MediaKindNamePoll, requires("poll"), decodeField("poll", func(v Poll) MediaKind { return &MediaPoll{Poll: v} })},
	{MediaKindNameSticker, requires("sticker"), decodeField("sticker", func(v Sticker) MediaKind { return &MediaSticker{Sticker: v} })},
	{MediaKindNameText, requires("text"), decodeText},
	{MediaKindNameVideo, requires("video"), decodeCaptioned("video", func(v Video, c string, e []MessageEntity, g string) MediaKind {
		return &MediaVideo{Video: v, Caption: c, CaptionEntities: e, MediaGroupID: g}
	})},
	{MediaKindNameVideoNote, requires("video_note"), decodeField("video_note", func(v VideoNote) MediaKind { return &MediaVideoNote{VideoNote: v} })},
	{MediaKindNameVoice, requires("voice"), decodeCaptioned("voice", func(v Voice, c string, e []MessageEntity, _ string) MediaKind {
		return &MediaVoice{Voice: v, Caption: c, CaptionEntities: e}
	})},
	{MediaKindNameMigration, requiresAny("migrate_to_chat_id", "migrate_from_chat_id"), decodeMigration},
}

// MediaKindOrder returns the media variant names in the order the resolver
// tries them.
func MediaKindOrder() []MediaKindName {
	return candidateNames(mediaCandidates)
}

func decodeText(r record) (MediaKind, error) {
	text, err := required[string](r, "text")
	if err != nil {
		return nil, err
	}
	ents, err := entities(r, "entities")
	if err != nil {
		return nil, err
	}
	return &MediaText{Text: text, Entities: ents}, nil
}

func decodeField[T any](key string, build func(T) MediaKind) func(record) (MediaKind, error) {
	return func(r record) (MediaKind, error) {
		v, err := required[T](r, key)
		if err != nil {
			return nil, err
		}
		return build(v), nil
	}
}

// decodeCaptioned decodes key together with the caption, caption_entities
// and media_group_id fields shared by the captioned media kinds.
func decodeCaptioned[T any](key string, build func(v T, caption string, ents []MessageEntity, group string) MediaKind) func(record) (MediaKind, error) {
	return func(r record) (MediaKind, error) {
		v, err := required[T](r, key)
		if err != nil {
			return nil, err
		}
		caption, err := optionalValue[string](r, "caption")
		if err != nil {
			return nil, err
		}
		ents, err := entities(r, "caption_entities")
		if err != nil {
			return nil, err
		}
		group, err := optionalValue[string](r, "media_group_id")
		if err != nil {
			return nil, err
		}
		return build(v, caption, ents, group), nil
	}
}
