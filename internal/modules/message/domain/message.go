package domain

import (
	"time"

	"github.com/reshetovitsme/tgtypes/pkg/types"
	"github.com/samber/lo"
)

// Summary is the flat view of a stored message used by feeds and the HTTP
// API.
type Summary struct {
	ID       int32                 `json:"message_id"`
	ChatID   types.ChatID          `json:"chat_id"`
	ChatName string                `json:"chat_name"`
	Kind     types.MessageKindName `json:"kind"`
	Media    types.MediaKindName   `json:"media,omitempty"`
	Text     string                `json:"text,omitempty"`
	Date     time.Time             `json:"date"`
	Author   string                `json:"author,omitempty"`
	Files    []File                `json:"files,omitempty"`
	Link     string                `json:"link,omitempty"`
}

// File is a downloadable attachment of a message.
type File struct {
	Kind   types.MediaKindName `json:"kind"`
	FileID string              `json:"file_id"`
}

// Summarize flattens m through its accessors.
func Summarize(m *types.Message) *Summary {
	s := &Summary{
		ID:       m.ID,
		ChatID:   m.Chat.ID,
		ChatName: m.Chat.DisplayName(),
		Kind:     m.KindName(),
		Date:     m.Date,
		Author:   Author(m),
	}

	if media, ok := m.MediaKindName(); ok {
		s.Media = media
	}
	if text, ok := m.Text(); ok {
		s.Text = text
	} else if caption, ok := m.Caption(); ok {
		s.Text = caption
	}
	if u := m.URL(); u != nil {
		s.Link = u.String()
	}
	if fileID, ok := FileID(m); ok {
		s.Files = []File{{Kind: s.Media, FileID: fileID}}
	}

	return s
}

// Author names whoever a reader would credit for m: the channel post
// signature, then the chat it was sent on behalf of, then the sender.
func Author(m *types.Message) string {
	if signature, ok := m.AuthorSignature(); ok {
		return signature
	}
	if chat := m.SenderChat(); chat != nil {
		return chat.DisplayName()
	}
	if from := m.From(); from != nil {
		return from.FullName()
	}
	return ""
}

// FileID returns the file id of the attachment of m. Photos resolve to
// their largest size.
func FileID(m *types.Message) (string, bool) {
	if sizes, ok := m.Photo(); ok && len(sizes) > 0 {
		largest := lo.MaxBy(sizes, func(a, b types.PhotoSize) bool {
			return a.Width*a.Height > b.Width*b.Height
		})
		return largest.FileID, true
	}

	var meta *types.FileMeta
	switch {
	case m.Animation() != nil:
		meta = &m.Animation().FileMeta
	case m.Audio() != nil:
		meta = &m.Audio().FileMeta
	case m.Document() != nil:
		meta = &m.Document().FileMeta
	case m.Sticker() != nil:
		meta = &m.Sticker().FileMeta
	case m.Video() != nil:
		meta = &m.Video().FileMeta
	case m.VideoNote() != nil:
		meta = &m.VideoNote().FileMeta
	case m.Voice() != nil:
		meta = &m.Voice().FileMeta
	}
	if meta == nil || meta.FileID == "" {
		return "", false
	}
	return meta.FileID, true
}
