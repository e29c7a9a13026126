package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

// InputFile is a file to send that is already reachable by Telegram: a
// file_id of a file stored on Telegram servers or an HTTP URL to fetch.
type InputFile struct {
	FileID string
	URL    *url.URL
}

// FileID refers to a file already stored on Telegram servers.
func FileID(id string) InputFile {
	return InputFile{FileID: id}
}

// FileURL asks Telegram to download the file from u.
func FileURL(u *url.URL) InputFile {
	return InputFile{URL: u}
}

func (f InputFile) MarshalJSON() ([]byte, error) {
	switch {
	case f.FileID != "":
		return json.Marshal(f.FileID)
	case f.URL != nil:
		return json.Marshal(f.URL.String())
	default:
		return nil, errors.New("types: empty input file")
	}
}

// InputMediaType is the "type" of an InputMedia.
type InputMediaType string

const (
	InputMediaPhoto    InputMediaType = "photo"
	InputMediaVideo    InputMediaType = "video"
	InputMediaAudio    InputMediaType = "audio"
	InputMediaDocument InputMediaType = "document"
)

// InputMedia is one item of a media group.
type InputMedia struct {
	Type            InputMediaType  `json:"type"`
	Media           InputFile       `json:"media"`
	Caption         string          `json:"caption,omitempty"`
	ParseMode       ParseMode       `json:"parse_mode,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
	Width           int             `json:"width,omitempty"`
	Height          int             `json:"height,omitempty"`
	Duration        int             `json:"duration,omitempty"`
	Performer       string          `json:"performer,omitempty"`
	Title           string          `json:"title,omitempty"`
}

// NewInputMedia builds a media group item of the given type.
func NewInputMedia(typ InputMediaType, media InputFile) InputMedia {
	return InputMedia{Type: typ, Media: media}
}

func (m InputMedia) WithCaption(caption string) InputMedia {
	m.Caption = caption
	return m
}

func (m InputMedia) WithParseMode(mode ParseMode) InputMedia {
	m.ParseMode = mode
	return m
}

// InputMessageContent is the content of a message sent as the result of an
// inline query: *InputTextMessageContent or *InputLocationMessageContent.
type InputMessageContent interface {
	inputMessageContent()
}

type InputTextMessageContent struct {
	MessageText           string          `json:"message_text"`
	ParseMode             ParseMode       `json:"parse_mode,omitempty"`
	Entities              []MessageEntity `json:"entities,omitempty"`
	DisableWebPagePreview bool            `json:"disable_web_page_preview,omitempty"`
}

func (*InputTextMessageContent) inputMessageContent() {}

// decodeInputMessageContent picks the variant by its required keys.
func decodeInputMessageContent(data []byte) (InputMessageContent, error) {
	r, err := parseRecord(data)
	if err != nil {
		return nil, err
	}

	var content InputMessageContent
	switch {
	case r.has("message_text"):
		content = &InputTextMessageContent{}
	case r.hasAll("latitude", "longitude"):
		content = &InputLocationMessageContent{}
	default:
		return nil, ErrNoMatchingKind
	}
	if err := json.Unmarshal(data, content); err != nil {
		return nil, err
	}
	return content, nil
}

type InputLocationMessageContent struct {
	Latitude             float64  `json:"latitude"`
	Longitude            float64  `json:"longitude"`
	HorizontalAccuracy   *float64 `json:"horizontal_accuracy,omitempty"`
	LivePeriod           *int     `json:"live_period,omitempty"`
	Heading              *uint16  `json:"heading,omitempty"`
	ProximityAlertRadius *uint32  `json:"proximity_alert_radius,omitempty"`
}

func (*InputLocationMessageContent) inputMessageContent() {}

// InlineQueryResultLocation is a location offered as an inline query
// result. By default the location itself is sent; set InputMessageContent
// to send something else.
type InlineQueryResultLocation struct {
	ID                   string                `json:"id"`
	Latitude             float64               `json:"latitude"`
	Longitude            float64               `json:"longitude"`
	Title                string                `json:"title"`
	HorizontalAccuracy   *float64              `json:"horizontal_accuracy,omitempty"`
	LivePeriod           *int                  `json:"live_period,omitempty"`
	Heading              *uint16               `json:"heading,omitempty"`
	ProximityAlertRadius *uint32               `json:"proximity_alert_radius,omitempty"`
	ReplyMarkup          *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent  InputMessageContent   `json:"input_message_content,omitempty"`
	ThumbURL             string                `json:"thumb_url,omitempty"`
	ThumbWidth           *uint32               `json:"thumb_width,omitempty"`
	ThumbHeight          *uint32               `json:"thumb_height,omitempty"`
}

func NewInlineQueryResultLocation(id, title string, latitude, longitude float64) *InlineQueryResultLocation {
	return &InlineQueryResultLocation{ID: id, Title: title, Latitude: latitude, Longitude: longitude}
}

func (r *InlineQueryResultLocation) WithHorizontalAccuracy(v float64) *InlineQueryResultLocation {
	r.HorizontalAccuracy = &v
	return r
}

func (r *InlineQueryResultLocation) WithLivePeriod(v int) *InlineQueryResultLocation {
	r.LivePeriod = &v
	return r
}

func (r *InlineQueryResultLocation) WithHeading(v uint16) *InlineQueryResultLocation {
	r.Heading = &v
	return r
}

func (r *InlineQueryResultLocation) WithProximityAlertRadius(v uint32) *InlineQueryResultLocation {
	r.ProximityAlertRadius = &v
	return r
}

func (r *InlineQueryResultLocation) WithReplyMarkup(v *InlineKeyboardMarkup) *InlineQueryResultLocation {
	r.ReplyMarkup = v
	return r
}

func (r *InlineQueryResultLocation) WithInputMessageContent(v InputMessageContent) *InlineQueryResultLocation {
	r.InputMessageContent = v
	return r
}

func (r *InlineQueryResultLocation) WithThumb(thumbURL string, width, height uint32) *InlineQueryResultLocation {
	r.ThumbURL = thumbURL
	r.ThumbWidth = &width
	r.ThumbHeight = &height
	return r
}

// MarshalJSON adds the "type" tag that identifies the result kind.
func (r InlineQueryResultLocation) MarshalJSON() ([]byte, error) {
	type plain InlineQueryResultLocation
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{Type: "location", plain: plain(r)})
}

func (r *InlineQueryResultLocation) UnmarshalJSON(data []byte) error {
	type plain InlineQueryResultLocation
	var aux struct {
		Type                string          `json:"type"`
		InputMessageContent json.RawMessage `json:"input_message_content"`
		plain
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Type != "location" {
		return &FieldError{Key: "type", Err: fmt.Errorf("%q is not a location result", aux.Type)}
	}

	out := InlineQueryResultLocation(aux.plain)
	if len(aux.InputMessageContent) > 0 && string(aux.InputMessageContent) != "null" {
		content, err := decodeInputMessageContent(aux.InputMessageContent)
		if err != nil {
			return &FieldError{Key: "input_message_content", Err: err}
		}
		out.InputMessageContent = content
	}

	*r = out
	return nil
}
