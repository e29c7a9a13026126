package types

import "github.com/reshetovitsme/tgtypes/pkg/codec"

// FileMeta identifies a file stored on Telegram servers. It is embedded in
// every file-backed type.
type FileMeta struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	FileSize     int64  `json:"file_size,omitempty"`
}

// PhotoSize is one size of a photo or of a file thumbnail.
type PhotoSize struct {
	FileMeta
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Animation is a GIF or an H.264/MPEG-4 AVC video without sound.
type Animation struct {
	FileMeta
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Duration codec.Seconds `json:"duration"`
	Thumb    *PhotoSize    `json:"thumb,omitempty"`
	FileName string        `json:"file_name,omitempty"`
	MimeType string        `json:"mime_type,omitempty"`
}

// Audio is a music file.
type Audio struct {
	FileMeta
	Duration  codec.Seconds `json:"duration"`
	Performer string        `json:"performer,omitempty"`
	Title     string        `json:"title,omitempty"`
	FileName  string        `json:"file_name,omitempty"`
	MimeType  string        `json:"mime_type,omitempty"`
	Thumb     *PhotoSize    `json:"thumb,omitempty"`
}

// Document is a general file.
type Document struct {
	FileMeta
	Thumb    *PhotoSize `json:"thumb,omitempty"`
	FileName string     `json:"file_name,omitempty"`
	MimeType string     `json:"mime_type,omitempty"`
}

// Video is a video file.
type Video struct {
	FileMeta
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Duration codec.Seconds `json:"duration"`
	Thumb    *PhotoSize    `json:"thumb,omitempty"`
	FileName string        `json:"file_name,omitempty"`
	MimeType string        `json:"mime_type,omitempty"`
}

// VideoNote is a round video message.
type VideoNote struct {
	FileMeta
	Length   int           `json:"length"`
	Duration codec.Seconds `json:"duration"`
	Thumb    *PhotoSize    `json:"thumb,omitempty"`
}

// Voice is a voice note.
type Voice struct {
	FileMeta
	Duration codec.Seconds `json:"duration"`
	MimeType string        `json:"mime_type,omitempty"`
}

// MaskPosition describes where a mask sticker is placed on a face.
type MaskPosition struct {
	Point  string  `json:"point"`
	XShift float64 `json:"x_shift"`
	YShift float64 `json:"y_shift"`
	Scale  float64 `json:"scale"`
}

// Sticker is a static, animated or video sticker.
type Sticker struct {
	FileMeta
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	IsAnimated   bool          `json:"is_animated"`
	IsVideo      bool          `json:"is_video"`
	Thumb        *PhotoSize    `json:"thumb,omitempty"`
	Emoji        string        `json:"emoji,omitempty"`
	SetName      string        `json:"set_name,omitempty"`
	MaskPosition *MaskPosition `json:"mask_position,omitempty"`
}

// Contact is a shared phone contact.
type Contact struct {
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
	UserID      UserID `json:"user_id,omitempty"`
	VCard       string `json:"vcard,omitempty"`
}

// Location is a point on the map.
type Location struct {
	Longitude            float64        `json:"longitude"`
	Latitude             float64        `json:"latitude"`
	HorizontalAccuracy   *float64       `json:"horizontal_accuracy,omitempty"`
	LivePeriod           *codec.Seconds `json:"live_period,omitempty"`
	Heading              *uint16        `json:"heading,omitempty"`
	ProximityAlertRadius *uint32        `json:"proximity_alert_radius,omitempty"`
}

// Venue is a named place with a location.
type Venue struct {
	Location        Location `json:"location"`
	Title           string   `json:"title"`
	Address         string   `json:"address"`
	FoursquareID    string   `json:"foursquare_id,omitempty"`
	FoursquareType  string   `json:"foursquare_type,omitempty"`
	GooglePlaceID   string   `json:"google_place_id,omitempty"`
	GooglePlaceType string   `json:"google_place_type,omitempty"`
}

// PollOption is one answer of a poll.
type PollOption struct {
	Text       string `json:"text"`
	VoterCount int    `json:"voter_count"`
}

// Poll is a native poll or quiz.
type Poll struct {
	ID                    string          `json:"id"`
	Question              string          `json:"question"`
	Options               []PollOption    `json:"options"`
	TotalVoterCount       int             `json:"total_voter_count"`
	IsClosed              bool            `json:"is_closed"`
	IsAnonymous           bool            `json:"is_anonymous"`
	Type                  PollType        `json:"type"`
	AllowsMultipleAnswers bool            `json:"allows_multiple_answers"`
	CorrectOptionID       *int            `json:"correct_option_id,omitempty"`
	Explanation           string          `json:"explanation,omitempty"`
	ExplanationEntities   []MessageEntity `json:"explanation_entities,omitempty"`
	OpenPeriod            *codec.Seconds  `json:"open_period,omitempty"`
	CloseDate             *codec.UnixTime `json:"close_date,omitempty"`
}

// Game is an HTML5 game.
type Game struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Photo        []PhotoSize     `json:"photo"`
	Text         string          `json:"text,omitempty"`
	TextEntities []MessageEntity `json:"text_entities,omitempty"`
	Animation    *Animation      `json:"animation,omitempty"`
}

// Dice is an animated emoji with a random value.
type Dice struct {
	Emoji string `json:"emoji"`
	Value int    `json:"value"`
}
