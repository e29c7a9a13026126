package types

// ReplyMarkup is one of the reply_markup shapes accepted by send methods:
// *InlineKeyboardMarkup, *ReplyKeyboardMarkup, *ReplyKeyboardRemove or
// *ForceReply.
type ReplyMarkup interface {
	replyMarkup()
}

// InlineKeyboardButton is one button of an inline keyboard. Exactly one of
// the optional fields must be set.
type InlineKeyboardButton struct {
	Text                         string      `json:"text"`
	URL                          string      `json:"url,omitempty"`
	CallbackData                 string      `json:"callback_data,omitempty"`
	WebApp                       *WebAppInfo `json:"web_app,omitempty"`
	SwitchInlineQuery            *string     `json:"switch_inline_query,omitempty"`
	SwitchInlineQueryCurrentChat *string     `json:"switch_inline_query_current_chat,omitempty"`
	Pay                          bool        `json:"pay,omitempty"`
}

// InlineKeyboardURL builds a button that opens url.
func InlineKeyboardURL(text, url string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, URL: url}
}

// InlineKeyboardCallback builds a button that sends data back to the bot.
func InlineKeyboardCallback(text, data string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, CallbackData: data}
}

// InlineKeyboardMarkup is a keyboard attached to a message.
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

// NewInlineKeyboard builds a keyboard from rows of buttons.
func NewInlineKeyboard(rows ...[]InlineKeyboardButton) *InlineKeyboardMarkup {
	if rows == nil {
		rows = [][]InlineKeyboardButton{}
	}
	return &InlineKeyboardMarkup{InlineKeyboard: rows}
}

// Append adds a row and returns the keyboard.
func (m *InlineKeyboardMarkup) Append(row ...InlineKeyboardButton) *InlineKeyboardMarkup {
	m.InlineKeyboard = append(m.InlineKeyboard, row)
	return m
}

func (*InlineKeyboardMarkup) replyMarkup() {}

// KeyboardButton is one button of a custom reply keyboard.
type KeyboardButton struct {
	Text            string      `json:"text"`
	RequestContact  bool        `json:"request_contact,omitempty"`
	RequestLocation bool        `json:"request_location,omitempty"`
	WebApp          *WebAppInfo `json:"web_app,omitempty"`
}

// ReplyKeyboardMarkup replaces the user's keyboard with custom buttons.
type ReplyKeyboardMarkup struct {
	Keyboard              [][]KeyboardButton `json:"keyboard"`
	ResizeKeyboard        bool               `json:"resize_keyboard,omitempty"`
	OneTimeKeyboard       bool               `json:"one_time_keyboard,omitempty"`
	InputFieldPlaceholder string             `json:"input_field_placeholder,omitempty"`
	Selective             bool               `json:"selective,omitempty"`
}

func (*ReplyKeyboardMarkup) replyMarkup() {}

// ReplyKeyboardRemove asks clients to hide the custom keyboard.
type ReplyKeyboardRemove struct {
	Selective bool `json:"selective,omitempty"`
}

func (r ReplyKeyboardRemove) MarshalJSON() ([]byte, error) {
	w := wire{"remove_keyboard": true}
	w.setFlag("selective", r.Selective)
	return marshalWire(w)
}

func (*ReplyKeyboardRemove) replyMarkup() {}

// ForceReply asks clients to show a reply interface for the message.
type ForceReply struct {
	InputFieldPlaceholder string
	Selective             bool
}

func (f ForceReply) MarshalJSON() ([]byte, error) {
	w := wire{"force_reply": true}
	w.setString("input_field_placeholder", f.InputFieldPlaceholder)
	w.setFlag("selective", f.Selective)
	return marshalWire(w)
}

func (*ForceReply) replyMarkup() {}
