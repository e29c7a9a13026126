package types

import "github.com/reshetovitsme/tgtypes/pkg/codec"

// Invoice is basic information about an invoice.
type Invoice struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	StartParameter string `json:"start_parameter"`
	Currency       string `json:"currency"`
	TotalAmount    int    `json:"total_amount"`
}

// ShippingAddress is a shipping address.
type ShippingAddress struct {
	CountryCode string `json:"country_code"`
	State       string `json:"state"`
	City        string `json:"city"`
	StreetLine1 string `json:"street_line1"`
	StreetLine2 string `json:"street_line2"`
	PostCode    string `json:"post_code"`
}

// OrderInfo is information about an order.
type OrderInfo struct {
	Name            string           `json:"name,omitempty"`
	PhoneNumber     string           `json:"phone_number,omitempty"`
	Email           string           `json:"email,omitempty"`
	ShippingAddress *ShippingAddress `json:"shipping_address,omitempty"`
}

// SuccessfulPayment is basic information about a successful payment.
type SuccessfulPayment struct {
	Currency                string     `json:"currency"`
	TotalAmount             int        `json:"total_amount"`
	InvoicePayload          string     `json:"invoice_payload"`
	ShippingOptionID        string     `json:"shipping_option_id,omitempty"`
	OrderInfo               *OrderInfo `json:"order_info,omitempty"`
	TelegramPaymentChargeID string     `json:"telegram_payment_charge_id"`
	ProviderPaymentChargeID string     `json:"provider_payment_charge_id"`
}

// PassportFile is a file uploaded to Telegram Passport.
type PassportFile struct {
	FileMeta
	FileDate codec.UnixTime `json:"file_date"`
}

// EncryptedPassportElement is one document or piece of personal data shared
// through Telegram Passport.
type EncryptedPassportElement struct {
	Type        string         `json:"type"`
	Data        string         `json:"data,omitempty"`
	PhoneNumber string         `json:"phone_number,omitempty"`
	Email       string         `json:"email,omitempty"`
	Files       []PassportFile `json:"files,omitempty"`
	FrontSide   *PassportFile  `json:"front_side,omitempty"`
	ReverseSide *PassportFile  `json:"reverse_side,omitempty"`
	Selfie      *PassportFile  `json:"selfie,omitempty"`
	Translation []PassportFile `json:"translation,omitempty"`
	Hash        string         `json:"hash"`
}

// EncryptedCredentials is the data needed to decrypt passport elements.
type EncryptedCredentials struct {
	Data   string `json:"data"`
	Hash   string `json:"hash"`
	Secret string `json:"secret"`
}

// PassportData is Telegram Passport data shared with the bot.
type PassportData struct {
	Data        []EncryptedPassportElement `json:"data"`
	Credentials EncryptedCredentials       `json:"credentials"`
}

// ProximityAlertTriggered is sent when a user in the chat triggers another
// user's proximity alert while sharing a live location.
type ProximityAlertTriggered struct {
	Traveler User   `json:"traveler"`
	Watcher  User   `json:"watcher"`
	Distance uint32 `json:"distance"`
}

// AutoDeleteTimerChanged is a change of the chat's auto-delete timer.
type AutoDeleteTimerChanged struct {
	MessageAutoDeleteTime codec.Seconds `json:"message_auto_delete_time"`
}

// VideoChatScheduled is a video chat scheduled in the chat.
type VideoChatScheduled struct {
	StartDate codec.UnixTime `json:"start_date"`
}

// VideoChatStarted is a video chat started in the chat. It carries no data.
type VideoChatStarted struct{}

// VideoChatEnded is a video chat ended in the chat.
type VideoChatEnded struct {
	Duration codec.Seconds `json:"duration"`
}

// VideoChatParticipantsInvited lists users invited to a video chat.
type VideoChatParticipantsInvited struct {
	Users []User `json:"users,omitempty"`
}

// WebAppInfo describes a Web App.
type WebAppInfo struct {
	URL string `json:"url"`
}

// WebAppData is data sent from a Web App to the bot.
type WebAppData struct {
	Data       string `json:"data"`
	ButtonText string `json:"button_text"`
}

// BotCommand is a command shown in the bot's command menu.
type BotCommand struct {
	Command     string `json:"command" validate:"required,max=32"`
	Description string `json:"description" validate:"required,max=256"`
}

// WebhookInfo is the current webhook status. URL is empty when the bot uses
// long polling.
type WebhookInfo struct {
	URL                  codec.OptionalURL `json:"url"`
	HasCustomCertificate bool              `json:"has_custom_certificate"`
	PendingUpdateCount   int               `json:"pending_update_count"`
	IPAddress            string            `json:"ip_address,omitempty"`
	LastErrorDate        *codec.UnixTime   `json:"last_error_date,omitempty"`
	LastErrorMessage     string            `json:"last_error_message,omitempty"`
	MaxConnections       int               `json:"max_connections,omitempty"`
	AllowedUpdates       []string          `json:"allowed_updates,omitempty"`
}

// ResponseParameters explains why a request failed and how to retry it.
type ResponseParameters struct {
	MigrateToChatID ChatID         `json:"migrate_to_chat_id,omitempty"`
	RetryAfter      *codec.Seconds `json:"retry_after,omitempty"`
}
