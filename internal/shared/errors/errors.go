package errors

import "errors"

var (
	ErrMissingBotToken = errors.New("telegram bot token is not configured")
	ErrChatNotFound    = errors.New("chat is not watched")
	ErrMessageNotFound = errors.New("message not found")
	ErrInvalidMessage  = errors.New("invalid message")
	ErrChatInactive    = errors.New("chat is paused")
	ErrFiltered        = errors.New("message rejected by chat filters")
	ErrUnauthorized    = errors.New("user is not allowed to manage chats")
	ErrNoPermalink     = errors.New("message has no public link")
)

// Is is errors.Is, re-exported so callers need a single errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As, re-exported so callers need a single errors import.
func As(err error, target any) bool {
	return errors.As(err, target)
}
