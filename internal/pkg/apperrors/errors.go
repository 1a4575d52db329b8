package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")

	// Authorization errors
	ErrNotOwner       = errors.New("user is not the owner")
	ErrNotParticipant = errors.New("user is not a participant")

	// Authentication errors
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")

	// Remote call errors
	ErrRemoteUnavailable = errors.New("remote service unavailable")
)

// Error is an application error carrying the message key that identifies
// the localized text shown to the client.
type Error struct {
	Err        error
	MessageKey string
}

// Error implements error interface
func (e *Error) Error() string {
	if e.MessageKey != "" {
		return e.MessageKey
	}
	return e.Err.Error()
}

// Unwrap implements errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound creates a not-found error with a message key
func NotFound(messageKey string) error {
	return &Error{Err: ErrNotFound, MessageKey: messageKey}
}

// NotOwner creates an ownership-violation error with a message key
func NotOwner(messageKey string) error {
	return &Error{Err: ErrNotOwner, MessageKey: messageKey}
}

// NotParticipant creates a participation-violation error with a message key
func NotParticipant(messageKey string) error {
	return &Error{Err: ErrNotParticipant, MessageKey: messageKey}
}

// AlreadyExists creates a duplicate-resource error with a message key
func AlreadyExists(messageKey string) error {
	return &Error{Err: ErrAlreadyExists, MessageKey: messageKey}
}

// RemoteUnavailable creates a remote-call-failure error with a message key
func RemoteUnavailable(messageKey string) error {
	return &Error{Err: ErrRemoteUnavailable, MessageKey: messageKey}
}

// MessageKeyOf extracts the message key from err, or returns an empty string.
func MessageKeyOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.MessageKey
	}
	return ""
}
