package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrWeakPassword        = errors.New("password is too weak")
	ErrEmptyLogin          = errors.New("login is required")
	ErrEmptyEmail          = errors.New("email is required")
	ErrInvalidEmail        = errors.New("email is invalid")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrPasswordTooLong     = errors.New("password must be at most 72 bytes long")

	ErrInvalidUserID          = errors.New("invalid user ID")
	ErrEmptyFileName          = errors.New("file name is required")
	ErrEmptyFile              = errors.New("file is empty")
	ErrFileTooLarge           = errors.New("file is too large, maximum size is 10MB")
	ErrUnsupportedContentType = errors.New("unsupported file type, allowed: images (JPEG, PNG, GIF) and audio (MP3, WAV)")
)

// ValidationError carries every rule a value failed. The messages describe
// the user's own input and are safe to return to them verbatim.
type ValidationError struct {
	// Err is the sentinel classifying the failure (e.g. [ErrWeakPassword]).
	Err error

	// Violations lists one human-readable message per failed rule, in rule order.
	Violations []string
}

func (e *ValidationError) Error() string {
	return e.Err.Error() + ": " + strings.Join(e.Violations, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
