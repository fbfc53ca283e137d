package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong login or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	// ErrCannotReadData is returned when stored ciphertext cannot be
	// decrypted or decoded. The cause is logged, never returned to clients.
	ErrCannotReadData = errors.New("cannot read data")

	// ErrCannotProtectData is returned when data cannot be encrypted before
	// it is stored.
	ErrCannotProtectData = errors.New("cannot encrypt data")
)
