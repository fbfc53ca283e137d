package crypto

import "errors"

// Sentinel errors returned by the crypto package. Callers match them with
// [errors.Is]; none of them carries key material or plaintext.
var (
	// ErrMissingMasterSecret is returned when the encryptor is asked to
	// derive its key from an empty master secret. It is fatal at startup.
	ErrMissingMasterSecret = errors.New("master secret is not set")

	// ErrAuthentication is returned when a token's HMAC tag does not verify:
	// the token was tampered with, corrupted, or sealed under another key.
	ErrAuthentication = errors.New("ciphertext authentication failed")

	// ErrFormat is returned when a token is structurally invalid: empty,
	// not base64url, too short, misaligned, or carrying an unknown version.
	ErrFormat = errors.New("malformed ciphertext")

	// ErrDecode is returned when a token decrypts successfully but the
	// plaintext is not a serialized attribute bundle.
	ErrDecode = errors.New("decrypted attributes cannot be decoded")

	// ErrInvalidAttribute is returned by EncryptAttributes when a key or
	// value is not valid UTF-8 and could not survive a round trip.
	ErrInvalidAttribute = errors.New("attribute is not valid UTF-8")
)
