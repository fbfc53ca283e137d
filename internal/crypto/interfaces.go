// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/encryptor_mock.go -package=mock

// Attributes is a bundle of named sensitive profile fields (email, first
// name, last name). It only ever exists in memory: at rest it is stored as
// the ciphertext returned by [Encryptor.EncryptAttributes].
type Attributes map[string]string

// Encryptor is the encryption-at-rest engine. It holds a single symmetric
// key derived from the master secret and is safe for concurrent use by any
// number of goroutines: every method only reads the immutable key and
// allocates call-scoped buffers.
//
// Every ciphertext is a self-describing Fernet token:
//
//	base64url(0x80 ‖ timestamp ‖ IV ‖ AES-128-CBC ciphertext ‖ HMAC-SHA256)
//
// so decryption needs nothing but the key.
type Encryptor interface {
	// Encrypt seals plaintext with a fresh random IV. Encrypting the same
	// plaintext twice yields two different tokens.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt verifies and opens a token produced by Encrypt.
	// Returns an error wrapping [ErrFormat] when the token is structurally
	// malformed and [ErrAuthentication] when the tag does not verify.
	Decrypt(ciphertext []byte) ([]byte, error)

	// EncryptAttributes serializes the bundle canonically (sorted keys,
	// UTF-8 JSON object) and encrypts it.
	EncryptAttributes(attributes Attributes) ([]byte, error)

	// DecryptAttributes decrypts a token and parses the bundle. On any
	// failure the returned bundle is nil; a token that opens but does not
	// hold a flat string object yields [ErrDecode].
	DecryptAttributes(ciphertext []byte) (Attributes, error)

	// EncryptFile encrypts raw file bytes. No size limit is enforced here.
	EncryptFile(data []byte) ([]byte, error)

	// DecryptFile opens a token produced by EncryptFile.
	DecryptFile(ciphertext []byte) ([]byte, error)
}
