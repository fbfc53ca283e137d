// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"time"
	"unicode/utf8"
)

// encryptor is the private implementation of [Encryptor].
type encryptor struct {
	envelope envelope
}

// NewEncryptor derives the working key from masterSecret once and returns an
// immutable [Encryptor] built on it. The derivation is deliberately slow, so
// construct a single instance at process start and inject it wherever it is
// needed.
//
// Returns [ErrMissingMasterSecret] if masterSecret is empty; the encryptor
// never exists without a key.
func NewEncryptor(masterSecret []byte) (Encryptor, error) {
	key, err := DeriveKey(masterSecret)
	if err != nil {
		return nil, err
	}

	return newEncryptorWithKey(key, time.Now, rand.Reader)
}

func newEncryptorWithKey(key []byte, now func() time.Time, random io.Reader) (*encryptor, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", KeySize, len(key))
	}

	owned := make([]byte, KeySize)
	copy(owned, key)

	return &encryptor{envelope: newEnvelope(owned, now, random)}, nil
}

// Encrypt implements [Encryptor].
func (e *encryptor) Encrypt(plaintext []byte) ([]byte, error) {
	token, err := e.envelope.seal(plaintext)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}
	return token, nil
}

// Decrypt implements [Encryptor].
func (e *encryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	plaintext, err := e.envelope.open(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	return plaintext, nil
}

// EncryptAttributes implements [Encryptor]. The bundle is written as a JSON
// object; encoding/json emits map keys in sorted order, which keeps the
// serialized form stable for equal bundles. A nil bundle is stored as {}.
// Keys and values must be valid UTF-8.
func (e *encryptor) EncryptAttributes(attributes Attributes) ([]byte, error) {
	if attributes == nil {
		attributes = Attributes{}
	}

	for key, value := range attributes {
		if !utf8.ValidString(key) {
			return nil, ErrInvalidAttribute
		}
		if !utf8.ValidString(value) {
			return nil, fmt.Errorf("%w: value of %q", ErrInvalidAttribute, key)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(map[string]string(attributes)); err != nil {
		return nil, fmt.Errorf("marshal attributes: %w", err)
	}

	return e.Encrypt(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

// DecryptAttributes implements [Encryptor].
func (e *encryptor) DecryptAttributes(ciphertext []byte) (Attributes, error) {
	plaintext, err := e.Decrypt(ciphertext)
	if err != nil {
		return nil, err
	}

	var attributes Attributes
	if err := json.Unmarshal(plaintext, &attributes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	// JSON null unmarshals into a nil map without error.
	if attributes == nil {
		return nil, fmt.Errorf("%w: bundle is null", ErrDecode)
	}

	return attributes, nil
}

// EncryptFile implements [Encryptor].
func (e *encryptor) EncryptFile(data []byte) ([]byte, error) {
	return e.Encrypt(data)
}

// DecryptFile implements [Encryptor].
func (e *encryptor) DecryptFile(ciphertext []byte) ([]byte, error) {
	return e.Decrypt(ciphertext)
}
