// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// Token layout (before base64url):
//
//	version (1) ‖ timestamp (8, big-endian unix seconds) ‖ IV (16) ‖ ciphertext (n*16) ‖ HMAC (32)
const (
	tokenVersion byte = 0x80

	versionSize   = 1
	timestampSize = 8
	ivSize        = aes.BlockSize
	macSize       = sha256.Size

	headerSize     = versionSize + timestampSize + ivSize
	minTokenLength = headerSize + aes.BlockSize + macSize
)

var tokenEncoding = base64.URLEncoding.Strict()

// envelope seals and opens Fernet tokens. signingKey authenticates the whole
// token, encryptionKey drives AES-128-CBC.
type envelope struct {
	signingKey    []byte
	encryptionKey []byte

	now    func() time.Time
	random io.Reader
}

func newEnvelope(key []byte, now func() time.Time, random io.Reader) envelope {
	return envelope{
		signingKey:    key[:KeySize/2],
		encryptionKey: key[KeySize/2:],
		now:           now,
		random:        random,
	}
}

func (e envelope) seal(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(e.encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)

	raw := make([]byte, headerSize+len(padded), headerSize+len(padded)+macSize)
	raw[0] = tokenVersion
	binary.BigEndian.PutUint64(raw[versionSize:], uint64(e.now().Unix()))

	iv := raw[versionSize+timestampSize : headerSize]
	if _, err := io.ReadFull(e.random, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(raw[headerSize:], padded)
	raw = append(raw, e.sign(raw)...)

	token := make([]byte, tokenEncoding.EncodedLen(len(raw)))
	tokenEncoding.Encode(token, raw)
	return token, nil
}

func (e envelope) open(token []byte) ([]byte, error) {
	if len(token) == 0 {
		return nil, fmt.Errorf("%w: empty token", ErrFormat)
	}

	raw := make([]byte, tokenEncoding.DecodedLen(len(token)))
	n, err := tokenEncoding.Decode(raw, token)
	if err != nil {
		return nil, fmt.Errorf("%w: token is not base64url", ErrFormat)
	}
	raw = raw[:n]

	if len(raw) < minTokenLength {
		return nil, fmt.Errorf("%w: token too short", ErrFormat)
	}
	if raw[0] != tokenVersion {
		return nil, fmt.Errorf("%w: unknown version 0x%02x", ErrFormat, raw[0])
	}

	body, tag := raw[:len(raw)-macSize], raw[len(raw)-macSize:]
	if (len(body)-headerSize)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not a whole number of blocks", ErrFormat)
	}

	if !hmac.Equal(e.sign(body), tag) {
		return nil, ErrAuthentication
	}

	block, err := aes.NewCipher(e.encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	iv := body[versionSize+timestampSize : headerSize]
	plaintext := make([]byte, len(body)-headerSize)
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, body[headerSize:])

	plaintext, ok := pkcs7Unpad(plaintext, aes.BlockSize)
	if !ok {
		return nil, ErrAuthentication
	}

	return plaintext, nil
}

func (e envelope) sign(data []byte) []byte {
	mac := hmac.New(sha256.New, e.signingKey)
	mac.Write(data)
	return mac.Sum(nil)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize

	padded := make([]byte, len(data), len(data)+padLen)
	copy(padded, data)
	return append(padded, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, false
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, false
		}
	}

	return data[:len(data)-padLen], true
}
