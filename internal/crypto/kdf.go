// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the length of the derived key: 16 bytes of HMAC signing key
	// followed by 16 bytes of AES-128 encryption key.
	KeySize = 32

	// KDFIterations is the PBKDF2-HMAC-SHA256 work factor.
	KDFIterations = 100_000

	saltPrefix    = "salt_"
	saltSecretLen = 16
)

// DeriveKey stretches masterSecret into a [KeySize]-byte key with
// PBKDF2-HMAC-SHA256 and [KDFIterations] rounds.
//
// The salt is the fixed prefix "salt_" followed by the first 16 bytes of the
// secret, so the result depends on nothing but the secret: the same secret
// always yields the same key and tokens stay readable across restarts
// without persisting the key.
//
// Returns [ErrMissingMasterSecret] if masterSecret is empty.
func DeriveKey(masterSecret []byte) ([]byte, error) {
	if len(masterSecret) == 0 {
		return nil, ErrMissingMasterSecret
	}

	return pbkdf2.Key(masterSecret, deriveSalt(masterSecret), KDFIterations, KeySize, sha256.New), nil
}

func deriveSalt(masterSecret []byte) []byte {
	n := min(len(masterSecret), saltSecretLen)

	salt := make([]byte, 0, len(saltPrefix)+n)
	salt = append(salt, saltPrefix...)
	return append(salt, masterSecret[:n]...)
}
