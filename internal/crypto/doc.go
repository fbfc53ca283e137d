// Package crypto implements field-level encryption at rest.
//
// A single symmetric key is derived from the process-wide master secret with
// PBKDF2-HMAC-SHA256 (see [DeriveKey]) and wrapped in an [Encryptor], which
// seals user attribute bundles and uploaded file bytes into self-describing
// Fernet tokens. Tokens produced by other Fernet implementations using the
// same derived key decrypt here, and vice versa.
//
// Failures are reported through the sentinel errors in this package so the
// caller can log the cause and answer the end user with a generic message.
package crypto
