// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinPasswordLength is the minimum number of characters (runes) in a password.
const MinPasswordLength = 8

// Violation messages, one per password rule.
const (
	MsgPasswordTooShort       = "password must be at least 8 characters long"
	MsgPasswordNoUppercase    = "password must contain at least one uppercase letter"
	MsgPasswordNoLowercase    = "password must contain at least one lowercase letter"
	MsgPasswordNoDigit        = "password must contain at least one digit"
	MsgPasswordNoSpecial      = "password must contain at least one special character"
	msgPasswordCommonSequence = "password contains a common character sequence: %s"
)

// PasswordHelpText describes the password policy for end users.
const PasswordHelpText = "Your password must contain:\n" +
	"- at least 8 characters\n" +
	"- uppercase and lowercase letters\n" +
	"- digits\n" +
	"- special characters (!@#$%^&* etc.)\n" +
	"- no common character sequences (qwerty, 123456 etc.)"

// specialCharacters is the fixed set accepted by the special-character rule.
const specialCharacters = `!@#$%^&*(),.?":{}|<>`

// commonSequences is the fixed deny-list, matched case-insensitively as
// substrings in this order.
var commonSequences = []string{
	"qwertyuiop", "asdfghjkl", "zxcvbnm",
	"1234567890", "password", "admin", "12345678",
	"qwerty123", "1q2w3e4r", "qazwsxedc", "iloveyou",
}

// ValidationResult is the outcome of a password check.
type ValidationResult struct {
	// Violations holds one message per failed rule in rule order; empty when
	// the password is accepted.
	Violations []string
}

// Valid reports whether the password passed every rule.
func (r ValidationResult) Valid() bool {
	return len(r.Violations) == 0
}

// PasswordStrengthValidator checks candidate passwords against the account
// password policy. It has no state, so one instance can serve every request.
type PasswordStrengthValidator struct{}

// NewPasswordStrengthValidator constructs a [PasswordStrengthValidator].
func NewPasswordStrengthValidator() *PasswordStrengthValidator {
	return &PasswordStrengthValidator{}
}

// Check runs every rule against password:
//  1. at least [MinPasswordLength] characters;
//  2. an uppercase Latin or Cyrillic letter (A-Z, А-Я);
//  3. a lowercase Latin or Cyrillic letter (a-z, а-я);
//  4. a decimal digit;
//  5. one of !@#$%^&*(),.?":{}|<>;
//  6. no common sequence from the deny-list, compared case-insensitively.
//
// Rules 1-5 are independent. Rule 6 stops at the first matching sequence
// and contributes at most one message.
func (v *PasswordStrengthValidator) Check(password string) ValidationResult {
	var violations []string

	if utf8.RuneCountInString(password) < MinPasswordLength {
		violations = append(violations, MsgPasswordTooShort)
	}
	if !strings.ContainsFunc(password, isUpper) {
		violations = append(violations, MsgPasswordNoUppercase)
	}
	if !strings.ContainsFunc(password, isLower) {
		violations = append(violations, MsgPasswordNoLowercase)
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		violations = append(violations, MsgPasswordNoDigit)
	}
	if !strings.ContainsAny(password, specialCharacters) {
		violations = append(violations, MsgPasswordNoSpecial)
	}

	lowered := strings.ToLower(password)
	for _, sequence := range commonSequences {
		if strings.Contains(lowered, sequence) {
			violations = append(violations, fmt.Sprintf(msgPasswordCommonSequence, sequence))
			break
		}
	}

	return ValidationResult{Violations: violations}
}

// Validate implements [Validator]. obj must be the password string (or a
// pointer to it); field scoping is not supported for passwords.
//
// Returns a *[ValidationError] wrapping [ErrWeakPassword] that lists every
// violated rule, or nil when the password is accepted.
func (v *PasswordStrengthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if len(fields) != 0 {
		return ErrUnknownField
	}

	var password string
	switch value := obj.(type) {
	case string:
		password = value
	case *string:
		if value == nil {
			return ErrUnsupportedType
		}
		password = *value
	default:
		return ErrUnsupportedType
	}

	if result := v.Check(password); !result.Valid() {
		return &ValidationError{Err: ErrWeakPassword, Violations: result.Violations}
	}

	return nil
}

func isUpper(r rune) bool {
	return ('A' <= r && r <= 'Z') || ('А' <= r && r <= 'Я')
}

func isLower(r rune) bool {
	return ('a' <= r && r <= 'z') || ('а' <= r && r <= 'я')
}
