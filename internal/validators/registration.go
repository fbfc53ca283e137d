package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-secure-profile/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldLogin targets the unique account login.
	FieldLogin = "login"

	// FieldEmail targets the contact email of a new account.
	FieldEmail = "email"

	// FieldPassword targets the password strength rules.
	FieldPassword = "password"

	// FieldPasswordConfirmation checks that the repeated password matches.
	FieldPasswordConfirmation = "password2"
)

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

// RegistrationValidator validates [models.RegisterRequest] before an account
// is created. It reports the first failing field, in the order the fields
// are requested.
type RegistrationValidator struct {
	passwords *PasswordStrengthValidator
}

// NewRegistrationValidator constructs a RegistrationValidator backed by
// the given password policy.
func NewRegistrationValidator(passwords *PasswordStrengthValidator) Validator {
	if passwords == nil {
		passwords = NewPasswordStrengthValidator()
	}
	return &RegistrationValidator{passwords: passwords}
}

func (v *RegistrationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRegisterRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RegistrationValidator) validateRegisterRequest(ctx context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldEmail, FieldPasswordConfirmation, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(request.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldEmail:
			if err := validateEmail(request.Email); err != nil {
				return err
			}
		case FieldPasswordConfirmation:
			if request.Password != request.Password2 {
				return ErrPasswordsDoNotMatch
			}
		case FieldPassword:
			if err := v.passwords.Validate(ctx, request.Password); err != nil {
				return err
			}
			if len(request.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmail accepts a bare RFC 5322 address; display names
// ("Name <addr>") are rejected.
func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}

	address, err := mail.ParseAddress(email)
	if err != nil || address.Address != email || address.Name != "" {
		return ErrInvalidEmail
	}

	return nil
}
