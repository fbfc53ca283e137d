package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-secure-profile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Login:     "ivan",
		Email:     "ivan@example.com",
		Password:  "StrongPass123!",
		Password2: "StrongPass123!",
		FirstName: "Ivan",
		LastName:  "Petrov",
	}
}

func TestRegistrationValidator_Validate(t *testing.T) {
	v := NewRegistrationValidator(nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		modify  func(r *models.RegisterRequest)
		wantErr error
	}{
		{name: "valid", modify: func(r *models.RegisterRequest) {}},
		{name: "names are optional", modify: func(r *models.RegisterRequest) { r.FirstName, r.LastName = "", "" }},
		{name: "empty login", modify: func(r *models.RegisterRequest) { r.Login = "  " }, wantErr: ErrEmptyLogin},
		{name: "empty email", modify: func(r *models.RegisterRequest) { r.Email = "" }, wantErr: ErrEmptyEmail},
		{name: "invalid email", modify: func(r *models.RegisterRequest) { r.Email = "not-an-email" }, wantErr: ErrInvalidEmail},
		{name: "email with display name", modify: func(r *models.RegisterRequest) { r.Email = "Ivan <ivan@example.com>" }, wantErr: ErrInvalidEmail},
		{name: "passwords differ", modify: func(r *models.RegisterRequest) { r.Password2 = "StrongPass123?" }, wantErr: ErrPasswordsDoNotMatch},
		{
			name: "weak password",
			modify: func(r *models.RegisterRequest) {
				r.Password, r.Password2 = "qwerty123!", "qwerty123!"
			},
			wantErr: ErrWeakPassword,
		},
		{
			name: "password longer than bcrypt input",
			modify: func(r *models.RegisterRequest) {
				long := "StrongPass123!" + strings.Repeat("x", 60)
				r.Password, r.Password2 = long, long
			},
			wantErr: ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.modify(&req)

			err := v.Validate(ctx, req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistrationValidator_WeakPasswordListsViolations(t *testing.T) {
	v := NewRegistrationValidator(NewPasswordStrengthValidator())

	req := validRegisterRequest()
	req.Password, req.Password2 = "nopassword123!", "nopassword123!"

	err := v.Validate(context.Background(), &req)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{
		MsgPasswordNoUppercase,
		"password contains a common character sequence: password",
	}, validationErr.Violations)
}

func TestRegistrationValidator_FieldScoping(t *testing.T) {
	v := NewRegistrationValidator(nil)
	ctx := context.Background()

	req := validRegisterRequest()
	req.Email = ""

	assert.NoError(t, v.Validate(ctx, req, FieldLogin, FieldPassword))
	assert.ErrorIs(t, v.Validate(ctx, req, FieldEmail), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(ctx, req, "unknown"), ErrUnknownField)
}

func TestRegistrationValidator_UnsupportedType(t *testing.T) {
	v := NewRegistrationValidator(nil)
	var nilReq *models.RegisterRequest

	assert.ErrorIs(t, v.Validate(context.Background(), "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), nilReq), ErrUnsupportedType)
}
