package service

import (
	"context"

	"github.com/MKhiriev/go-secure-profile/internal/validators"
	"github.com/MKhiriev/go-secure-profile/models"
)

// authValidationService rejects registrations that break the account rules
// before they reach the wrapped AuthService.
type authValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(passwords *validators.PasswordStrengthValidator) AuthServiceWrapper {
	return &authValidationService{
		validator: validators.NewRegistrationValidator(passwords),
	}
}

// RegisterUser returns the validator error unchanged, so a weak password
// surfaces as *validators.ValidationError.
func (v *authValidationService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, err
	}

	return v.inner.RegisterUser(ctx, request)
}

func (v *authValidationService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return v.inner.Login(ctx, credentials)
}

func (v *authValidationService) Profile(ctx context.Context, userID int64) (models.Profile, error) {
	if userID <= 0 {
		return models.Profile{}, validators.ErrInvalidUserID
	}

	return v.inner.Profile(ctx, userID)
}

func (v *authValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *authValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *authValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}
