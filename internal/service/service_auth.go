package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secure-profile/internal/config"
	"github.com/MKhiriev/go-secure-profile/internal/crypto"
	"github.com/MKhiriev/go-secure-profile/internal/logger"
	"github.com/MKhiriev/go-secure-profile/internal/store"
	"github.com/MKhiriev/go-secure-profile/internal/utils"
	"github.com/MKhiriev/go-secure-profile/models"
	"golang.org/x/crypto/bcrypt"
)

// dummyPasswordHash is compared against when a login is unknown so that
// both failure paths cost one bcrypt comparison.
var dummyPasswordHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, profile reads, and
// JWT token lifecycle using a UserRepository for persistence, bcrypt for
// password hashing, and an Encryptor for the profile attributes.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// encryptor seals the profile attribute bundle before it is stored.
	encryptor crypto.Encryptor

	// hashCost is the bcrypt work factor.
	hashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and Encryptor and populated with token parameters from cfg.
//
// Input validation is not performed here; wrap the result with
// [NewAuthValidationService].
func NewAuthService(userRepository store.UserRepository, encryptor crypto.Encryptor, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		encryptor:      encryptor,
		hashCost:       bcrypt.DefaultCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The password is hashed with bcrypt; email, first name, and last name are
// sealed together into one ciphertext and only that ciphertext is persisted.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrCannotProtectData if the attributes cannot be encrypted.
//   - A wrapped storage error if the repository call fails (e.g. login already
//     taken, see store.ErrLoginAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), a.hashCost)
	if err != nil {
		log.Err(err).Str("login", request.Login).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	encryptedData, err := a.encryptor.EncryptAttributes(crypto.Attributes{
		models.AttributeEmail:     request.Email,
		models.AttributeFirstName: request.FirstName,
		models.AttributeLastName:  request.LastName,
	})
	if err != nil {
		log.Err(err).Str("login", request.Login).Msg("profile attributes encryption failed")
		return models.User{}, ErrCannotProtectData
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Login:         request.Login,
		PasswordHash:  string(passwordHash),
		EncryptedData: encryptedData,
	})
	if err != nil {
		log.Err(err).Str("login", request.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.UserAction(registeredUser.UserID, "register").Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - ErrWrongPassword if the login is unknown or the password does not match.
//   - A wrapped storage error if the repository lookup fails otherwise.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Login == "" || credentials.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, credentials.Login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(credentials.Password))
		log.SecurityEvent("login_failed").Str("login", credentials.Login).Str("reason", "unknown login").Send()
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(credentials.Password)); err != nil {
		log.SecurityEvent("login_failed").Int64("user_id", foundUser.UserID).Str("reason", "wrong password").Send()
		return models.User{}, ErrWrongPassword
	}

	log.UserAction(foundUser.UserID, "login").Msg("user logged in")
	return foundUser, nil
}

// Profile returns the decrypted profile of userID.
//
// A ciphertext that fails authentication or decoding is reported as a
// security event and surfaces as ErrCannotReadData.
func (a *authService) Profile(ctx context.Context, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.Profile{}, fmt.Errorf("user search by id failed: %w", err)
	}

	attributes, err := a.encryptor.DecryptAttributes(user.EncryptedData)
	if err != nil {
		log.SecurityEvent("decryption_failed").Err(err).Int64("user_id", userID).Str("target", "profile").Send()
		return models.Profile{}, ErrCannotReadData
	}

	return models.Profile{
		UserID:    user.UserID,
		Login:     user.Login,
		Email:     attributes[models.AttributeEmail],
		FirstName: attributes[models.AttributeFirstName],
		LastName:  attributes[models.AttributeLastName],
		CreatedAt: user.CreatedAt,
	}, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
