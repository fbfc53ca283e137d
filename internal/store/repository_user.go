package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-profile/internal/logger"
	"github.com/MKhiriev/go-secure-profile/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrLoginAlreadyExists].
//   - Retryable driver errors that persist → [ErrTemporarilyUnavailable].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, createUser, user.Login, user.PasswordHash, user.EncryptedData)
		return scanUser(row, &created)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch {
		case postgresError(err) == pgerrcode.UniqueViolation:
			return models.User{}, ErrLoginAlreadyExists
		case errors.Is(err, ErrTemporarilyUnavailable):
			return models.User{}, err
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByLogin retrieves the user record whose Login equals login.
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByLogin", findUserByLogin, login)
}

// FindUserByID retrieves the user record with the given ID.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	err := r.db.withRetry(ctx, func() error {
		return scanUser(r.db.QueryRowContext(ctx, query, arg), &foundUser)
	})

	switch {
	case err == nil:
		return foundUser, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case errors.Is(err, ErrTemporarilyUnavailable):
		log.Err(err).Str("func", funcName).Msg("database unavailable")
		return models.User{}, err
	default:
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
}

func scanUser(row *sql.Row, user *models.User) error {
	return row.Scan(&user.UserID, &user.Login, &user.PasswordHash, &user.EncryptedData, &user.CreatedAt)
}
