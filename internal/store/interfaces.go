package store

import (
	"context"

	"github.com/MKhiriev/go-secure-profile/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Profile attributes are stored only
// as the ciphertext in [models.User.EncryptedData].
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// Returns [ErrLoginAlreadyExists] when the login is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns [ErrNoUserWasFound] when no account matches.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)

	// FindUserByID returns [ErrNoUserWasFound] when no account matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// FileRepository persists encrypted uploads.
type FileRepository interface {
	// SaveFile inserts file and returns it with UploadedAt set.
	SaveFile(ctx context.Context, file models.UserFile) (models.UserFile, error)

	// ListFiles returns the metadata of every file owned by userID, newest
	// first. EncryptedData is left empty.
	ListFiles(ctx context.Context, userID int64) ([]models.UserFile, error)

	// GetFile returns the file with fileID owned by userID, including its
	// ciphertext. Returns [ErrFileNotFound] for unknown or foreign files.
	GetFile(ctx context.Context, userID int64, fileID string) (models.UserFile, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
