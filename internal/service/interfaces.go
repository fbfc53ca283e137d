package service

import (
	"context"

	"github.com/MKhiriev/go-secure-profile/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages accounts: registration with encrypted profile
// attributes, login, profile reads, and access tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	Profile(ctx context.Context, userID int64) (models.Profile, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// FileService stores uploads encrypted at rest and serves them back to
// their owner.
type FileService interface {
	Upload(ctx context.Context, upload models.FileUpload) (models.FileInfo, error)
	List(ctx context.Context, userID int64) ([]models.FileInfo, error)
	Download(ctx context.Context, userID int64, fileID string) (models.File, error)
}

// AppInfoService reports build information about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
