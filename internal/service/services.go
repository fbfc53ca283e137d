package service

import (
	"fmt"

	"github.com/MKhiriev/go-secure-profile/internal/config"
	"github.com/MKhiriev/go-secure-profile/internal/crypto"
	"github.com/MKhiriev/go-secure-profile/internal/logger"
	"github.com/MKhiriev/go-secure-profile/internal/store"
	"github.com/MKhiriev/go-secure-profile/internal/utils"
	"github.com/MKhiriev/go-secure-profile/internal/validators"
)

type Services struct {
	AuthService    AuthService
	FileService    FileService
	AppInfoService AppInfoService
}

// NewServices wires every service with its validation wrapper. The same
// encryptor instance serves both accounts and files.
func NewServices(storages *store.Storages, encryptor crypto.Encryptor, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthValidationService(validators.NewPasswordStrengthValidator()).
		Wrap(NewAuthService(storages.UserRepository, encryptor, cfg.App, logger))

	fileService := NewFileValidationService().
		Wrap(NewFileService(storages.FileRepository, encryptor, utils.NewUUIDGenerator(), logger))

	return &Services{
		AuthService:    authService,
		FileService:    fileService,
		AppInfoService: appInfoService,
	}, nil
}
