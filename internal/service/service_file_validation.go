package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-profile/internal/store"
	"github.com/MKhiriev/go-secure-profile/internal/utils"
	"github.com/MKhiriev/go-secure-profile/internal/validators"
	"github.com/MKhiriev/go-secure-profile/models"
)

// fileValidationService checks uploads and identifiers before they reach
// the wrapped FileService.
type fileValidationService struct {
	inner     FileService
	validator validators.Validator
}

func NewFileValidationService() FileServiceWrapper {
	return &fileValidationService{
		validator: validators.NewFileUploadValidator(),
	}
}

func (v *fileValidationService) Upload(ctx context.Context, upload models.FileUpload) (models.FileInfo, error) {
	if err := v.validator.Validate(ctx, upload); err != nil {
		return models.FileInfo{}, fmt.Errorf("error during file validation before saving: %w", err)
	}

	return v.inner.Upload(ctx, upload)
}

func (v *fileValidationService) List(ctx context.Context, userID int64) ([]models.FileInfo, error) {
	if userID <= 0 {
		return nil, validators.ErrInvalidUserID
	}

	return v.inner.List(ctx, userID)
}

// Download treats a malformed file ID as an unknown file.
func (v *fileValidationService) Download(ctx context.Context, userID int64, fileID string) (models.File, error) {
	if userID <= 0 {
		return models.File{}, validators.ErrInvalidUserID
	}
	if !utils.IsValidUUID(fileID) {
		return models.File{}, store.ErrFileNotFound
	}

	return v.inner.Download(ctx, userID, fileID)
}

func (v *fileValidationService) Wrap(inner FileService) FileService {
	v.inner = inner
	return v
}
