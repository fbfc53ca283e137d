// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/go-secure-profile/models"
)

// MaxFileSize is the largest plaintext upload accepted, in bytes.
const MaxFileSize = 10 * 1024 * 1024

const (
	// FieldUserID targets the owner of an upload.
	FieldUserID = "user_id"

	// FieldFileName targets the client-supplied file name.
	FieldFileName = "name"

	// FieldFileData targets the upload size limits.
	FieldFileData = "data"

	// FieldContentType targets the declared MIME type.
	FieldContentType = "content_type"
)

// AllowedContentTypes lists the MIME types accepted for upload.
var AllowedContentTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"audio/mpeg",
	"audio/wav",
}

// FileUploadValidator validates [models.FileUpload] before encryption.
type FileUploadValidator struct{}

func NewFileUploadValidator() Validator {
	return &FileUploadValidator{}
}

func (v *FileUploadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FileUpload:
		return v.validateFileUpload(ctx, value, fields...)
	case *models.FileUpload:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateFileUpload(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FileUploadValidator) validateFileUpload(ctx context.Context, upload models.FileUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldFileName, FieldFileData, FieldContentType}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if upload.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldFileName:
			if strings.TrimSpace(upload.Name) == "" {
				return ErrEmptyFileName
			}
		case FieldFileData:
			if len(upload.Data) == 0 {
				return ErrEmptyFile
			}
			if len(upload.Data) > MaxFileSize {
				return ErrFileTooLarge
			}
		case FieldContentType:
			if !isAllowedContentType(upload.ContentType) {
				return ErrUnsupportedContentType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isAllowedContentType ignores MIME parameters such as "; charset=...".
func isAllowedContentType(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	return slices.Contains(AllowedContentTypes, mediaType)
}
