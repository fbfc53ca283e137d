// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-secure-profile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validFileUpload() models.FileUpload {
	return models.FileUpload{
		UserID:      1,
		Name:        "photo.png",
		ContentType: "image/png",
		Description: "holiday",
		Data:        []byte{0x89, 'P', 'N', 'G'},
	}
}

// ---------------------------------------------------------------------------
// TestFileUploadValidator_Validate
// ---------------------------------------------------------------------------

func TestNewFileUploadValidator(t *testing.T) {
	require.NotNil(t, NewFileUploadValidator())
}

func TestFileUploadValidator_Validate(t *testing.T) {
	v := NewFileUploadValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		modify  func(u *models.FileUpload)
		wantErr error
	}{
		{name: "valid", modify: func(u *models.FileUpload) {}},
		{name: "mime parameters ignored", modify: func(u *models.FileUpload) { u.ContentType = "Audio/WAV; codecs=1" }},
		{name: "exactly max size", modify: func(u *models.FileUpload) { u.Data = make([]byte, MaxFileSize) }},
		{name: "invalid user", modify: func(u *models.FileUpload) { u.UserID = 0 }, wantErr: ErrInvalidUserID},
		{name: "empty name", modify: func(u *models.FileUpload) { u.Name = "" }, wantErr: ErrEmptyFileName},
		{name: "empty data", modify: func(u *models.FileUpload) { u.Data = nil }, wantErr: ErrEmptyFile},
		{name: "too large", modify: func(u *models.FileUpload) { u.Data = make([]byte, MaxFileSize+1) }, wantErr: ErrFileTooLarge},
		{name: "unsupported type", modify: func(u *models.FileUpload) { u.ContentType = "application/pdf" }, wantErr: ErrUnsupportedContentType},
		{name: "missing type", modify: func(u *models.FileUpload) { u.ContentType = "" }, wantErr: ErrUnsupportedContentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upload := validFileUpload()
			tt.modify(&upload)

			err := v.Validate(ctx, &upload)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFileUploadValidator_FieldScoping(t *testing.T) {
	v := NewFileUploadValidator()
	upload := validFileUpload()
	upload.ContentType = "text/plain"

	assert.NoError(t, v.Validate(context.Background(), upload, FieldUserID, FieldFileName))
	assert.ErrorIs(t, v.Validate(context.Background(), upload, FieldLogin), ErrUnknownField)
}

func TestFileUploadValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewFileUploadValidator().Validate(context.Background(), 1), ErrUnsupportedType)
}
