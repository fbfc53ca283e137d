// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the HTTP API.
//
// [ServerAdapter] hides the transport from callers. Non-2xx responses are
// turned into a [*ResponseError] that wraps one of the sentinel errors in
// errors.go, so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401) and still print the server's message and
// validation violations.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-secure-profile/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines the operations the API client can perform.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Profile returns the decrypted profile of the token's owner.
	Profile(ctx context.Context) (models.Profile, error)

	// UploadFile sends data as a multipart upload.
	UploadFile(ctx context.Context, upload FileUpload) (models.FileInfo, error)

	// ListFiles returns metadata of every file the token's owner uploaded.
	ListFiles(ctx context.Context) ([]models.FileInfo, error)

	// DownloadFile returns the decrypted contents of one file.
	DownloadFile(ctx context.Context, fileID string) (models.File, error)

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}

// FileUpload describes one file sent by [ServerAdapter.UploadFile].
type FileUpload struct {
	Name        string
	ContentType string
	Description string
	Content     io.Reader
}
