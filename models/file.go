// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserFile is a stored upload as persisted in the user_files table.
// Size and content type are kept in the clear; the bytes are not.
type UserFile struct {
	// FileID is the server-assigned identifier (UUIDv7).
	FileID string

	// UserID is the owner of the file.
	UserID int64

	// OriginalName is the file name supplied by the client.
	OriginalName string

	// FileSize is the plaintext length in bytes.
	FileSize int64

	// ContentType is the declared MIME type of the upload.
	ContentType string

	// Description is an optional free-text note.
	Description string

	// EncryptedData is the Fernet token holding the file bytes.
	EncryptedData []byte

	// UploadedAt is when the file was stored.
	UploadedAt time.Time
}

// Info returns the metadata view of f.
func (f UserFile) Info() FileInfo {
	return FileInfo{
		FileID:      f.FileID,
		Name:        f.OriginalName,
		Size:        f.FileSize,
		ContentType: f.ContentType,
		Description: f.Description,
		UploadedAt:  f.UploadedAt,
	}
}

// FileInfo is the metadata of a stored file as returned to its owner.
type FileInfo struct {
	FileID      string    `json:"id"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"type"`
	Description string    `json:"description"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// FileUpload is a plaintext upload on its way to the file service.
type FileUpload struct {
	UserID      int64
	Name        string
	ContentType string
	Description string
	Data        []byte
}

// File is a decrypted download.
type File struct {
	Info FileInfo
	Data []byte
}
