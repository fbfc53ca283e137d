// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-profile/internal/crypto"
	"github.com/MKhiriev/go-secure-profile/internal/logger"
	"github.com/MKhiriev/go-secure-profile/internal/store"
	"github.com/MKhiriev/go-secure-profile/models"
)

// IDGenerator issues identifiers for newly stored files.
type IDGenerator interface {
	Generate() string
}

// fileService encrypts uploads before they reach the FileRepository and
// decrypts them on download. File name, size, and content type are kept in
// the clear as metadata.
type fileService struct {
	fileRepository store.FileRepository
	encryptor      crypto.Encryptor
	idGenerator    IDGenerator
	logger         *logger.Logger
}

func NewFileService(fileRepository store.FileRepository, encryptor crypto.Encryptor, idGenerator IDGenerator, logger *logger.Logger) FileService {
	return &fileService{
		fileRepository: fileRepository,
		encryptor:      encryptor,
		idGenerator:    idGenerator,
		logger:         logger,
	}
}

// Upload seals upload.Data and stores it under a fresh file ID.
func (s *fileService) Upload(ctx context.Context, upload models.FileUpload) (models.FileInfo, error) {
	log := logger.FromContext(ctx)

	encryptedData, err := s.encryptor.EncryptFile(upload.Data)
	if err != nil {
		log.Err(err).Int64("user_id", upload.UserID).Msg("file encryption failed")
		return models.FileInfo{}, ErrCannotProtectData
	}

	saved, err := s.fileRepository.SaveFile(ctx, models.UserFile{
		FileID:        s.idGenerator.Generate(),
		UserID:        upload.UserID,
		OriginalName:  upload.Name,
		FileSize:      int64(len(upload.Data)),
		ContentType:   upload.ContentType,
		Description:   upload.Description,
		EncryptedData: encryptedData,
	})
	if err != nil {
		return models.FileInfo{}, fmt.Errorf("error saving file: %w", err)
	}

	log.UserAction(upload.UserID, "file_upload").
		Str("file_id", saved.FileID).
		Int64("file_size", saved.FileSize).
		Msg("file uploaded")

	return saved.Info(), nil
}

// List returns the metadata of userID's files, newest first.
func (s *fileService) List(ctx context.Context, userID int64) ([]models.FileInfo, error) {
	files, err := s.fileRepository.ListFiles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing files: %w", err)
	}

	infos := make([]models.FileInfo, 0, len(files))
	for _, file := range files {
		infos = append(infos, file.Info())
	}

	return infos, nil
}

// Download returns the decrypted content of fileID if it belongs to userID.
func (s *fileService) Download(ctx context.Context, userID int64, fileID string) (models.File, error) {
	log := logger.FromContext(ctx)

	file, err := s.fileRepository.GetFile(ctx, userID, fileID)
	if err != nil {
		return models.File{}, fmt.Errorf("error getting file: %w", err)
	}

	data, err := s.encryptor.DecryptFile(file.EncryptedData)
	if err != nil {
		log.SecurityEvent("decryption_failed").
			Err(err).
			Int64("user_id", userID).
			Str("file_id", fileID).
			Str("target", "file").
			Send()
		return models.File{}, ErrCannotReadData
	}

	log.UserAction(userID, "file_download").Str("file_id", fileID).Msg("file downloaded")
	return models.File{Info: file.Info(), Data: data}, nil
}
