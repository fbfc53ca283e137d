// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-profile/internal/logger"
	"github.com/MKhiriev/go-secure-profile/models"
)

// fileRepository is the PostgreSQL-backed implementation of
// [FileRepository] over the "user_files" table. Queries are built with
// squirrel using $-placeholders.
type fileRepository struct {
	*DB
	logger *logger.Logger
}

// NewFileRepository constructs a [FileRepository] backed by the provided
// database connection and logger.
func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	logger.Debug().Msg("creating file repository")
	return &fileRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveFile inserts file and returns it with the database-assigned UploadedAt.
func (f *fileRepository) SaveFile(ctx context.Context, file models.UserFile) (models.UserFile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertFileQuery(file)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.SaveFile").Msg("failed to build query")
		return models.UserFile{}, err
	}

	err = f.withRetry(ctx, func() error {
		return f.QueryRowContext(ctx, query, args...).Scan(&file.UploadedAt)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*fileRepository.SaveFile").
			Int64("user_id", file.UserID).
			Str("file_id", file.FileID).
			Msg("failed to save file")
		if errors.Is(err, ErrTemporarilyUnavailable) {
			return models.UserFile{}, err
		}
		return models.UserFile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return file, nil
}

// ListFiles returns the metadata of every file owned by userID, newest first.
func (f *fileRepository) ListFiles(ctx context.Context, userID int64) ([]models.UserFile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFilesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.ListFiles").Msg("failed to build query")
		return nil, err
	}

	var files []models.UserFile
	err = f.withRetry(ctx, func() error {
		var queryErr error
		files, queryErr = f.queryFiles(ctx, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*fileRepository.ListFiles").
			Int64("user_id", userID).
			Msg("failed to list files")
		if errors.Is(err, ErrTemporarilyUnavailable) || errors.Is(err, ErrScanningRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return files, nil
}

func (f *fileRepository) queryFiles(ctx context.Context, query string, args []any) ([]models.UserFile, error) {
	rows, err := f.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := make([]models.UserFile, 0)
	for rows.Next() {
		var file models.UserFile
		if err := rows.Scan(
			&file.FileID,
			&file.UserID,
			&file.OriginalName,
			&file.FileSize,
			&file.ContentType,
			&file.Description,
			&file.UploadedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return files, nil
}

// GetFile returns the file with fileID owned by userID, including its
// ciphertext.
func (f *fileRepository) GetFile(ctx context.Context, userID int64, fileID string) (models.UserFile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetFileQuery(userID, fileID)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.GetFile").Msg("failed to build query")
		return models.UserFile{}, err
	}

	var file models.UserFile
	err = f.withRetry(ctx, func() error {
		return f.QueryRowContext(ctx, query, args...).Scan(
			&file.FileID,
			&file.UserID,
			&file.OriginalName,
			&file.FileSize,
			&file.ContentType,
			&file.Description,
			&file.UploadedAt,
			&file.EncryptedData,
		)
	})

	switch {
	case err == nil:
		return file, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.UserFile{}, ErrFileNotFound
	case errors.Is(err, ErrTemporarilyUnavailable):
		log.Err(err).Str("func", "*fileRepository.GetFile").Msg("database unavailable")
		return models.UserFile{}, err
	default:
		log.Err(err).
			Str("func", "*fileRepository.GetFile").
			Int64("user_id", userID).
			Str("file_id", fileID).
			Msg("failed to get file")
		return models.UserFile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
}
