package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-secure-profile/models"
)

const (
	createUser = `INSERT INTO users (login, password_hash, encrypted_data)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, password_hash, encrypted_data, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, encrypted_data, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT user_id, login, password_hash, encrypted_data, created_at
    FROM users
    WHERE user_id = $1;`
)

const userFilesTable = "user_files"

// fileMetadataColumns are the clear-text columns of user_files, in scan order.
var fileMetadataColumns = []string{
	"file_id",
	"user_id",
	"original_name",
	"file_size",
	"content_type",
	"description",
	"uploaded_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildInsertFileQuery(file models.UserFile) (string, []any, error) {
	query, args, err := psql.
		Insert(userFilesTable).
		Columns("file_id", "user_id", "original_name", "file_size", "content_type", "description", "encrypted_data").
		Values(file.FileID, file.UserID, file.OriginalName, file.FileSize, file.ContentType, file.Description, file.EncryptedData).
		Suffix("RETURNING uploaded_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListFilesQuery(userID int64) (string, []any, error) {
	query, args, err := psql.
		Select(fileMetadataColumns...).
		From(userFilesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("uploaded_at DESC", "file_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetFileQuery(userID int64, fileID string) (string, []any, error) {
	query, args, err := psql.
		Select(append(fileMetadataColumns, "encrypted_data")...).
		From(userFilesTable).
		Where(sq.Eq{"file_id": fileID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
