package store

import "github.com/MKhiriev/go-secure-profile/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository UserRepository
	FileRepository FileRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		FileRepository: NewFileRepository(db, log),
	}
}
