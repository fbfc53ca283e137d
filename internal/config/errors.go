package config

import (
	"errors"

	"github.com/MKhiriev/go-secure-profile/internal/crypto"
)

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingMasterSecret indicates that no master secret was configured.
	// The server cannot derive its data key and must not start.
	ErrMissingMasterSecret = crypto.ErrMissingMasterSecret
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates that neither the HTTP nor the gRPC
	// address is set, or the request timeout is negative.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidClientConfigs indicates an unusable server URL or timeout
	// in the API client settings.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
