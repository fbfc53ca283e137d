package handler

import (
	"github.com/MKhiriev/go-secure-profile/internal/config"
	"github.com/MKhiriev/go-secure-profile/internal/handler/grpc"
	"github.com/MKhiriev/go-secure-profile/internal/handler/http"
	"github.com/MKhiriev/go-secure-profile/internal/logger"
	"github.com/MKhiriev/go-secure-profile/internal/service"
)

// Handlers groups the transport handlers enabled by the server
// configuration. A nil field means that transport is switched off.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
