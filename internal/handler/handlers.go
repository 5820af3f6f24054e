// Package handler aggregates the application's transport handlers.
package handler

import (
	"github.com/MKhiriev/go-grid-portal/internal/config"
	"github.com/MKhiriev/go-grid-portal/internal/handler/http"
	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/MKhiriev/go-grid-portal/internal/ratelimit"
	"github.com/MKhiriev/go-grid-portal/internal/service"
	"github.com/MKhiriev/go-grid-portal/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions *session.Manager, limiter *ratelimit.Limiter, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, sessions, limiter, cfg.Assets, logger),
	}, nil
}
