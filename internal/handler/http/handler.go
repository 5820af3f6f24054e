package http

import (
	"github.com/MKhiriev/go-grid-portal/internal/config"
	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/MKhiriev/go-grid-portal/internal/ratelimit"
	"github.com/MKhiriev/go-grid-portal/internal/service"
	"github.com/MKhiriev/go-grid-portal/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager
	limiter  *ratelimit.Limiter
	assets   config.Assets

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, limiter *ratelimit.Limiter, assets config.Assets, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		limiter:  limiter,
		assets:   assets,
		logger:   logger,
	}
}
