package service

import (
	"github.com/MKhiriev/go-grid-portal/internal/config"
	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/MKhiriev/go-grid-portal/internal/store"
)

type Services struct {
	AuthService         AuthService
	GridService         GridService
	AuditService        AuditService
	ReleaseNotesService ReleaseNotesService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:         NewAuthService(storages.Credentials, cfg.Auth, logger),
		GridService:         NewGridService(storages.Grid, logger),
		AuditService:        NewAuditService(storages.Audit, logger),
		ReleaseNotesService: NewReleaseNotesService(cfg.Assets.ReleaseNotesDir, logger),
	}
}
