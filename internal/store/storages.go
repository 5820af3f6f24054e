package store

import (
	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/MKhiriev/go-grid-portal/internal/session"
)

// Storages bundles all persistence-layer dependencies handed to the service
// layer. Every field is backed by the same database connection.
type Storages struct {
	Credentials CredentialsRepository
	Grid        GridRepository
	Audit       AuditRepository
	Sessions    session.Store
}

// NewStorages constructs all repositories over the given connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Credentials: NewCredentialsRepository(db, logger),
		Grid:        NewGridRepository(db, logger),
		Audit:       NewAuditRepository(db, logger),
		Sessions:    NewSessionRepository(db, logger),
	}
}
