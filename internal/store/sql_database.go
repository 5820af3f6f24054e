package store

import (
	"github.com/MKhiriev/go-grid-portal/migrations"
)

// Migrate applies the embedded goose migrations for the tables this service
// owns (sessions and the user action log). The credential tables and stored
// routines are externally owned and never migrated from here.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
