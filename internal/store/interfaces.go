package store

import (
	"context"

	"github.com/MKhiriev/go-grid-portal/models"
)

// CredentialsRepository looks up and registers user credentials through the
// externally owned stored routines.
type CredentialsRepository interface {
	// FindCredentials invokes sp_auth_login for the (client, username) pair.
	// An empty result set yields ErrNoCredentialsFound; the caller must not
	// surface the distinction between a missing user and a wrong password.
	FindCredentials(ctx context.Context, client, username string) (models.Credentials, error)

	// RegisterUser invokes sp_admin_register_user with an already-hashed
	// password. Plaintext passwords must never reach this layer.
	RegisterUser(ctx context.Context, client, username, passwordHash string) error
}

// GridRepository reads tenant-scoped grid data.
type GridRepository interface {
	// AppInstances invokes sp_pub_grid_appinstances for the given tenant and
	// returns the first result set as column-name keyed rows.
	AppInstances(ctx context.Context, clientID int64) ([]models.GridRow, error)
}

// AuditRepository appends user action records. There is no read path.
type AuditRepository interface {
	Append(ctx context.Context, entry models.AuditEntry) error
}
