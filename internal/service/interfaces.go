package service

import (
	"context"

	"github.com/MKhiriev/go-grid-portal/internal/session"
	"github.com/MKhiriev/go-grid-portal/models"
)

// AuthService verifies credentials and registers new users.
type AuthService interface {
	// Login authenticates a (client, username, password) triple. A missing
	// credential record and a wrong password both yield
	// ErrInvalidCredentials so that callers cannot enumerate users.
	// On success it returns the identity to establish a session with:
	// ClientID from the database, ClientName as submitted, Username.
	Login(ctx context.Context, client, username, password string) (session.Identity, error)

	// Register hashes the password with bcrypt and invokes the registration
	// routine. No session is created; a separate login is required.
	Register(ctx context.Context, client, username, password string) error
}

// GridService reads tenant-scoped grid data.
type GridService interface {
	AppInstances(ctx context.Context, clientID int64) ([]models.GridRow, error)
}

// AuditService appends user action records as a best-effort, fire-and-forget
// side channel. Record returns before the insert completes and never reports
// failure to the caller.
type AuditService interface {
	// Record serializes payload (unless it is already text) and appends an
	// audit entry on a detached goroutine. userID and ip may be nil.
	Record(ctx context.Context, userID *string, payload any, ip *string)
}

// ReleaseNotesService lists published release note files.
type ReleaseNotesService interface {
	// List returns the release note filenames. An unreadable directory
	// degrades to an empty list, never an error.
	List(ctx context.Context) []string
}
