// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-grid-portal/internal/session"
	"github.com/MKhiriev/go-grid-portal/models"
)

// Stored routines owned by the database. They are opaque to this service and
// invoked by name with positional parameters only.
const (
	findCredentials = `SELECT client_id, password_hash FROM sp_auth_login($1, $2);`

	registerUser = `CALL sp_admin_register_user($1, $2, $3);`

	gridAppInstances = `SELECT * FROM sp_pub_grid_appinstances($1);`
)

// sessionColumns is the column set of the sessions table in scan order.
var sessionColumns = []string{"token", "client_id", "client_name", "username", "created_at", "expires_at"}

// psql is the shared squirrel builder configured for PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildInsertAuditEntryQuery builds the INSERT for a single audit record.
// created_at is server-assigned via the column default and not bound here.
func buildInsertAuditEntryQuery(entry models.AuditEntry) (string, []any, error) {
	return psql.Insert(entry.TableName()).
		Columns("user_id", "interaction", "ip").
		Values(entry.UserID, entry.Interaction, entry.IP).
		ToSql()
}

// buildUpsertSessionQuery builds the INSERT for a session record. Saving an
// existing token refreshes its identity and expiry in place.
func buildUpsertSessionQuery(s *session.Session) (string, []any, error) {
	var clientID any
	var clientName, username any
	if s.Identity != nil {
		clientID = s.Identity.ClientID
		clientName = s.Identity.ClientName
		username = s.Identity.Username
	}

	return psql.Insert("sessions").
		Columns(sessionColumns...).
		Values(s.Token, clientID, clientName, username, s.CreatedAt, s.ExpiresAt).
		Suffix(`ON CONFLICT (token) DO UPDATE SET
			client_id = EXCLUDED.client_id,
			client_name = EXCLUDED.client_name,
			username = EXCLUDED.username,
			expires_at = EXCLUDED.expires_at`).
		ToSql()
}

// buildSelectSessionQuery builds the lookup of a live (non-expired) session
// by token. Expired rows are filtered here rather than in application code so
// that a stale token behaves exactly like an unknown one.
func buildSelectSessionQuery(token string) (string, []any, error) {
	return psql.Select(sessionColumns...).
		From("sessions").
		Where(sq.Eq{"token": token}).
		Where(sq.Expr("expires_at > NOW()")).
		ToSql()
}

// buildDeleteSessionQuery builds the deletion of a single session by token.
func buildDeleteSessionQuery(token string) (string, []any, error) {
	return psql.Delete("sessions").
		Where(sq.Eq{"token": token}).
		ToSql()
}

// buildDeleteExpiredSessionsQuery builds the sweep of all expired sessions.
func buildDeleteExpiredSessionsQuery() (string, []any, error) {
	return psql.Delete("sessions").
		Where(sq.Expr("expires_at <= NOW()")).
		ToSql()
}
