// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/MKhiriev/go-grid-portal/models"
	"github.com/jackc/pgerrcode"
)

// credentialsRepository is the PostgreSQL-backed implementation of
// [CredentialsRepository]. It never touches credential tables directly; all
// access goes through the externally owned stored routines.
type credentialsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialsRepository constructs a [CredentialsRepository] backed by the
// provided database connection and logger.
func NewCredentialsRepository(db *DB, logger *logger.Logger) CredentialsRepository {
	logger.Debug().Msg("creating credentials repository")
	return &credentialsRepository{
		db:     db,
		logger: logger,
	}
}

// FindCredentials invokes sp_auth_login(client, username) and scans the
// single credential row.
//
// Error handling:
//   - Empty result set or PostgreSQL no_data_found (P0002) →
//     [ErrNoCredentialsFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *credentialsRepository) FindCredentials(ctx context.Context, client, username string) (models.Credentials, error) {
	log := logger.FromContext(ctx)

	var creds models.Credentials
	row := r.db.QueryRowContext(ctx, findCredentials, client, username)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*credentialsRepository.FindCredentials").Msg("error: row is nil")
		switch postgresError(err) {
		case pgerrcode.NoDataFound:
			return models.Credentials{}, ErrNoCredentialsFound
		default:
			return models.Credentials{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&creds.ClientID, &creds.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credentials{}, ErrNoCredentialsFound
		}
		log.Err(err).Str("func", "*credentialsRepository.FindCredentials").Msg("error: scanning error")
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return creds, nil
}

// RegisterUser invokes sp_admin_register_user(client, username, hash).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as [ErrExecutingStatement].
func (r *credentialsRepository) RegisterUser(ctx context.Context, client, username, passwordHash string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, registerUser, client, username, passwordHash); err != nil {
		log.Err(err).Str("func", "*credentialsRepository.RegisterUser").Msg("error: registration routine failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrUserAlreadyExists
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}
