// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/MKhiriev/go-grid-portal/internal/session"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [session.Store]. The database provides all synchronization; the repository
// itself holds no mutable state.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [session.Store] backed by the provided
// database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) session.Store {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// Find returns the live session with the given token. Expired rows are
// filtered by the query itself, so a stale token behaves exactly like an
// unknown one and yields [session.ErrSessionNotFound].
func (r *sessionRepository) Find(ctx context.Context, token string) (*session.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSessionQuery(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sess session.Session
	var clientID sql.NullInt64
	var clientName, username sql.NullString

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&sess.Token, &clientID, &clientName, &username, &sess.CreatedAt, &sess.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, session.ErrSessionNotFound
		}
		log.Err(err).Str("func", "*sessionRepository.Find").Msg("error: scanning error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if username.Valid {
		sess.Identity = &session.Identity{
			ClientID:   clientID.Int64,
			ClientName: clientName.String,
			Username:   username.String,
		}
	}

	return &sess, nil
}

// Save persists the session, refreshing identity and expiry when the token
// already exists.
func (r *sessionRepository) Save(ctx context.Context, s *session.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSessionQuery(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Save").Msg("error: saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete removes the session with the given token. Unknown tokens are not an
// error.
func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Delete").Msg("error: deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteExpired sweeps all expired session rows and returns how many were
// removed.
func (r *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query, args, err := buildDeleteExpiredSessionsQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}
