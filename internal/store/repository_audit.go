// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/MKhiriev/go-grid-portal/models"
)

// auditRepository is the PostgreSQL-backed implementation of
// [AuditRepository]. Writes are append-only; failures are reported to the
// caller, which decides whether they matter (the audit service swallows them).
type auditRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuditRepository constructs an [AuditRepository] backed by the provided
// database connection and logger.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		db:     db,
		logger: logger,
	}
}

// Append inserts a single action record. The created_at timestamp is
// server-assigned by the table default.
func (r *auditRepository) Append(ctx context.Context, entry models.AuditEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAuditEntryQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.Append").Msg("error: building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*auditRepository.Append").Msg("error: inserting audit entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
