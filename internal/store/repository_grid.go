// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/MKhiriev/go-grid-portal/models"
)

// gridRepository is the PostgreSQL-backed implementation of [GridRepository].
type gridRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewGridRepository constructs a [GridRepository] backed by the provided
// database connection and logger.
func NewGridRepository(db *DB, logger *logger.Logger) GridRepository {
	logger.Debug().Msg("creating grid repository")
	return &gridRepository{
		db:     db,
		logger: logger,
	}
}

// AppInstances invokes sp_pub_grid_appinstances(clientID) and converts the
// first result set into column-name keyed rows.
//
// The routine's column set is owned by the database, so rows are scanned
// dynamically rather than into a fixed struct. Byte-slice values (text
// columns as returned by the driver) are converted to strings so that the
// rows serialize to readable JSON.
func (r *gridRepository) AppInstances(ctx context.Context, clientID int64) ([]models.GridRow, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, gridAppInstances, clientID)
	if err != nil {
		log.Err(err).Str("func", "*gridRepository.AppInstances").Msg("error: grid routine failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result := make([]models.GridRow, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			log.Err(err).Str("func", "*gridRepository.AppInstances").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		row := make(models.GridRow, len(columns))
		for i, column := range columns {
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
				continue
			}
			row[column] = values[i]
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
