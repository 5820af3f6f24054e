// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/MKhiriev/go-grid-portal/internal/store"
	"github.com/MKhiriev/go-grid-portal/models"
)

// gridService is a thin pass-through over the GridRepository. Scoping is the
// caller's responsibility: the clientID always comes from an authenticated
// session, never from request parameters.
type gridService struct {
	grid   store.GridRepository
	logger *logger.Logger
}

// NewGridService constructs a GridService wired to the given repository.
func NewGridService(grid store.GridRepository, logger *logger.Logger) GridService {
	return &gridService{
		grid:   grid,
		logger: logger,
	}
}

// AppInstances returns the grid rows visible to the given tenant.
func (s *gridService) AppInstances(ctx context.Context, clientID int64) ([]models.GridRow, error) {
	log := logger.FromContext(ctx)

	rows, err := s.grid.AppInstances(ctx, clientID)
	if err != nil {
		log.Err(err).Int64("client_id", clientID).Msg("grid query failed")
		return nil, fmt.Errorf("grid query failed: %w", err)
	}

	return rows, nil
}
