// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/MKhiriev/go-grid-portal/internal/store"
	"github.com/MKhiriev/go-grid-portal/models"
)

// auditWriteTimeout bounds how long a detached audit insert may run after
// the triggering request has already been answered.
const auditWriteTimeout = 5 * time.Second

// auditService is the concrete implementation of AuditService.
//
// Record is fire-and-forget: the insert runs on its own goroutine with a
// context detached from the request, so response latency never depends on the
// log table and a failed write never alters an HTTP response. Losing entries
// on failure is accepted.
type auditService struct {
	audit  store.AuditRepository
	logger *logger.Logger

	// done, when non-nil, receives one value per finished write attempt.
	// Tests use it to observe the asynchronous insert.
	done chan<- error
}

// NewAuditService constructs an AuditService wired to the given repository.
func NewAuditService(audit store.AuditRepository, logger *logger.Logger) AuditService {
	return &auditService{
		audit:  audit,
		logger: logger,
	}
}

// Record serializes payload and appends an audit entry asynchronously.
//
// Strings pass through untouched; anything else is JSON-marshaled. A payload
// that cannot be serialized is dropped with an operational log entry, as is
// a failed insert. Neither case is ever reported to the caller.
func (s *auditService) Record(ctx context.Context, userID *string, payload any, ip *string) {
	interaction, ok := payload.(string)
	if !ok {
		raw, err := json.Marshal(payload)
		if err != nil {
			s.logger.Err(err).Msg("audit payload not serializable, entry dropped")
			s.notify(err)
			return
		}
		interaction = string(raw)
	}

	entry := models.AuditEntry{
		UserID:      userID,
		Interaction: interaction,
		IP:          ip,
	}

	// Detach from the request context: the response must not wait for this
	// write, and request cancellation must not abort it.
	writeCtx := context.WithoutCancel(ctx)

	go func() {
		writeCtx, cancel := context.WithTimeout(writeCtx, auditWriteTimeout)
		defer cancel()

		err := s.audit.Append(writeCtx, entry)
		if err != nil {
			s.logger.Err(err).Str("interaction", interaction).Msg("audit entry not written")
		}
		s.notify(err)
	}()
}

// notify reports a finished write attempt to the test hook, if installed.
func (s *auditService) notify(err error) {
	if s.done != nil {
		s.done <- err
	}
}
