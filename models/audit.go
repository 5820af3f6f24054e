// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuditEntry is an append-only record of a user action written to the
// user_action_log table. There is no read path in this service.
//
// UserID and IP are nullable: anonymous interactions (e.g. /api/log before
// login) carry neither.
type AuditEntry struct {
	// UserID identifies the acting user, if known.
	UserID *string

	// Interaction is the JSON-serialized payload describing the action.
	Interaction string

	// IP is the source address of the request that triggered the action.
	IP *string

	// CreatedAt is assigned by the server at insert time.
	CreatedAt time.Time
}

// TableName returns the name of the database table
// associated with the AuditEntry model.
func (e AuditEntry) TableName() string {
	return "user_action_log"
}
