// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the slice of the externally owned user credential record
// consumed by this service. It is produced by the sp_auth_login database
// routine for a (client, username) pair.
//
// PasswordHash MUST never be exposed outside trusted boundaries; the struct
// therefore has no JSON tags and is never serialized.
type Credentials struct {
	// ClientID is the tenant identifier that scopes which rows the user
	// may see. It is assigned by the database, not by the request.
	ClientID int64

	// PasswordHash is the stored bcrypt hash of the user's password.
	PasswordHash string
}
