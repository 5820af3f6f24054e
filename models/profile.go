// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Profile is the tenant context of an authenticated session, returned
// verbatim by the /api/profile endpoint without a database round-trip.
type Profile struct {
	// ClientName is the client string as it was submitted at login.
	// It is not canonicalized against the database.
	ClientName string `json:"clientName"`

	// ClientID is the tenant identifier resolved at login.
	ClientID int64 `json:"clientId"`
}
