// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "context"

// Store defines how sessions are persisted and retrieved.
// Implementations must be safe for concurrent use; the portal relies on the
// backend's own synchronization rather than in-process locking.
type Store interface {
	// Find returns the session with the given token.
	// Expired or unknown tokens yield ErrSessionNotFound.
	Find(ctx context.Context, token string) (*Session, error)

	// Save persists the session, overwriting any record with the same token.
	Save(ctx context.Context, s *Session) error

	// Delete removes the session with the given token.
	// Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes all expired sessions and returns the count of
	// deleted records.
	DeleteExpired(ctx context.Context) (int64, error)
}
