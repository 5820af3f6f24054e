// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements server-held sessions correlated with a request
// via an HMAC-signed cookie.
//
// A session is either anonymous or authenticated; the distinction is carried
// by the Identity pointer rather than a loose bag of fields, so the access
// guard's precondition is a type-level fact. Sessions are persisted by a
// Store implementation and expire after a fixed lifetime.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// tokenSize is the length of the random session token in bytes.
// 32 bytes = 256 bits of entropy.
const tokenSize = 32

// Identity is the authenticated half of a session. A nil Identity means the
// session is anonymous.
type Identity struct {
	// ClientID is the tenant identifier resolved by the database at login.
	ClientID int64 `json:"client_id"`

	// ClientName is the client string exactly as submitted on the login
	// form. It is not canonicalized.
	ClientName string `json:"client_name"`

	// Username is the login name of the authenticated user.
	Username string `json:"username"`
}

// Session is a server-held session record keyed by a client-supplied token.
//
// Identity is nil until a successful password verification populates it;
// ClientID is therefore always set together with the logged-in state.
type Session struct {
	// Token is the opaque random value stored in the session cookie.
	Token string

	// Identity holds the tenant context of the authenticated user,
	// or nil for an anonymous session.
	Identity *Identity

	CreatedAt time.Time
	ExpiresAt time.Time
}

// New creates an anonymous session with a freshly generated token and the
// given lifetime.
func New(ttl time.Duration) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("error generating session token: %w", err)
	}

	now := time.Now()
	return &Session{
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// LoggedIn reports whether the session is authenticated and not expired.
func (s *Session) LoggedIn() bool {
	if s == nil || s.Identity == nil {
		return false
	}

	return time.Now().Before(s.ExpiresAt)
}

// Authenticate attaches the given identity to the session.
func (s *Session) Authenticate(identity Identity) {
	s.Identity = &identity
}

// generateToken returns a cryptographically secure random token encoded as
// unpadded base64url.
func generateToken() (string, error) {
	b := make([]byte, tokenSize)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// ctxKey is a private type for this package's context keys.
type ctxKey struct{}

// NewContext returns a copy of ctx carrying the given session.
// The access-guard middleware uses it to hand the authenticated session to
// downstream handlers.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext retrieves the session attached to ctx by NewContext.
//
// Returns the session and an ok flag:
//   - ok == true: a *Session is present in the context
//   - ok == false: value is missing or has an unexpected type
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok
}
