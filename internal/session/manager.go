// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/MKhiriev/go-grid-portal/internal/utils"
)

// Manager ties the cookie transport to a Store.
//
// Cookie values have the form "<token>.<signature>" where signature is an
// HMAC-SHA256 digest of the token under the configured secret. A cookie whose
// signature does not verify is discarded without a store lookup.
type Manager struct {
	store      Store
	secret     string
	ttl        time.Duration
	cookieName string
	secure     bool
	logger     *logger.Logger
}

// NewManager constructs a session Manager.
//
// secure controls the cookie's Secure attribute and should be true in
// production environments only, so that local development over plain HTTP
// keeps working.
func NewManager(store Store, secret, cookieName string, ttl time.Duration, secure bool, logger *logger.Logger) *Manager {
	logger.Info().Str("cookie", cookieName).Dur("ttl", ttl).Bool("secure", secure).Msg("session manager created")
	return &Manager{
		store:      store,
		secret:     secret,
		ttl:        ttl,
		cookieName: cookieName,
		secure:     secure,
		logger:     logger,
	}
}

// FromRequest resolves the live session referenced by the request's cookie.
//
// Returns:
//   - ErrNoSession if no cookie is present;
//   - ErrInvalidCookie if the cookie is malformed or fails signature
//     verification;
//   - ErrSessionNotFound if the store holds no live session for the token.
func (m *Manager) FromRequest(ctx context.Context, r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return nil, ErrNoSession
	}

	token, err := m.verifyCookieValue(cookie.Value)
	if err != nil {
		return nil, err
	}

	sess, err := m.store.Find(ctx, token)
	if err != nil {
		return nil, err
	}

	return sess, nil
}

// Establish creates an authenticated session for identity, persists it, and
// issues the session cookie on w.
func (m *Manager) Establish(ctx context.Context, w http.ResponseWriter, identity Identity) (*Session, error) {
	sess, err := New(m.ttl)
	if err != nil {
		return nil, err
	}
	sess.Authenticate(identity)

	if err := m.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("error saving session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    m.signCookieValue(sess.Token),
		Path:     "/",
		Expires:  sess.ExpiresAt,
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return sess, nil
}

// Destroy deletes the session referenced by the request (if any) and clears
// the cookie. A missing or invalid cookie is not an error: the end state,
// no session, is reached either way.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	defer m.clearCookie(w)

	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return nil
	}

	token, err := m.verifyCookieValue(cookie.Value)
	if err != nil {
		return nil
	}

	if err := m.store.Delete(ctx, token); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

// RunCleanup periodically sweeps expired sessions from the store until ctx is
// cancelled. It is intended to be launched as a background goroutine at
// process start.
func (m *Manager) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := m.store.DeleteExpired(ctx)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					m.logger.Err(err).Msg("error sweeping expired sessions")
				}
				continue
			}
			if deleted > 0 {
				m.logger.Debug().Int64("deleted", deleted).Msg("swept expired sessions")
			}
		}
	}
}

// signCookieValue produces the signed cookie representation of token.
func (m *Manager) signCookieValue(token string) string {
	return token + "." + utils.HashString(token, m.secret)
}

// verifyCookieValue splits a cookie value into token and signature and
// verifies the signature. Returns the bare token on success.
func (m *Manager) verifyCookieValue(value string) (string, error) {
	token, signature, found := strings.Cut(value, ".")
	if !found || token == "" {
		return "", ErrInvalidCookie
	}

	if !utils.VerifyString(token, signature, m.secret) {
		return "", ErrInvalidCookie
	}

	return token, nil
}

// clearCookie expires the session cookie on the client.
func (m *Manager) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
