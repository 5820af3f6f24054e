// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/MKhiriev/go-grid-portal/internal/session"
)

// requireLogin guards pages and API endpoints that need an authenticated
// session. Visitors without one are sent back to the login page; the
// wrapped handler can rely on session.FromContext succeeding.
func (h *Handler) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.sessions.FromRequest(r.Context(), r)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) &&
				!errors.Is(err, session.ErrInvalidCookie) &&
				!errors.Is(err, session.ErrSessionNotFound) {
				logger.FromRequest(r).Error().Err(err).Msg("session lookup failed")
			}
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		if !sess.LoggedIn() {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
	})
}
