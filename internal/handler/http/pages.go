// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"path/filepath"

	"github.com/MKhiriev/go-grid-portal/internal/logger"
)

// root serves the login page, or forwards straight to the landing page when
// the visitor already has a live session.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if sess, err := h.sessions.FromRequest(r.Context(), r); err == nil && sess.LoggedIn() {
		http.Redirect(w, r, "/landing", http.StatusFound)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.assets.HTMLDir, "index.html"))
}

// signupPage serves the registration form.
func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.assets.HTMLDir, "signup.html"))
}

// landing serves the authenticated landing page. Access is enforced by the
// requireLogin middleware.
func (h *Handler) landing(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.assets.HTMLDir, "landing.html"))
}

// logout records the action, tears the session down and returns the visitor
// to the login page. The audit record is taken before destruction so the
// username is still known; destruction errors are logged but never block the
// redirect.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var userID *string
	payload := map[string]string{"action": "logout"}
	if sess, err := h.sessions.FromRequest(ctx, r); err == nil && sess.LoggedIn() {
		userID = &sess.Identity.Username
		payload["client"] = sess.Identity.ClientName
	}
	ip := clientIP(r)
	h.services.AuditService.Record(ctx, userID, payload, &ip)

	if err := h.sessions.Destroy(ctx, w, r); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error destroying session")
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
