// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/MKhiriev/go-grid-portal/internal/service"
)

// login handles the sign-in form POST.
//
// Bad credentials of any kind answer 401 with one shared message. Failures
// past credential checking (session persistence, database outage) answer 500
// with a generic message. Success establishes a session and redirects to the
// landing page.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, msgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	client := r.PostFormValue("client")
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	identity, err := h.services.AuthService.Login(ctx, client, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, service.ErrInvalidCredentials):
			http.Error(w, msgInvalidCredentials, http.StatusUnauthorized)
		default:
			log.Error().Err(err).Msg("login failed")
			http.Error(w, msgLoginFailed, http.StatusInternalServerError)
		}
		return
	}

	if _, err := h.sessions.Establish(ctx, w, identity); err != nil {
		log.Error().Err(err).Msg("error establishing session")
		http.Error(w, msgLoginFailed, http.StatusInternalServerError)
		return
	}

	ip := clientIP(r)
	h.services.AuditService.Record(ctx, &username, map[string]string{"action": "login", "client": client}, &ip)

	http.Redirect(w, r, "/landing", http.StatusFound)
}

// signup handles the registration form POST. Registration does not sign the
// user in; the success page links back to the login form.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, msgRegistrationFailed, http.StatusBadRequest)
		return
	}

	client := r.PostFormValue("client")
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if err := h.services.AuthService.Register(ctx, client, username, password); err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			http.Error(w, msgRegistrationFailed, http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("registration failed")
		http.Error(w, msgRegistrationFailed, http.StatusInternalServerError)
		return
	}

	ip := clientIP(r)
	h.services.AuditService.Record(ctx, &username, map[string]string{"action": "signup", "client": client}, &ip)

	http.ServeFile(w, r, filepath.Join(h.assets.HTMLDir, "registration_successful.html"))
}
