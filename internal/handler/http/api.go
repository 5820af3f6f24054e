// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/MKhiriev/go-grid-portal/internal/session"
	"github.com/MKhiriev/go-grid-portal/internal/utils"
	"github.com/MKhiriev/go-grid-portal/models"
)

// gridData returns the grid rows of the caller's tenant as a JSON array.
// Column names and row shape come straight from the database routine, so new
// columns show up without a code change.
func (h *Handler) gridData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, ok := session.FromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	rows, err := h.services.GridService.AppInstances(ctx, sess.Identity.ClientID)
	if err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error fetching grid data")
		utils.WriteJSON(w, map[string]string{"error": msgDatabaseError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, rows, http.StatusOK)
}

// profile returns the display identity of the current session.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	utils.WriteJSON(w, models.Profile{
		ClientName: sess.Identity.ClientName,
		ClientID:   sess.Identity.ClientID,
	}, http.StatusOK)
}

type logActionRequest struct {
	Interaction json.RawMessage `json:"interaction"`
	UserID      string          `json:"userId"`
}

// logAction accepts client-side interaction events. The endpoint always
// acknowledges with {"ok":true}: a broken event must never surface as an
// error in the UI. Malformed bodies are dropped with a warning.
func (h *Handler) logAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req logActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("malformed interaction event dropped")
		utils.WriteJSON(w, map[string]bool{"ok": true}, http.StatusOK)
		return
	}

	// The body may name any userId; when it does not, fall back to the
	// session's username.
	var userID *string
	if req.UserID != "" {
		userID = &req.UserID
	} else if sess, err := h.sessions.FromRequest(ctx, r); err == nil && sess.LoggedIn() {
		userID = &sess.Identity.Username
	}

	if len(req.Interaction) > 0 {
		ip := clientIP(r)
		h.services.AuditService.Record(ctx, userID, string(req.Interaction), &ip)
	}

	utils.WriteJSON(w, map[string]bool{"ok": true}, http.StatusOK)
}

// releaseNotesList returns the published release note filenames.
func (h *Handler) releaseNotesList(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.ReleaseNotesService.List(r.Context()), http.StatusOK)
}
