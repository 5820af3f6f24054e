// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-grid-portal/internal/logger"
)

// loginRateLimit throttles repeated failed sign-in attempts per client
// address. Only responses that come back 401 count against the limit, so a
// user who eventually types the right password is never penalized for it.
func (h *Handler) loginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		source := clientIP(r)

		if h.limiter.Blocked(source) {
			logger.FromRequest(r).Warn().Str("source", source).Msg("login attempts limit exceeded")
			http.Error(w, msgTooManyAttempts, http.StatusTooManyRequests)
			return
		}

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		if lw.Status() == http.StatusUnauthorized {
			h.limiter.Fail(source)
		}
	})
}
