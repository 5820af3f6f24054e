package http

import (
	"net/http"

	"github.com/MKhiriev/go-grid-portal/internal/utils"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// traceIDs generates v7 trace identifiers for incoming requests.
var traceIDs = utils.NewUUIDGenerator()

// withTraceID assigns every request a trace id and injects a child logger
// carrying it into the request context, so downstream log lines of one
// request can be correlated. A trace id supplied by the caller is kept.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
