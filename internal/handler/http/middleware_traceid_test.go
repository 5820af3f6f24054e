package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID_AssignsTraceID(t *testing.T) {
	f := newFixture(t)

	rec := get(f.router, "/api/release-notes-list")

	traceID := rec.Header().Get(traceIDHeader)
	require.NotEmpty(t, traceID)

	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
}

func TestWithTraceID_KeepsCallerTraceID(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/release-notes-list", nil)
	req.Header.Set(traceIDHeader, "caller-trace-1")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, "caller-trace-1", rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	f := newFixture(t)

	first := get(f.router, "/api/release-notes-list")
	second := get(f.router, "/api/release-notes-list")

	assert.NotEqual(t, first.Header().Get(traceIDHeader), second.Header().Get(traceIDHeader))
}
