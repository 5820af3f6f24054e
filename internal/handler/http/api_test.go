package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-grid-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// grid data
// ─────────────────────────────────────────────

func TestGridData_ReturnsRows(t *testing.T) {
	f := newFixture(t)
	f.grid.rows = []models.GridRow{
		{"instance_name": "erp-prod", "active_users": float64(120)},
		{"instance_name": "erp-test", "active_users": float64(3)},
	}
	cookie := f.establishSession(t, testIdentity())

	rec := get(f.router, "/api/grid-data", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var rows []models.GridRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Equal(t, f.grid.rows, rows)
}

func TestGridData_EmptyGridIsAnEmptyArray(t *testing.T) {
	f := newFixture(t)
	f.grid.rows = []models.GridRow{}
	cookie := f.establishSession(t, testIdentity())

	rec := get(f.router, "/api/grid-data", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGridData_BackendFailure(t *testing.T) {
	f := newFixture(t)
	f.grid.err = errors.New("db network error")
	cookie := f.establishSession(t, testIdentity())

	rec := get(f.router, "/api/grid-data", cookie)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Database error"}`, rec.Body.String())
	// the backend failure is never echoed to the client
	assert.NotContains(t, rec.Body.String(), "db network error")
}

func TestGridData_WithoutLoginNeverReachesBackend(t *testing.T) {
	f := newFixture(t)

	rec := get(f.router, "/api/grid-data")

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Zero(t, f.grid.calls)
}

// ─────────────────────────────────────────────
// profile
// ─────────────────────────────────────────────

func TestProfile_ReturnsSessionIdentity(t *testing.T) {
	f := newFixture(t)
	cookie := f.establishSession(t, testIdentity())

	rec := get(f.router, "/api/profile", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"clientName":"acme","clientId":42}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// interaction log
// ─────────────────────────────────────────────

func postJSON(router http.Handler, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLogAction_RecordsInteraction(t *testing.T) {
	f := newFixture(t)

	rec := postJSON(f.router, "/api/log", `{"interaction":{"event":"click","target":"grid"},"userId":"jane"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	calls := f.audit.recorded()
	require.Len(t, calls, 1)
	require.NotNil(t, calls[0].userID)
	assert.Equal(t, "jane", *calls[0].userID)

	payload, ok := calls[0].payload.(string)
	require.True(t, ok, "interaction must be recorded as raw text")
	assert.JSONEq(t, `{"event":"click","target":"grid"}`, payload)
}

func TestLogAction_UserIDFallsBackToSession(t *testing.T) {
	f := newFixture(t)
	cookie := f.establishSession(t, testIdentity())

	rec := postJSON(f.router, "/api/log", `{"interaction":{"event":"click"}}`, cookie)

	require.Equal(t, http.StatusOK, rec.Code)

	calls := f.audit.recorded()
	require.Len(t, calls, 1)
	require.NotNil(t, calls[0].userID)
	assert.Equal(t, "john", *calls[0].userID)
}

func TestLogAction_AnonymousWithoutUserID(t *testing.T) {
	f := newFixture(t)

	rec := postJSON(f.router, "/api/log", `{"interaction":{"event":"page-view"}}`)

	require.Equal(t, http.StatusOK, rec.Code)

	calls := f.audit.recorded()
	require.Len(t, calls, 1)
	assert.Nil(t, calls[0].userID)
}

// The endpoint must acknowledge even what it cannot use.
func TestLogAction_MalformedBodyStillOK(t *testing.T) {
	f := newFixture(t)

	rec := postJSON(f.router, "/api/log", `{not json`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Empty(t, f.audit.recorded())
}

func TestLogAction_EmptyInteractionNotRecorded(t *testing.T) {
	f := newFixture(t)

	rec := postJSON(f.router, "/api/log", `{"userId":"jane"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Empty(t, f.audit.recorded())
}

// ─────────────────────────────────────────────
// release notes
// ─────────────────────────────────────────────

func TestReleaseNotesList_ReturnsFilenames(t *testing.T) {
	f := newFixture(t)
	f.notes.files = []string{"2026-07-portal.html", "2026-08-portal.html"}

	rec := get(f.router, "/api/release-notes-list")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["2026-07-portal.html","2026-08-portal.html"]`, rec.Body.String())
}

func TestReleaseNotesList_EmptyIsAnEmptyArray(t *testing.T) {
	f := newFixture(t)

	rec := get(f.router, "/api/release-notes-list")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
