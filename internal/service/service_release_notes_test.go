package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("<html></html>"), 0o600))
}

func TestReleaseNotesService_List_OnlyHTMLFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "2026-07-portal.html")
	writeFile(t, dir, "2026-08-portal.html")
	writeFile(t, dir, "notes.txt")
	writeFile(t, dir, "draft.html.bak")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o700))

	svc := NewReleaseNotesService(dir, logger.Nop())

	files := svc.List(context.Background())
	assert.ElementsMatch(t, []string{"2026-07-portal.html", "2026-08-portal.html"}, files)
}

func TestReleaseNotesService_List_EmptyDirectory(t *testing.T) {
	svc := NewReleaseNotesService(t.TempDir(), logger.Nop())

	files := svc.List(context.Background())
	require.NotNil(t, files)
	assert.Empty(t, files)
}

func TestReleaseNotesService_List_MissingDirectory(t *testing.T) {
	svc := NewReleaseNotesService(filepath.Join(t.TempDir(), "does-not-exist"), logger.Nop())

	files := svc.List(context.Background())
	require.NotNil(t, files)
	assert.Empty(t, files)
}
