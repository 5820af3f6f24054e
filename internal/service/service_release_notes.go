// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"os"
	"strings"

	"github.com/MKhiriev/go-grid-portal/internal/logger"
)

// releaseNotesExt is the only file extension listed by the service.
const releaseNotesExt = ".html"

// releaseNotesService lists release note files from a fixed directory.
type releaseNotesService struct {
	dir    string
	logger *logger.Logger
}

// NewReleaseNotesService constructs a ReleaseNotesService over the given
// directory.
func NewReleaseNotesService(dir string, logger *logger.Logger) ReleaseNotesService {
	return &releaseNotesService{
		dir:    dir,
		logger: logger,
	}
}

// List returns the ".html" filenames in the configured directory.
//
// An unreadable or missing directory degrades to an empty list with a
// warn-level log entry; clients always receive a valid (possibly empty)
// array.
func (s *releaseNotesService) List(ctx context.Context) []string {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", s.dir).Msg("release notes directory unreadable")
		return []string{}
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), releaseNotesExt) {
			files = append(files, entry.Name())
		}
	}

	return files
}
