// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GridRow is a single row of the app-instances grid as returned by the
// sp_pub_grid_appinstances database routine.
//
// The routine's column set is owned by the database and may change without a
// corresponding application release, so rows are passed through to the client
// as column-name keyed maps rather than a fixed struct.
type GridRow map[string]any
