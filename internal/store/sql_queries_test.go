// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-grid-portal/internal/session"
	"github.com/MKhiriev/go-grid-portal/models"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertAuditEntryQuery_SQLContainsParts(t *testing.T) {
	userID := "john"
	ip := "10.0.0.7"

	query, args, err := buildInsertAuditEntryQuery(models.AuditEntry{
		UserID:      &userID,
		Interaction: `{"action":"login"}`,
		IP:          &ip,
	})
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 3)
	require.Equal(t, &userID, args[0])
	require.Equal(t, `{"action":"login"}`, args[1])
	require.Equal(t, &ip, args[2])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "insert into user_action_log")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "interaction")
	require.Contains(t, q, "ip")

	// created_at is server-assigned, never bound
	require.NotContains(t, q, "created_at")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_buildUpsertSessionQuery_Authenticated(t *testing.T) {
	now := time.Now()
	sess := &session.Session{
		Token:     "tok-1",
		CreatedAt: now,
		ExpiresAt: now.Add(24 * time.Hour),
		Identity:  &session.Identity{ClientID: 42, ClientName: "acme", Username: "john"},
	}

	query, args, err := buildUpsertSessionQuery(sess)
	require.NoError(t, err)

	require.Len(t, args, 6)
	require.Equal(t, "tok-1", args[0])
	require.Equal(t, int64(42), args[1])
	require.Equal(t, "acme", args[2])
	require.Equal(t, "john", args[3])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into sessions")
	require.Contains(t, q, "on conflict (token) do update")
	require.Contains(t, q, "excluded.expires_at")
}

func Test_buildUpsertSessionQuery_Anonymous(t *testing.T) {
	sess := &session.Session{Token: "tok-2"}

	_, args, err := buildUpsertSessionQuery(sess)
	require.NoError(t, err)

	require.Len(t, args, 6)
	require.Nil(t, args[1])
	require.Nil(t, args[2])
	require.Nil(t, args[3])
}

func Test_buildSelectSessionQuery_FiltersExpired(t *testing.T) {
	query, args, err := buildSelectSessionQuery("tok-1")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "tok-1", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from sessions")
	require.Contains(t, q, "token")
	require.Contains(t, q, "expires_at > now()")

	for _, c := range sessionColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildDeleteSessionQuery(t *testing.T) {
	query, args, err := buildDeleteSessionQuery("tok-1")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "tok-1", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from sessions")
	require.Contains(t, q, "token")
}

func Test_buildDeleteExpiredSessionsQuery(t *testing.T) {
	query, args, err := buildDeleteExpiredSessionsQuery()
	require.NoError(t, err)

	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from sessions")
	require.Contains(t, q, "expires_at <= now()")
}
