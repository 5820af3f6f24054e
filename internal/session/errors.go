// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

// Sentinel errors returned by the session manager and Store implementations.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrNoSession is returned when the request carries no session cookie.
	ErrNoSession = errors.New("no session cookie present")

	// ErrInvalidCookie is returned when the session cookie is malformed or
	// its HMAC signature does not verify.
	ErrInvalidCookie = errors.New("invalid session cookie")

	// ErrSessionNotFound is returned when the store holds no live session
	// for the presented token (unknown or expired).
	ErrSessionNotFound = errors.New("session not found")
)
