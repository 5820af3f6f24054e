// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// User-visible messages. Credential failures share one deliberately vague
// message so the endpoint does not reveal whether the user exists.
const (
	msgInvalidCredentials = "Invalid credentials for this client"
	msgLoginFailed        = "Login failed. Try again."
	msgRegistrationFailed = "Registration failed."
	msgTooManyAttempts    = "Too many login attempts. Please try again in 10 minutes"
	msgDatabaseError      = "Database error"
)
