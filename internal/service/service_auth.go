// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-grid-portal/internal/config"
	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/MKhiriev/go-grid-portal/internal/session"
	"github.com/MKhiriev/go-grid-portal/internal/store"
)

// authService is the concrete implementation of AuthService.
// It resolves credentials through the CredentialsRepository and compares
// passwords with bcrypt, whose comparison is constant-time.
type authService struct {
	// credentials is the data-access layer used to look up and register users.
	credentials store.CredentialsRepository

	// bcryptCost is the cost factor applied when hashing a new password.
	// Fixed per deployment; never request-controlled.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// CredentialsRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(credentials store.CredentialsRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		credentials: credentials,
		bcryptCost:  cfg.BcryptCost,
		logger:      logger,
	}
}

// Login authenticates a user of the given client.
//
// A missing credential record and a bcrypt mismatch both map to
// ErrInvalidCredentials; callers must surface the same message for both so
// the endpoint does not leak which usernames exist.
//
// Returns the identity to establish a session with, or:
//   - ErrInvalidDataProvided if client, username, or password is empty.
//   - ErrInvalidCredentials on unknown user or wrong password.
//   - A wrapped storage error if the lookup itself fails.
func (a *authService) Login(ctx context.Context, client, username, password string) (session.Identity, error) {
	log := logger.FromContext(ctx)

	if client == "" || username == "" || password == "" {
		log.Error().Str("client", client).Str("username", username).Msg("invalid login data provided")
		return session.Identity{}, ErrInvalidDataProvided
	}

	creds, err := a.credentials.FindCredentials(ctx, client, username)
	if err != nil {
		if errors.Is(err, store.ErrNoCredentialsFound) {
			log.Debug().Str("client", client).Str("username", username).Msg("no credentials for pair")
			return session.Identity{}, ErrInvalidCredentials
		}
		log.Err(err).Str("client", client).Msg("credentials lookup failed")
		return session.Identity{}, fmt.Errorf("credentials lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		log.Debug().Str("client", client).Str("username", username).Msg("wrong password")
		return session.Identity{}, ErrInvalidCredentials
	}

	return session.Identity{
		ClientID:   creds.ClientID,
		ClientName: client,
		Username:   username,
	}, nil
}

// Register creates a new user account for the given client.
//
// The password is hashed before any database call; a hashing failure
// surfaces as the generic ErrRegistrationFailed, as does any downstream
// error other than a duplicate user.
func (a *authService) Register(ctx context.Context, client, username, password string) error {
	log := logger.FromContext(ctx)

	if client == "" || username == "" || password == "" {
		log.Error().Str("client", client).Str("username", username).Msg("invalid registration data provided")
		return ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return ErrRegistrationFailed
	}

	if err := a.credentials.RegisterUser(ctx, client, username, string(hash)); err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
		}
		log.Err(err).Str("client", client).Msg("registration routine failed")
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	return nil
}
