// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.User == "" || cfg.Storage.DB.Name == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Sessions.Secret == "" || cfg.Sessions.TTL <= 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.Auth.BcryptCost < 4 || cfg.Auth.RateLimitAttempts < 1 || cfg.Auth.RateLimitWindow <= 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
