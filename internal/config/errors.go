package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid database settings
	// (for example, missing user or database name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSessionConfigs indicates invalid session settings
	// (for example, an empty signing secret or non-positive lifetime).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidAuthConfigs indicates invalid authentication settings
	// (for example, an out-of-range bcrypt cost or empty rate-limit window).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
