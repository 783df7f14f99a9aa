package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidGrippConfigs indicates invalid remote client settings
	// (for example, a missing base URL or bearer token).
	ErrInvalidGrippConfigs = errors.New("invalid gripp configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidQueueConfigs indicates invalid request queue settings
	// (for example, a negative concurrency ceiling).
	ErrInvalidQueueConfigs = errors.New("invalid queue configuration")
	// ErrInvalidSyncConfigs indicates invalid synchronization settings
	// (for example, a negative page size).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
