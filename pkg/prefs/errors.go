package prefs

import "errors"

// Domain-specific errors for consistent handling across backends.
// Use errors.Is() to check error types.
var (
	// ErrNotFound means the variable does not exist for the given owner.
	ErrNotFound = errors.New("variable not found")

	// Redis backend
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")

	// Postgres backend
	ErrFailedToParseDBConfig    = errors.New("failed to parse database config")
	ErrFailedToOpenDBConnection = errors.New("failed to open database connection")
	ErrFailedToApplyMigrations  = errors.New("failed to apply migrations")

	// Mongo backend
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
)
