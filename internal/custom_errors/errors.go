package custom_errors

import "errors"

// Post errors
var (
	ErrPostNotFound   = errors.New("post not found")
	ErrPostValidation = errors.New("post validation failed")
	ErrSlugTaken      = errors.New("slug already exists")
	ErrInvalidSlug    = errors.New("invalid slug generated")
)

// Auth errors
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrAdminKeyInvalid = errors.New("invalid admin key")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenInvalid    = errors.New("token invalid")
)

// Configuration errors
var (
	ErrMissingConfig = errors.New("required configuration is missing")
)

// Database errors. Auth and connectivity failures are kept distinct so
// operators can tell misconfigured credentials from an unreachable store.
var (
	ErrDatabaseQuery       = errors.New("database query error")
	ErrDatabaseScan        = errors.New("database scan error")
	ErrDatabaseAuthFailed  = errors.New("database authentication failed, check connection string credentials")
	ErrDatabaseUnavailable = errors.New("database connection error, check network and connection string")
)

// Cache errors
var (
	ErrCacheMiss = errors.New("cache miss")
)
