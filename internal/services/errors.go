package services

import "errors"

// Sentinel errors returned by services and mapped to HTTP responses in
// handlers. ErrNotFound deliberately covers both "does not exist" and
// "exists but is not owned by the caller" so the API never reveals which.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrDuplicateApplication = errors.New("already applied to this posting")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidDateRange     = errors.New("end date must not be before start date")
	ErrNotConfigured        = errors.New("external service is not configured")
)
