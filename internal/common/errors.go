// Package common defines shared constants and sentinel errors used across
// MediBook components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Session errors. ErrInvalidCredentials covers both unknown email and
	// wrong password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrDuplicateEmail     = errors.New("email already registered")

	// Token lifecycle errors.
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Booking errors.
	ErrSlotTaken = errors.New("time slot already booked")
	ErrForbidden = errors.New("forbidden")

	// Infrastructure: the relational store or the cache is unreachable.
	// Retryable by the caller, never retried inside the services.
	ErrInfrastructure = errors.New("infrastructure unavailable")

	// Configuration: fatal, startup-only (e.g. empty signing secret).
	ErrConfiguration = errors.New("invalid configuration")
)
