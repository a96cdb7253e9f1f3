// Package common defines shared sentinel errors used across the scoreboard
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Credential errors. ErrInvalidCredentials covers both an unknown
	// username and a wrong password; the two cases must stay
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email already in use")

	// Field-constraint violations, rejected before business logic runs.
	ErrValidation = errors.New("validation error")

	// Reset-token lifecycle errors.
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenAlreadyUsed = errors.New("token already used")
	ErrTokenExpired     = errors.New("token expired")
)
