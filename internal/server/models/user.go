package models

import "time"

// User is an identity created implicitly on first score submission.
// Email is optional and unique when present; PasswordHash is the encoded
// argon2id hash, opaque to everything but the security package.
type User struct {
	ID           string
	Username     string
	Email        *string
	PasswordHash string
	CreatedAt    time.Time
}
