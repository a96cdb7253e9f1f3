package models

import "time"

// ResetToken grants one-time permission to set a new password. Tokens are
// never deleted; Used transitions false->true exactly once.
type ResetToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}
