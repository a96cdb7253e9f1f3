package models

import "time"

// Score is an immutable submission record. Rows are never updated or deleted.
type Score struct {
	ID        string
	UserID    string
	Game      string
	Score     int64
	CreatedAt time.Time
}

// LeaderboardEntry is one ranked row of a leaderboard query
// (scores joined with usernames).
type LeaderboardEntry struct {
	Username  string
	Score     int64
	CreatedAt time.Time
}
