package models

import "time"

// RefreshToken is the single active session row for a user. A new login
// replaces the row; there is never more than one per user.
type RefreshToken struct {
	UserID    int64
	Token     string
	ExpiresAt time.Time
}
