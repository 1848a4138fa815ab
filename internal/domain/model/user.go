package model

import "time"

// User represents a registered member of the journal.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
