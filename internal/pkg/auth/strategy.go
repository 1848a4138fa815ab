package auth

import "time"

// Strategy issues and verifies signed session tokens.
type Strategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}

const defaultTTL = 24 * time.Hour
