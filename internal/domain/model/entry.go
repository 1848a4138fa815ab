package model

import "time"

// Entry describes a single journal submission together with the
// supportive reply generated for it.
type Entry struct {
	ID          int64
	UserID      int64
	Category    string
	Description string
	Reply       string
	CreatedAt   time.Time
}
