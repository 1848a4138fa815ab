package handlers

import (
	"context"

	"github.com/vporoshin/solace/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// EntryFacade encapsulates journal operations exposed via HTTP.
type EntryFacade interface {
	SubmitEntry(ctx context.Context, userID int64, category, description string) (*model.Entry, error)
	Entries(ctx context.Context, userID int64) ([]model.Entry, error)
}

// JournalFacade aggregates the full set of operations used across handlers.
type JournalFacade interface {
	AuthFacade
	EntryFacade
}

// HealthChecker reports whether backing storage is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
