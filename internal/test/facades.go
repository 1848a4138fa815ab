package test

import (
	"context"

	"github.com/vporoshin/solace/internal/domain/model"
)

// EntryFacadeStub provides controllable behaviour for journal endpoints.
type EntryFacadeStub struct {
	SubmitFn  func(context.Context, int64, string, string) (*model.Entry, error)
	EntriesFn func(context.Context, int64) ([]model.Entry, error)
}

// SubmitEntry delegates to provided function or returns a default entry.
func (s EntryFacadeStub) SubmitEntry(ctx context.Context, userID int64, category, description string) (*model.Entry, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, userID, category, description)
	}
	return &model.Entry{ID: 1, UserID: userID, Category: category, Description: description, Reply: "stay strong"}, nil
}

// Entries returns predefined entries for given user.
func (s EntryFacadeStub) Entries(ctx context.Context, userID int64) ([]model.Entry, error) {
	if s.EntriesFn != nil {
		return s.EntriesFn(ctx, userID)
	}
	return []model.Entry{{ID: 1, UserID: userID, Category: "alcohol", Description: "rough week", Reply: "stay strong"}}, nil
}

// JournalFacadeStub aggregates facade dependencies for HTTP layer tests.
type JournalFacadeStub struct {
	AuthFacadeStub
	EntryFacadeStub
}

// ReplySourceStub returns canned supportive replies for tests.
type ReplySourceStub struct {
	GenerateFn func(context.Context, string, string) (string, error)
	Reply      string
	Err        error
}

// GenerateReply returns configured reply or error.
func (s ReplySourceStub) GenerateReply(ctx context.Context, category, description string) (string, error) {
	if s.GenerateFn != nil {
		return s.GenerateFn(ctx, category, description)
	}
	if s.Err != nil {
		return "", s.Err
	}
	if s.Reply != "" {
		return s.Reply, nil
	}
	return "stay strong", nil
}

// HealthCheckerStub reports configured storage health.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthCheckerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}
