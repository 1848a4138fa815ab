package app

import (
	"context"

	"github.com/vporoshin/solace/internal/domain/model"
	"github.com/vporoshin/solace/internal/usecase"
)

// JournalFacade exposes the application operations consumed by the HTTP layer.
type JournalFacade struct {
	auth    *usecase.AuthUseCase
	entries *usecase.EntryUseCase
}

func NewJournalFacade(auth *usecase.AuthUseCase, entries *usecase.EntryUseCase) *JournalFacade {
	return &JournalFacade{auth: auth, entries: entries}
}

func (f *JournalFacade) Register(ctx context.Context, username, password string) error {
	_, err := f.auth.Register(ctx, username, password)
	return err
}

func (f *JournalFacade) Authenticate(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, username, password)
	return token, err
}

func (f *JournalFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *JournalFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *JournalFacade) SubmitEntry(ctx context.Context, userID int64, category, description string) (*model.Entry, error) {
	return f.entries.Create(ctx, userID, category, description)
}

func (f *JournalFacade) Entries(ctx context.Context, userID int64) ([]model.Entry, error) {
	return f.entries.ListByUser(ctx, userID)
}
