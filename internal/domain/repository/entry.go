package repository

import (
	"context"

	"github.com/vporoshin/solace/internal/domain/model"
)

// EntryRepository describes persistence operations with journal entries.
type EntryRepository interface {
	Create(ctx context.Context, userID int64, category, description, reply string) (*model.Entry, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Entry, error)
}
