package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	domainErrors "github.com/vporoshin/solace/internal/domain/errors"
	"github.com/vporoshin/solace/internal/domain/model"
	"github.com/vporoshin/solace/internal/domain/repository"
)

const (
	maxCategoryLength    = 100
	maxDescriptionLength = 1000
)

// FallbackReply is stored when the completion service cannot produce one.
const FallbackReply = "I'm sorry, I'm having trouble responding right now. Please reach out to a professional."

// ReplySource produces a supportive reply for a described struggle.
type ReplySource interface {
	GenerateReply(ctx context.Context, category, description string) (string, error)
}

// EntryUseCase encapsulates journal entry logic.
type EntryUseCase struct {
	entries repository.EntryRepository
	replies ReplySource
}

// NewEntryUseCase constructs EntryUseCase.
func NewEntryUseCase(entries repository.EntryRepository, replies ReplySource) *EntryUseCase {
	return &EntryUseCase{entries: entries, replies: replies}
}

// Create validates a submission, obtains a supportive reply and stores the
// entry. A failing reply source never fails the submission: the entry is
// stored with FallbackReply instead.
func (u *EntryUseCase) Create(ctx context.Context, userID int64, category, description string) (*model.Entry, error) {
	category = strings.TrimSpace(category)
	description = strings.TrimSpace(description)
	if category == "" || description == "" {
		return nil, domainErrors.ErrEntryFieldsMissing
	}
	if utf8.RuneCountInString(category) > maxCategoryLength || utf8.RuneCountInString(description) > maxDescriptionLength {
		return nil, domainErrors.ErrEntryTooLong
	}

	reply, err := u.replies.GenerateReply(ctx, category, description)
	if err != nil {
		reply = FallbackReply
	}

	return u.entries.Create(ctx, userID, category, description, reply)
}

// ListByUser returns the user's entries sorted newest first.
func (u *EntryUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Entry, error) {
	return u.entries.ListByUser(ctx, userID)
}
