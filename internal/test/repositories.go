package test

import (
	"context"

	domainErrors "github.com/vporoshin/solace/internal/domain/errors"
	"github.com/vporoshin/solace/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Username: username, PasswordHash: passwordHash}
	s.Next++
	s.Users[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// EntryCreateCall stores arguments passed to EntryRepositoryStub.Create.
type EntryCreateCall struct {
	UserID      int64
	Category    string
	Description string
	Reply       string
}

// EntryRepositoryStub allows tests to customize journal persistence.
type EntryRepositoryStub struct {
	CreateFn     func(context.Context, int64, string, string, string) (*model.Entry, error)
	ListByUserFn func(context.Context, int64) ([]model.Entry, error)

	Created []EntryCreateCall
	Entries []model.Entry
	Next    int64
}

// Create tracks invocations and returns configured responses.
func (s *EntryRepositoryStub) Create(ctx context.Context, userID int64, category, description, reply string) (*model.Entry, error) {
	s.Created = append(s.Created, EntryCreateCall{UserID: userID, Category: category, Description: description, Reply: reply})
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, category, description, reply)
	}
	s.Next++
	entry := model.Entry{ID: s.Next, UserID: userID, Category: category, Description: description, Reply: reply}
	s.Entries = append([]model.Entry{entry}, s.Entries...)
	return &entry, nil
}

// ListByUser returns entries from configured slice filtered by owner.
func (s *EntryRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Entry, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var owned []model.Entry
	for _, e := range s.Entries {
		if e.UserID == userID {
			owned = append(owned, e)
		}
	}
	return owned, nil
}
