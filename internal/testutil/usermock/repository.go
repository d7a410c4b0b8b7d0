package usermock

import (
	"context"
	"errors"

	"ashgrove-backend/internal/domain/user"
)

var _ user.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("usermock: method not implemented")

// Repo is a function-backed mock; fill in only what a test needs.
type Repo struct {
	CreateFn     func(ctx context.Context, u *user.User) error
	GetByEmailFn func(ctx context.Context, email string) (*user.User, error)
	SaveFn       func(ctx context.Context, u *user.User) error
}

func (m *Repo) Create(ctx context.Context, u *user.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, u *user.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}
