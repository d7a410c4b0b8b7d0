package enquirymock

import (
	"context"
	"errors"

	"ashgrove-backend/internal/domain/enquiry"
	"ashgrove-backend/internal/domain/uow"
)

// Compile-time compliance.
var (
	_ enquiry.CustomerRepository   = (*CustomerRepo)(nil)
	_ enquiry.NoteRepository       = (*NoteRepo)(nil)
	_ enquiry.SubmissionRepository = (*SubmissionRepo)(nil)
	_ uow.UnitOfWork               = (*UoW)(nil)
)

var errUnimplemented = errors.New("enquirymock: method not implemented")

// CustomerRepo is a function-backed mock; fill in only what a test needs.
type CustomerRepo struct {
	CreateFn             func(ctx context.Context, c *enquiry.Customer) error
	GetLatestForUpdateFn func(ctx context.Context) (*enquiry.Customer, error)
}

func (m *CustomerRepo) Create(ctx context.Context, c *enquiry.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *CustomerRepo) GetLatestForUpdate(ctx context.Context) (*enquiry.Customer, error) {
	if m.GetLatestForUpdateFn != nil {
		return m.GetLatestForUpdateFn(ctx)
	}
	return nil, errUnimplemented
}

type NoteRepo struct {
	CreateFn func(ctx context.Context, n *enquiry.Note) error
}

func (m *NoteRepo) Create(ctx context.Context, n *enquiry.Note) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}

type SubmissionRepo struct {
	CreateFn            func(ctx context.Context, s *enquiry.Submission) error
	GetBySubmissionIDFn func(ctx context.Context, submissionID string) (*enquiry.Submission, error)
	ListFn              func(ctx context.Context, f enquiry.SubmissionFilter) ([]enquiry.Submission, error)
	UpdateEmailLogFn    func(ctx context.Context, submissionID string, raw string) error
}

func (m *SubmissionRepo) Create(ctx context.Context, s *enquiry.Submission) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *SubmissionRepo) GetBySubmissionID(ctx context.Context, submissionID string) (*enquiry.Submission, error) {
	if m.GetBySubmissionIDFn != nil {
		return m.GetBySubmissionIDFn(ctx, submissionID)
	}
	return nil, errUnimplemented
}

func (m *SubmissionRepo) List(ctx context.Context, f enquiry.SubmissionFilter) ([]enquiry.Submission, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, errUnimplemented
}

func (m *SubmissionRepo) UpdateEmailLog(ctx context.Context, submissionID string, raw string) error {
	if m.UpdateEmailLogFn != nil {
		return m.UpdateEmailLogFn(ctx, submissionID, raw)
	}
	return nil
}

// UoW satisfies uow.UnitOfWork. By default WithinTx simply runs the
// callback against the Repos field with no transaction semantics,
// which is what usecase tests want.
type UoW struct {
	Repos      uow.Repos
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}
