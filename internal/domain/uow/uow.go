package uow

import (
	"context"

	"ashgrove-backend/internal/domain/enquiry"
)

// Repos bundles the repositories that participate in the enquiry
// transaction: quote numbering, customer, note and submission writes
// must commit or roll back together.
type Repos struct {
	Customers   enquiry.CustomerRepository
	Notes       enquiry.NoteRepository
	Submissions enquiry.SubmissionRepository
}

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
