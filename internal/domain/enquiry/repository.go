package enquiry

import (
	"context"
	"time"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *Customer) error
	// GetLatestForUpdate returns the most recently created customer,
	// row-locked when called inside a transaction. Quote numbering
	// depends on this read being serialized with the insert.
	GetLatestForUpdate(ctx context.Context) (*Customer, error)
}

type NoteRepository interface {
	Create(ctx context.Context, n *Note) error
}

// SubmissionFilter narrows List queries. Limit == 0 means no limit.
type SubmissionFilter struct {
	Since          *time.Time
	SourcePageSlug string
	Limit          int
	Offset         int
}

type SubmissionRepository interface {
	Create(ctx context.Context, s *Submission) error
	GetBySubmissionID(ctx context.Context, submissionID string) (*Submission, error)
	// List returns submissions newest-first.
	List(ctx context.Context, f SubmissionFilter) ([]Submission, error)
	UpdateEmailLog(ctx context.Context, submissionID string, raw string) error
}
