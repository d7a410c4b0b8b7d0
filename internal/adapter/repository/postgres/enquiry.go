package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ashgrove-backend/internal/domain/enquiry"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *enquiry.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// GetLatestForUpdate locks the newest customer row so concurrent
// submissions serialize on quote number allocation. Callers must run
// inside a transaction.
func (r *CustomerRepository) GetLatestForUpdate(ctx context.Context) (*enquiry.Customer, error) {
	var c enquiry.Customer
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("created_at DESC, id DESC").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, n *enquiry.Note) error {
	return r.db.WithContext(ctx).Create(n).Error
}

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *enquiry.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SubmissionRepository) GetBySubmissionID(ctx context.Context, submissionID string) (*enquiry.Submission, error) {
	var s enquiry.Submission
	err := r.db.WithContext(ctx).Where("submission_id = ?", submissionID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubmissionRepository) List(ctx context.Context, f enquiry.SubmissionFilter) ([]enquiry.Submission, error) {
	q := r.db.WithContext(ctx).Model(&enquiry.Submission{}).Order("created_at DESC, id DESC")
	if f.Since != nil {
		q = q.Where("created_at >= ?", *f.Since)
	}
	if f.SourcePageSlug != "" {
		q = q.Where("source_page_slug = ?", f.SourcePageSlug)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	var out []enquiry.Submission
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SubmissionRepository) UpdateEmailLog(ctx context.Context, submissionID string, raw string) error {
	res := r.db.WithContext(ctx).
		Model(&enquiry.Submission{}).
		Where("submission_id = ?", submissionID).
		Update("email_log", raw)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
