package postgres

import (
	"context"

	"gorm.io/gorm"

	"ashgrove-backend/internal/domain/uow"
)

// GormUoW runs a callback inside one database transaction with every
// enquiry-side repository bound to that transaction.
type GormUoW struct {
	db *gorm.DB
}

func NewGormUoW(db *gorm.DB) *GormUoW {
	return &GormUoW{db: db}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{
			Customers:   NewCustomerRepository(tx),
			Notes:       NewNoteRepository(tx),
			Submissions: NewSubmissionRepository(tx),
		})
	})
}
