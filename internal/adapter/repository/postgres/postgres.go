// Package postgres holds the gorm-backed repository implementations.
// Despite the name they run against any gorm dialector; tests use
// in-memory sqlite.
package postgres

import (
	"ashgrove-backend/internal/domain/content"
	"ashgrove-backend/internal/domain/enquiry"
	"ashgrove-backend/internal/domain/uow"
	"ashgrove-backend/internal/domain/user"
)

// Compile-time compliance.
var (
	_ uow.UnitOfWork               = (*GormUoW)(nil)
	_ enquiry.CustomerRepository   = (*CustomerRepository)(nil)
	_ enquiry.NoteRepository       = (*NoteRepository)(nil)
	_ enquiry.SubmissionRepository = (*SubmissionRepository)(nil)
	_ content.PageRepository       = (*PageRepository)(nil)
	_ content.GalleryRepository    = (*GalleryRepository)(nil)
	_ content.FAQRepository        = (*FAQRepository)(nil)
	_ content.RedirectRepository   = (*RedirectRepository)(nil)
	_ user.Repository              = (*UserRepository)(nil)
)
