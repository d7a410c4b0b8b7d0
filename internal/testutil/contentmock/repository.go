package contentmock

import (
	"context"
	"errors"

	"ashgrove-backend/internal/domain/content"
)

// Compile-time compliance.
var (
	_ content.PageRepository     = (*PageRepo)(nil)
	_ content.GalleryRepository  = (*GalleryRepo)(nil)
	_ content.FAQRepository      = (*FAQRepo)(nil)
	_ content.RedirectRepository = (*RedirectRepo)(nil)
)

var errUnimplemented = errors.New("contentmock: method not implemented")

type PageRepo struct {
	CreateFn    func(ctx context.Context, p *content.Page) error
	GetByIDFn   func(ctx context.Context, id uint64) (*content.Page, error)
	GetBySlugFn func(ctx context.Context, slug string) (*content.Page, error)
	ListFn      func(ctx context.Context, publishedOnly bool) ([]content.Page, error)
	SaveFn      func(ctx context.Context, p *content.Page) error
	DeleteFn    func(ctx context.Context, id uint64) error
}

func (m *PageRepo) Create(ctx context.Context, p *content.Page) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *PageRepo) GetByID(ctx context.Context, id uint64) (*content.Page, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *PageRepo) GetBySlug(ctx context.Context, slug string) (*content.Page, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}
	return nil, errUnimplemented
}

func (m *PageRepo) List(ctx context.Context, publishedOnly bool) ([]content.Page, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, publishedOnly)
	}
	return nil, errUnimplemented
}

func (m *PageRepo) Save(ctx context.Context, p *content.Page) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *PageRepo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type GalleryRepo struct {
	CreateFn  func(ctx context.Context, g *content.GalleryItem) error
	GetByIDFn func(ctx context.Context, id uint64) (*content.GalleryItem, error)
	ListFn    func(ctx context.Context, publishedOnly bool) ([]content.GalleryItem, error)
	SaveFn    func(ctx context.Context, g *content.GalleryItem) error
	DeleteFn  func(ctx context.Context, id uint64) error
}

func (m *GalleryRepo) Create(ctx context.Context, g *content.GalleryItem) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, g)
	}
	return nil
}

func (m *GalleryRepo) GetByID(ctx context.Context, id uint64) (*content.GalleryItem, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *GalleryRepo) List(ctx context.Context, publishedOnly bool) ([]content.GalleryItem, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, publishedOnly)
	}
	return nil, errUnimplemented
}

func (m *GalleryRepo) Save(ctx context.Context, g *content.GalleryItem) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, g)
	}
	return nil
}

func (m *GalleryRepo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type FAQRepo struct {
	CreateFn  func(ctx context.Context, f *content.FAQ) error
	GetByIDFn func(ctx context.Context, id uint64) (*content.FAQ, error)
	ListFn    func(ctx context.Context, publishedOnly bool) ([]content.FAQ, error)
	SaveFn    func(ctx context.Context, f *content.FAQ) error
	DeleteFn  func(ctx context.Context, id uint64) error
}

func (m *FAQRepo) Create(ctx context.Context, f *content.FAQ) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, f)
	}
	return nil
}

func (m *FAQRepo) GetByID(ctx context.Context, id uint64) (*content.FAQ, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *FAQRepo) List(ctx context.Context, publishedOnly bool) ([]content.FAQ, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, publishedOnly)
	}
	return nil, errUnimplemented
}

func (m *FAQRepo) Save(ctx context.Context, f *content.FAQ) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, f)
	}
	return nil
}

func (m *FAQRepo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type RedirectRepo struct {
	CreateFn          func(ctx context.Context, r *content.Redirect) error
	GetByIDFn         func(ctx context.Context, id uint64) (*content.Redirect, error)
	GetBySourceSlugFn func(ctx context.Context, slug string) (*content.Redirect, error)
	ListFn            func(ctx context.Context) ([]content.Redirect, error)
	SaveFn            func(ctx context.Context, r *content.Redirect) error
	DeleteFn          func(ctx context.Context, id uint64) error
}

func (m *RedirectRepo) Create(ctx context.Context, r *content.Redirect) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *RedirectRepo) GetByID(ctx context.Context, id uint64) (*content.Redirect, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *RedirectRepo) GetBySourceSlug(ctx context.Context, slug string) (*content.Redirect, error) {
	if m.GetBySourceSlugFn != nil {
		return m.GetBySourceSlugFn(ctx, slug)
	}
	return nil, errUnimplemented
}

func (m *RedirectRepo) List(ctx context.Context) ([]content.Redirect, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *RedirectRepo) Save(ctx context.Context, r *content.Redirect) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *RedirectRepo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
