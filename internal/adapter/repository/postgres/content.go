package postgres

import (
	"context"

	"gorm.io/gorm"

	"ashgrove-backend/internal/domain/content"
)

type PageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{db: db}
}

func (r *PageRepository) Create(ctx context.Context, p *content.Page) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PageRepository) GetByID(ctx context.Context, id uint64) (*content.Page, error) {
	var p content.Page
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PageRepository) GetBySlug(ctx context.Context, slug string) (*content.Page, error) {
	var p content.Page
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PageRepository) List(ctx context.Context, publishedOnly bool) ([]content.Page, error) {
	q := r.db.WithContext(ctx).Model(&content.Page{}).Order("slug ASC")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var out []content.Page
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PageRepository) Save(ctx context.Context, p *content.Page) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PageRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&content.Page{}, id).Error
}

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) Create(ctx context.Context, g *content.GalleryItem) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GalleryRepository) GetByID(ctx context.Context, id uint64) (*content.GalleryItem, error) {
	var g content.GalleryItem
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GalleryRepository) List(ctx context.Context, publishedOnly bool) ([]content.GalleryItem, error) {
	q := r.db.WithContext(ctx).Model(&content.GalleryItem{}).Order("sort_order ASC, id ASC")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var out []content.GalleryItem
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GalleryRepository) Save(ctx context.Context, g *content.GalleryItem) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *GalleryRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&content.GalleryItem{}, id).Error
}

type FAQRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{db: db}
}

func (r *FAQRepository) Create(ctx context.Context, f *content.FAQ) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FAQRepository) GetByID(ctx context.Context, id uint64) (*content.FAQ, error) {
	var f content.FAQ
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FAQRepository) List(ctx context.Context, publishedOnly bool) ([]content.FAQ, error) {
	q := r.db.WithContext(ctx).Model(&content.FAQ{}).Order("sort_order ASC, id ASC")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var out []content.FAQ
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *FAQRepository) Save(ctx context.Context, f *content.FAQ) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *FAQRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&content.FAQ{}, id).Error
}

type RedirectRepository struct {
	db *gorm.DB
}

func NewRedirectRepository(db *gorm.DB) *RedirectRepository {
	return &RedirectRepository{db: db}
}

func (r *RedirectRepository) Create(ctx context.Context, red *content.Redirect) error {
	return r.db.WithContext(ctx).Create(red).Error
}

func (r *RedirectRepository) GetByID(ctx context.Context, id uint64) (*content.Redirect, error) {
	var red content.Redirect
	if err := r.db.WithContext(ctx).First(&red, id).Error; err != nil {
		return nil, err
	}
	return &red, nil
}

func (r *RedirectRepository) GetBySourceSlug(ctx context.Context, slug string) (*content.Redirect, error) {
	var red content.Redirect
	if err := r.db.WithContext(ctx).Where("source_slug = ?", slug).First(&red).Error; err != nil {
		return nil, err
	}
	return &red, nil
}

func (r *RedirectRepository) List(ctx context.Context) ([]content.Redirect, error) {
	var out []content.Redirect
	if err := r.db.WithContext(ctx).Order("source_slug ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RedirectRepository) Save(ctx context.Context, red *content.Redirect) error {
	return r.db.WithContext(ctx).Save(red).Error
}

func (r *RedirectRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&content.Redirect{}, id).Error
}
