package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"ashgrove-backend/internal/domain/content"
)

// Usecase covers the editorial surface: pages, gallery items, FAQs and
// redirects. All reads used by the public site go through here too so
// the published filter lives in one place.
type Usecase struct {
	pages     content.PageRepository
	gallery   content.GalleryRepository
	faqs      content.FAQRepository
	redirects content.RedirectRepository
}

func NewUsecase(pages content.PageRepository, gallery content.GalleryRepository, faqs content.FAQRepository, redirects content.RedirectRepository) *Usecase {
	return &Usecase{pages: pages, gallery: gallery, faqs: faqs, redirects: redirects}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return content.ErrNotFound
	}
	return err
}

// Pages

func (u *Usecase) CreatePage(ctx context.Context, p *content.Page) error {
	p.Slug = normalizeSlug(p.Slug)
	if _, err := u.pages.GetBySlug(ctx, p.Slug); err == nil {
		return content.ErrDuplicateSlug
	} else if !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, content.ErrNotFound) {
		return fmt.Errorf("failed to check slug: %w", err)
	}
	return u.pages.Create(ctx, p)
}

func (u *Usecase) GetPage(ctx context.Context, id uint64) (*content.Page, error) {
	p, err := u.pages.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

// GetPublishedPage backs the public site; drafts look like missing
// pages to anonymous readers.
func (u *Usecase) GetPublishedPage(ctx context.Context, slug string) (*content.Page, error) {
	p, err := u.pages.GetBySlug(ctx, normalizeSlug(slug))
	if err != nil {
		return nil, notFound(err)
	}
	if !p.Published {
		return nil, content.ErrNotFound
	}
	return p, nil
}

func (u *Usecase) ListPages(ctx context.Context, publishedOnly bool) ([]content.Page, error) {
	return u.pages.List(ctx, publishedOnly)
}

func (u *Usecase) UpdatePage(ctx context.Context, id uint64, upd *content.Page) (*content.Page, error) {
	p, err := u.pages.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	slug := normalizeSlug(upd.Slug)
	if slug != p.Slug {
		if existing, err := u.pages.GetBySlug(ctx, slug); err == nil && existing.ID != id {
			return nil, content.ErrDuplicateSlug
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, content.ErrNotFound) {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
	}
	p.Slug = slug
	p.Title = upd.Title
	p.Body = upd.Body
	p.MetaDescription = upd.MetaDescription
	p.Published = upd.Published
	if err := u.pages.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) DeletePage(ctx context.Context, id uint64) error {
	if _, err := u.pages.GetByID(ctx, id); err != nil {
		return notFound(err)
	}
	return u.pages.Delete(ctx, id)
}

// Gallery

func (u *Usecase) CreateGalleryItem(ctx context.Context, g *content.GalleryItem) error {
	if err := checkAltText(g); err != nil {
		return err
	}
	return u.gallery.Create(ctx, g)
}

func (u *Usecase) GetGalleryItem(ctx context.Context, id uint64) (*content.GalleryItem, error) {
	g, err := u.gallery.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return g, nil
}

func (u *Usecase) ListGallery(ctx context.Context, publishedOnly bool) ([]content.GalleryItem, error) {
	return u.gallery.List(ctx, publishedOnly)
}

func (u *Usecase) UpdateGalleryItem(ctx context.Context, id uint64, upd *content.GalleryItem) (*content.GalleryItem, error) {
	g, err := u.gallery.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	g.Title = upd.Title
	g.ImageURL = upd.ImageURL
	g.AltText = upd.AltText
	g.Caption = upd.Caption
	g.Published = upd.Published
	g.SortOrder = upd.SortOrder
	if err := checkAltText(g); err != nil {
		return nil, err
	}
	if err := u.gallery.Save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (u *Usecase) DeleteGalleryItem(ctx context.Context, id uint64) error {
	if _, err := u.gallery.GetByID(ctx, id); err != nil {
		return notFound(err)
	}
	return u.gallery.Delete(ctx, id)
}

// Published images must carry alt text for screen readers.
func checkAltText(g *content.GalleryItem) error {
	if g.Published && strings.TrimSpace(g.AltText) == "" {
		return content.ErrMissingAltText
	}
	return nil
}

// FAQs

func (u *Usecase) CreateFAQ(ctx context.Context, f *content.FAQ) error {
	return u.faqs.Create(ctx, f)
}

func (u *Usecase) GetFAQ(ctx context.Context, id uint64) (*content.FAQ, error) {
	f, err := u.faqs.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return f, nil
}

func (u *Usecase) ListFAQs(ctx context.Context, publishedOnly bool) ([]content.FAQ, error) {
	return u.faqs.List(ctx, publishedOnly)
}

func (u *Usecase) UpdateFAQ(ctx context.Context, id uint64, upd *content.FAQ) (*content.FAQ, error) {
	f, err := u.faqs.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	f.Question = upd.Question
	f.Answer = upd.Answer
	f.SortOrder = upd.SortOrder
	f.Published = upd.Published
	if err := u.faqs.Save(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (u *Usecase) DeleteFAQ(ctx context.Context, id uint64) error {
	if _, err := u.faqs.GetByID(ctx, id); err != nil {
		return notFound(err)
	}
	return u.faqs.Delete(ctx, id)
}

// Redirects

func (u *Usecase) CreateRedirect(ctx context.Context, r *content.Redirect) error {
	r.SourceSlug = normalizeSlug(r.SourceSlug)
	if err := checkRedirectLoop(r); err != nil {
		return err
	}
	if _, err := u.redirects.GetBySourceSlug(ctx, r.SourceSlug); err == nil {
		return content.ErrDuplicateSlug
	} else if !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, content.ErrNotFound) {
		return fmt.Errorf("failed to check source slug: %w", err)
	}
	return u.redirects.Create(ctx, r)
}

func (u *Usecase) GetRedirect(ctx context.Context, id uint64) (*content.Redirect, error) {
	r, err := u.redirects.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return r, nil
}

func (u *Usecase) ListRedirects(ctx context.Context) ([]content.Redirect, error) {
	return u.redirects.List(ctx)
}

func (u *Usecase) UpdateRedirect(ctx context.Context, id uint64, upd *content.Redirect) (*content.Redirect, error) {
	r, err := u.redirects.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	slug := normalizeSlug(upd.SourceSlug)
	if slug != r.SourceSlug {
		if existing, err := u.redirects.GetBySourceSlug(ctx, slug); err == nil && existing.ID != id {
			return nil, content.ErrDuplicateSlug
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, content.ErrNotFound) {
			return nil, fmt.Errorf("failed to check source slug: %w", err)
		}
	}
	r.SourceSlug = slug
	r.DestinationURL = upd.DestinationURL
	r.Permanent = upd.Permanent
	if err := checkRedirectLoop(r); err != nil {
		return nil, err
	}
	if err := u.redirects.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (u *Usecase) DeleteRedirect(ctx context.Context, id uint64) error {
	if _, err := u.redirects.GetByID(ctx, id); err != nil {
		return notFound(err)
	}
	return u.redirects.Delete(ctx, id)
}

// checkRedirectLoop rejects a redirect whose destination is its own
// source slug. Absolute URLs are off-site and cannot loop.
func checkRedirectLoop(r *content.Redirect) error {
	dest := strings.TrimSpace(r.DestinationURL)
	if strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://") {
		return nil
	}
	if normalizeSlug(dest) == r.SourceSlug {
		return content.ErrRedirectLoop
	}
	return nil
}

func normalizeSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Trim(s, "/")
}
