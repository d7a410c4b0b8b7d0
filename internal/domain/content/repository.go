package content

import "context"

type PageRepository interface {
	Create(ctx context.Context, p *Page) error
	GetByID(ctx context.Context, id uint64) (*Page, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	List(ctx context.Context, publishedOnly bool) ([]Page, error)
	Save(ctx context.Context, p *Page) error
	Delete(ctx context.Context, id uint64) error
}

type GalleryRepository interface {
	Create(ctx context.Context, g *GalleryItem) error
	GetByID(ctx context.Context, id uint64) (*GalleryItem, error)
	List(ctx context.Context, publishedOnly bool) ([]GalleryItem, error)
	Save(ctx context.Context, g *GalleryItem) error
	Delete(ctx context.Context, id uint64) error
}

type FAQRepository interface {
	Create(ctx context.Context, f *FAQ) error
	GetByID(ctx context.Context, id uint64) (*FAQ, error)
	List(ctx context.Context, publishedOnly bool) ([]FAQ, error)
	Save(ctx context.Context, f *FAQ) error
	Delete(ctx context.Context, id uint64) error
}

type RedirectRepository interface {
	Create(ctx context.Context, r *Redirect) error
	GetByID(ctx context.Context, id uint64) (*Redirect, error)
	GetBySourceSlug(ctx context.Context, slug string) (*Redirect, error)
	List(ctx context.Context) ([]Redirect, error)
	Save(ctx context.Context, r *Redirect) error
	Delete(ctx context.Context, id uint64) error
}
