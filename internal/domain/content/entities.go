package content

import (
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("content: not found")
	ErrDuplicateSlug  = errors.New("content: slug already exists")
	ErrRedirectLoop   = errors.New("content: redirect destination equals source")
	ErrMissingAltText = errors.New("content: published gallery item requires alt text")
)

// Page is a marketing page rendered by the public site.
type Page struct {
	ID              uint64    `gorm:"primaryKey;column:id" json:"id"`
	Slug            string    `gorm:"size:160;uniqueIndex:ux_pages_slug" json:"slug"`
	Title           string    `gorm:"size:200" json:"title"`
	Body            string    `gorm:"type:text" json:"body"`
	MetaDescription string    `gorm:"size:320" json:"meta_description"`
	Published       bool      `json:"published"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Page) TableName() string { return "pages" }

type GalleryItem struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Title     string    `gorm:"size:200" json:"title"`
	ImageURL  string    `gorm:"size:500" json:"image_url"`
	AltText   string    `gorm:"size:300" json:"alt_text"`
	Caption   string    `gorm:"size:500" json:"caption"`
	Published bool      `json:"published"`
	SortOrder int       `gorm:"index:idx_gallery_sort" json:"sort_order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (GalleryItem) TableName() string { return "gallery_items" }

type FAQ struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Question  string    `gorm:"size:500" json:"question"`
	Answer    string    `gorm:"type:text" json:"answer"`
	SortOrder int       `gorm:"index:idx_faqs_sort" json:"sort_order"`
	Published bool      `json:"published"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FAQ) TableName() string { return "faqs" }

// Redirect maps a retired path to its replacement. SourceSlug is
// unique and must never equal DestinationURL (no direct loops).
type Redirect struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"id"`
	SourceSlug     string    `gorm:"size:300;uniqueIndex:ux_redirects_source" json:"source_slug"`
	DestinationURL string    `gorm:"size:500" json:"destination_url"`
	Permanent      bool      `json:"permanent"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Redirect) TableName() string { return "redirects" }
