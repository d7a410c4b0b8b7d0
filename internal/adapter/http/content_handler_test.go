package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ashgrove-backend/internal/domain/content"
	"ashgrove-backend/internal/testutil/contentmock"
	contentuc "ashgrove-backend/internal/usecase/content"
)

func contentRequest(method, path, body string, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	return c, rec
}

func contentHandler(pages *contentmock.PageRepo, gallery *contentmock.GalleryRepo, redirects *contentmock.RedirectRepo) *ContentHandler {
	if pages == nil {
		pages = &contentmock.PageRepo{}
	}
	if gallery == nil {
		gallery = &contentmock.GalleryRepo{}
	}
	if redirects == nil {
		redirects = &contentmock.RedirectRepo{}
	}
	return NewContentHandler(contentuc.NewUsecase(pages, gallery, &contentmock.FAQRepo{}, redirects))
}

func TestCreatePage_Conflict(t *testing.T) {
	pages := &contentmock.PageRepo{
		GetBySlugFn: func(ctx context.Context, slug string) (*content.Page, error) {
			return &content.Page{ID: 1, Slug: slug}, nil
		},
	}
	h := contentHandler(pages, nil, nil)

	c, rec := contentRequest(nethttp.MethodPost, "/admin/pages",
		`{"slug":"about","title":"About"}`, nil)
	_ = h.CreatePage(c)
	if rec.Code != nethttp.StatusConflict {
		t.Fatalf("code = %d, want 409", rec.Code)
	}
	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error != "duplicate_slug" {
		t.Fatalf("error = %q", resp.Error)
	}
}

func TestCreatePage_BadSlug(t *testing.T) {
	h := contentHandler(nil, nil, nil)

	c, rec := contentRequest(nethttp.MethodPost, "/admin/pages",
		`{"slug":"About Us!","title":"About"}`, nil)
	_ = h.CreatePage(c)
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
}

func TestGetPublishedPage_DraftIs404(t *testing.T) {
	pages := &contentmock.PageRepo{
		GetBySlugFn: func(ctx context.Context, slug string) (*content.Page, error) {
			return &content.Page{ID: 1, Slug: slug, Published: false}, nil
		},
	}
	h := contentHandler(pages, nil, nil)

	c, rec := contentRequest(nethttp.MethodGet, "/pages/about", "", map[string]string{"slug": "about"})
	_ = h.GetPublishedPage(c)
	if rec.Code != nethttp.StatusNotFound {
		t.Fatalf("code = %d, want 404", rec.Code)
	}
}

func TestCreateGalleryItem_MissingAltText(t *testing.T) {
	h := contentHandler(nil, &contentmock.GalleryRepo{}, nil)

	c, rec := contentRequest(nethttp.MethodPost, "/admin/gallery",
		`{"title":"Showhouse","imageUrl":"/uploads/a.jpg","published":true}`, nil)
	_ = h.CreateGalleryItem(c)
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error != "missing_alt_text" {
		t.Fatalf("error = %q", resp.Error)
	}
}

func TestCreateRedirect_Loop(t *testing.T) {
	h := contentHandler(nil, nil, &contentmock.RedirectRepo{})

	c, rec := contentRequest(nethttp.MethodPost, "/admin/redirects",
		`{"sourceSlug":"old-gallery","destinationUrl":"/old-gallery"}`, nil)
	_ = h.CreateRedirect(c)
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error != "redirect_loop" {
		t.Fatalf("error = %q", resp.Error)
	}
}

func TestUpdatePage_NotFound(t *testing.T) {
	pages := &contentmock.PageRepo{
		GetByIDFn: func(ctx context.Context, id uint64) (*content.Page, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := contentHandler(pages, nil, nil)

	c, rec := contentRequest(nethttp.MethodPut, "/admin/pages/42",
		`{"slug":"about","title":"About"}`, map[string]string{"id": "42"})
	_ = h.UpdatePage(c)
	if rec.Code != nethttp.StatusNotFound {
		t.Fatalf("code = %d, want 404", rec.Code)
	}
}

func TestGetGalleryItem_Detail(t *testing.T) {
	gallery := &contentmock.GalleryRepo{
		GetByIDFn: func(ctx context.Context, id uint64) (*content.GalleryItem, error) {
			if id == 3 {
				return &content.GalleryItem{ID: 3, Title: "Showhouse", AltText: "front"}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := contentHandler(nil, gallery, nil)

	c, rec := contentRequest(nethttp.MethodGet, "/admin/gallery/3", "", map[string]string{"id": "3"})
	_ = h.GetGalleryItem(c)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	var got content.GalleryItem
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got.ID != 3 || got.Title != "Showhouse" {
		t.Fatalf("item = %+v", got)
	}

	c, rec = contentRequest(nethttp.MethodGet, "/admin/gallery/9", "", map[string]string{"id": "9"})
	_ = h.GetGalleryItem(c)
	if rec.Code != nethttp.StatusNotFound {
		t.Fatalf("missing item code = %d, want 404", rec.Code)
	}
}

func TestGetRedirect_Detail(t *testing.T) {
	redirects := &contentmock.RedirectRepo{
		GetByIDFn: func(ctx context.Context, id uint64) (*content.Redirect, error) {
			return &content.Redirect{ID: id, SourceSlug: "old-gallery", DestinationURL: "/gallery"}, nil
		},
	}
	h := contentHandler(nil, nil, redirects)

	c, rec := contentRequest(nethttp.MethodGet, "/admin/redirects/5", "", map[string]string{"id": "5"})
	_ = h.GetRedirect(c)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
}

func TestDeletePage_BadID(t *testing.T) {
	h := contentHandler(nil, nil, nil)

	c, rec := contentRequest(nethttp.MethodDelete, "/admin/pages/abc", "", map[string]string{"id": "abc"})
	_ = h.DeletePage(c)
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
}
