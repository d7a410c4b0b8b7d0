package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"ashgrove-backend/internal/domain/content"
	contentuc "ashgrove-backend/internal/usecase/content"
)

type PageRequest struct {
	Slug            string `json:"slug" validate:"required,slug,max=200"`
	Title           string `json:"title" validate:"required,max=200"`
	Body            string `json:"body"`
	MetaDescription string `json:"metaDescription" validate:"max=300"`
	Published       bool   `json:"published"`
}

type GalleryItemRequest struct {
	Title     string `json:"title" validate:"required,max=200"`
	ImageURL  string `json:"imageUrl" validate:"required,max=500"`
	AltText   string `json:"altText" validate:"max=300"`
	Caption   string `json:"caption" validate:"max=500"`
	Published bool   `json:"published"`
	SortOrder int    `json:"sortOrder"`
}

type FAQRequest struct {
	Question  string `json:"question" validate:"required,max=500"`
	Answer    string `json:"answer" validate:"required"`
	SortOrder int    `json:"sortOrder"`
	Published bool   `json:"published"`
}

type RedirectRequest struct {
	SourceSlug     string `json:"sourceSlug" validate:"required,max=200"`
	DestinationURL string `json:"destinationUrl" validate:"required,max=500"`
	Permanent      bool   `json:"permanent"`
}

type ContentHandler struct {
	uc *contentuc.Usecase
}

func NewContentHandler(uc *contentuc.Usecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// contentError maps domain errors onto status codes shared by all four
// content types.
func contentError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, content.ErrNotFound):
		return notFoundJSON(c)
	case errors.Is(err, content.ErrDuplicateSlug):
		return c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "duplicate_slug",
			Message: "A record with this slug already exists",
		})
	case errors.Is(err, content.ErrRedirectLoop):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "redirect_loop",
			Message: "A redirect cannot point at its own source",
		})
	case errors.Is(err, content.ErrMissingAltText):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_alt_text",
			Message: "Published gallery items must have alt text",
		})
	default:
		log.Printf("[CONTENT] request failed: %v", err)
		return internalError(c)
	}
}

// Public reads

func (h *ContentHandler) GetPublishedPage(c echo.Context) error {
	p, err := h.uc.GetPublishedPage(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ContentHandler) ListPublishedGallery(c echo.Context) error {
	items, err := h.uc.ListGallery(c.Request().Context(), true)
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

func (h *ContentHandler) ListPublishedFAQs(c echo.Context) error {
	faqs, err := h.uc.ListFAQs(c.Request().Context(), true)
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"faqs": faqs})
}

func (h *ContentHandler) ListRedirects(c echo.Context) error {
	redirects, err := h.uc.ListRedirects(c.Request().Context())
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"redirects": redirects})
}

// Pages (admin)

func (h *ContentHandler) ListPages(c echo.Context) error {
	pages, err := h.uc.ListPages(c.Request().Context(), false)
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"pages": pages})
}

func (h *ContentHandler) CreatePage(c echo.Context) error {
	req := new(PageRequest)
	if ok, err := bindAndValidate(c, req); !ok {
		return err
	}
	p := &content.Page{
		Slug:            req.Slug,
		Title:           req.Title,
		Body:            req.Body,
		MetaDescription: req.MetaDescription,
		Published:       req.Published,
	}
	if err := h.uc.CreatePage(c.Request().Context(), p); err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ContentHandler) GetPage(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	p, err := h.uc.GetPage(c.Request().Context(), id)
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ContentHandler) UpdatePage(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	req := new(PageRequest)
	if ok, err := bindAndValidate(c, req); !ok {
		return err
	}
	p, err := h.uc.UpdatePage(c.Request().Context(), id, &content.Page{
		Slug:            req.Slug,
		Title:           req.Title,
		Body:            req.Body,
		MetaDescription: req.MetaDescription,
		Published:       req.Published,
	})
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ContentHandler) DeletePage(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.DeletePage(c.Request().Context(), id); err != nil {
		return contentError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Gallery (admin)

func (h *ContentHandler) ListGallery(c echo.Context) error {
	items, err := h.uc.ListGallery(c.Request().Context(), false)
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

func (h *ContentHandler) CreateGalleryItem(c echo.Context) error {
	req := new(GalleryItemRequest)
	if ok, err := bindAndValidate(c, req); !ok {
		return err
	}
	g := &content.GalleryItem{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		AltText:   req.AltText,
		Caption:   req.Caption,
		Published: req.Published,
		SortOrder: req.SortOrder,
	}
	if err := h.uc.CreateGalleryItem(c.Request().Context(), g); err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *ContentHandler) GetGalleryItem(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	g, err := h.uc.GetGalleryItem(c.Request().Context(), id)
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

func (h *ContentHandler) UpdateGalleryItem(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	req := new(GalleryItemRequest)
	if ok, err := bindAndValidate(c, req); !ok {
		return err
	}
	g, err := h.uc.UpdateGalleryItem(c.Request().Context(), id, &content.GalleryItem{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		AltText:   req.AltText,
		Caption:   req.Caption,
		Published: req.Published,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

func (h *ContentHandler) DeleteGalleryItem(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.DeleteGalleryItem(c.Request().Context(), id); err != nil {
		return contentError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// FAQs (admin)

func (h *ContentHandler) ListFAQs(c echo.Context) error {
	faqs, err := h.uc.ListFAQs(c.Request().Context(), false)
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"faqs": faqs})
}

func (h *ContentHandler) CreateFAQ(c echo.Context) error {
	req := new(FAQRequest)
	if ok, err := bindAndValidate(c, req); !ok {
		return err
	}
	f := &content.FAQ{
		Question:  req.Question,
		Answer:    req.Answer,
		SortOrder: req.SortOrder,
		Published: req.Published,
	}
	if err := h.uc.CreateFAQ(c.Request().Context(), f); err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *ContentHandler) GetFAQ(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	f, err := h.uc.GetFAQ(c.Request().Context(), id)
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *ContentHandler) UpdateFAQ(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	req := new(FAQRequest)
	if ok, err := bindAndValidate(c, req); !ok {
		return err
	}
	f, err := h.uc.UpdateFAQ(c.Request().Context(), id, &content.FAQ{
		Question:  req.Question,
		Answer:    req.Answer,
		SortOrder: req.SortOrder,
		Published: req.Published,
	})
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *ContentHandler) DeleteFAQ(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.DeleteFAQ(c.Request().Context(), id); err != nil {
		return contentError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Redirects (admin)

func (h *ContentHandler) CreateRedirect(c echo.Context) error {
	req := new(RedirectRequest)
	if ok, err := bindAndValidate(c, req); !ok {
		return err
	}
	r := &content.Redirect{
		SourceSlug:     req.SourceSlug,
		DestinationURL: req.DestinationURL,
		Permanent:      req.Permanent,
	}
	if err := h.uc.CreateRedirect(c.Request().Context(), r); err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *ContentHandler) GetRedirect(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	r, err := h.uc.GetRedirect(c.Request().Context(), id)
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *ContentHandler) UpdateRedirect(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	req := new(RedirectRequest)
	if ok, err := bindAndValidate(c, req); !ok {
		return err
	}
	r, err := h.uc.UpdateRedirect(c.Request().Context(), id, &content.Redirect{
		SourceSlug:     req.SourceSlug,
		DestinationURL: req.DestinationURL,
		Permanent:      req.Permanent,
	})
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *ContentHandler) DeleteRedirect(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.DeleteRedirect(c.Request().Context(), id); err != nil {
		return contentError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
