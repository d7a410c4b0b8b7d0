package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"ashgrove-backend/internal/domain/enquiry"
	"ashgrove-backend/internal/usecase/submission"
)

type AdminSubmissionsHandler struct {
	uc *submission.Usecase
}

func NewAdminSubmissionsHandler(uc *submission.Usecase) *AdminSubmissionsHandler {
	return &AdminSubmissionsHandler{uc: uc}
}

func submissionFilter(c echo.Context) (enquiry.SubmissionFilter, error) {
	var f enquiry.SubmissionFilter
	if raw := c.QueryParam("since"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return f, fmt.Errorf("since must be RFC 3339")
		}
		f.Since = &ts
	}
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return f, fmt.Errorf("limit must be a non-negative integer")
		}
		f.Limit = n
	}
	if raw := c.QueryParam("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return f, fmt.Errorf("offset must be a non-negative integer")
		}
		f.Offset = n
	}
	f.SourcePageSlug = c.QueryParam("source")
	return f, nil
}

func (h *AdminSubmissionsHandler) List(c echo.Context) error {
	f, err := submissionFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
	}
	rows, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		log.Printf("[ADMIN] list submissions failed: %v", err)
		return internalError(c)
	}
	return c.JSON(http.StatusOK, map[string]any{"submissions": rows, "count": len(rows)})
}

func (h *AdminSubmissionsHandler) Get(c echo.Context) error {
	sub, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, enquiry.ErrNotFound) {
			return notFoundJSON(c)
		}
		log.Printf("[ADMIN] get submission failed: %v", err)
		return internalError(c)
	}
	return c.JSON(http.StatusOK, sub)
}

// Export streams the filtered submissions as a CSV download.
func (h *AdminSubmissionsHandler) Export(c echo.Context) error {
	f, err := submissionFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
	}

	filename := fmt.Sprintf("submissions-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Response().WriteHeader(http.StatusOK)

	if err := h.uc.WriteCSV(c.Request().Context(), f, c.Response()); err != nil {
		// Headers are already out; all we can do is log.
		log.Printf("[ADMIN] csv export failed: %v", err)
	}
	return nil
}
