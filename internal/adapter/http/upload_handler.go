package http

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxUploadBytes = 10 << 20 // 10 MiB

var allowedUploadExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".pdf":  true,
}

type UploadHandler struct {
	dir string
}

func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

// Upload stores a multipart file under a random name and returns the
// public path. The original filename only contributes its extension.
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "A file field is required",
		})
	}
	if fh.Size > maxUploadBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Error:   "file_too_large",
			Message: "Uploads are limited to 10 MiB",
		})
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedUploadExts[ext] {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "unsupported_type",
			Message: "File type is not allowed",
		})
	}

	src, err := fh.Open()
	if err != nil {
		log.Printf("[UPLOAD] open failed: %v", err)
		return internalError(c)
	}
	defer src.Close()

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		log.Printf("[UPLOAD] mkdir failed: %v", err)
		return internalError(c)
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		log.Printf("[UPLOAD] create failed: %v", err)
		return internalError(c)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		log.Printf("[UPLOAD] write failed: %v", err)
		return internalError(c)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"url": fmt.Sprintf("/uploads/%s", name),
	})
}
