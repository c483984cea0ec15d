package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// allowedImageExts are the file extensions accepted by the image upload
// endpoints.
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadHandler stores catalog images on disk and returns their public
// URL. Filenames are random so an upload can never clobber another.
type UploadHandler struct {
	Dir     string // root upload directory
	BaseURL string // public base URL prefixed to stored paths
}

// NewUploadHandler returns an UploadHandler writing under dir and
// serving from baseURL.
func NewUploadHandler(dir, baseURL string) *UploadHandler {
	return &UploadHandler{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

// UploadMovieImage handles POST /api/movies/image.
func (h *UploadHandler) UploadMovieImage(c echo.Context) error {
	return h.save(c, "movies")
}

// UploadProductImage handles POST /api/products/image.
func (h *UploadHandler) UploadProductImage(c echo.Context) error {
	return h.save(c, "products")
}

// save stores the "image" form file under Dir/subdir with a generated
// name and responds with {"url": ...}.
func (h *UploadHandler) save(c echo.Context, subdir string) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "image file is required"})
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unsupported image type"})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "read upload failed"})
	}
	defer src.Close()

	dir := filepath.Join(h.Dir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store upload failed"})
	}
	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store upload failed"})
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store upload failed"})
	}

	url := fmt.Sprintf("%s/uploads/%s/%s", h.BaseURL, subdir, name)
	return c.JSON(http.StatusCreated, echo.Map{"url": url})
}
