package api

import (
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/GuimaraesZ/workshop/internal/errs"
)

type uploadResponse struct {
	ImageUrl string `json:"image_url"`
	Message  string `json:"message"`
}

// saveUploadedImage stores a multipart image under uploads/<subdir>/ with a
// random name and returns the public URL path.
func (h *Handlers) saveUploadedImage(file *multipart.FileHeader, subdir string) (string, error) {
	ext := filepath.Ext(file.Filename)
	if file.Filename == "" || ext == "" {
		return "", errs.Invalid("uploaded file must have a name with an extension")
	}

	dir := h.cfg.UploadPath(subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + strings.ToLower(ext)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return path.Join("/uploads", subdir, name), nil
}

func (h *Handlers) uploadProfileImage(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	// Resolve the user before touching the filesystem.
	if _, err := h.users.FindByID(c.Request().Context(), id); err != nil {
		return err
	}
	file, err := c.FormFile("file")
	if err != nil {
		return errs.Invalid("missing file field")
	}
	imageUrl, err := h.saveUploadedImage(file, "users")
	if err != nil {
		return err
	}
	if _, err := h.users.SetProfileImage(c.Request().Context(), id, imageUrl); err != nil {
		return err
	}
	zap.L().Info("profile image uploaded", zap.Int64("user_id", id), zap.String("path", imageUrl))
	return ok(c, uploadResponse{ImageUrl: imageUrl, Message: "upload successful"})
}

func (h *Handlers) uploadProductImage(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.products.FindByID(c.Request().Context(), id); err != nil {
		return err
	}
	file, err := c.FormFile("file")
	if err != nil {
		return errs.Invalid("missing file field")
	}
	imageUrl, err := h.saveUploadedImage(file, "products")
	if err != nil {
		return err
	}
	if _, err := h.products.SetImage(c.Request().Context(), id, imageUrl); err != nil {
		return err
	}
	zap.L().Info("product image uploaded", zap.Int64("product_id", id), zap.String("path", imageUrl))
	return ok(c, uploadResponse{ImageUrl: imageUrl, Message: "upload successful"})
}
