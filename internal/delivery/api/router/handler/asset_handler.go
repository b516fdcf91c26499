package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"matjip/internal/delivery/api/response"
	"matjip/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AssetHandler serves stored listing images.
type AssetHandler struct {
	store  service.AssetStore
	logger *slog.Logger
}

// NewAssetHandler is the constructor for AssetHandler
func NewAssetHandler(store service.AssetStore, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{
		store:  store,
		logger: logger,
	}
}

// GetAsset streams the object stored under the wildcard path.
func (h *AssetHandler) GetAsset(c echo.Context) error {
	key := strings.TrimPrefix(c.Param("*"), "/")
	if key == "" || strings.Contains(key, "..") {
		return response.NotFound(c, "ASSET_NOT_FOUND", "Asset not found")
	}

	object, err := h.store.Open(c.Request().Context(), key)
	if err != nil {
		if errors.Is(err, service.ErrAssetNotFound) {
			return response.NotFound(c, "ASSET_NOT_FOUND", "Asset not found")
		}

		return err
	}
	defer object.Body.Close()

	header := c.Response().Header()
	if object.CacheControl != "" {
		header.Set("Cache-Control", object.CacheControl)
	}
	if object.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(object.Size, 10))
	}
	if !object.ModTime.IsZero() {
		header.Set(echo.HeaderLastModified, object.ModTime.UTC().Format(http.TimeFormat))
	}

	contentType := object.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Stream(http.StatusOK, contentType, object.Body)
}
