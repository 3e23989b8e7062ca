package handlers

import (
	"crypto/md5"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// DocsHandler serves the embedded OpenAPI document
type DocsHandler struct {
	oas3JSON []byte
	oas3ETag string
}

// NewDocsHandler loads the OpenAPI document bundled into the binary
func NewDocsHandler() (*DocsHandler, error) {
	data, err := webFiles.ReadFile("web/openapi.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read openapi document: %w", err)
	}

	return &DocsHandler{
		oas3JSON: data,
		oas3ETag: generateETag(data),
	}, nil
}

// ServeOAS3JSON serves the OpenAPI specification
// @Summary OpenAPI document
// @Tags Documentation
// @Produce json
// @Success 200 {object} object "OpenAPI 3 document"
// @Success 304 "Not modified"
// @Router /docs/openapi.json [get]
func (h *DocsHandler) ServeOAS3JSON(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "public, max-age=300")

	if h.oas3ETag != "" {
		c.Response().Header().Set("ETag", h.oas3ETag)
		if match := c.Request().Header.Get("If-None-Match"); match != "" && match == h.oas3ETag {
			return c.NoContent(http.StatusNotModified)
		}
	}

	return c.Blob(http.StatusOK, "application/json; charset=utf-8", h.oas3JSON)
}

// generateETag creates an ETag hash for cache control
func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	hash := md5.Sum(data)
	return fmt.Sprintf("\"%x\"", hash)
}
