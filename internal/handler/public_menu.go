// This file defines the public menu handler: the endpoint a tenant's
// subdomain ultimately resolves to. It returns the café's menu document as
// JSON; not-found and storage faults are kept distinct so clients can render
// a definitive "no such café" state versus a retryable failure.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lazlle/menu-builder/internal/menu"
	"github.com/lazlle/menu-builder/internal/repository"
)

// PublicHandler serves unauthenticated tenant-facing endpoints.
type PublicHandler struct {
	Menu *menu.Builder
}

// GetMenu handles GET /:slug — after the host rewrite, that is the landing
// page of every tenant subdomain. The document is recomputed on every call;
// an empty menu is a valid 200, distinct from 404.
func (h *PublicHandler) GetMenu(c echo.Context) error {
	slug := c.Param("slug")
	doc, err := h.Menu.Build(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cafe not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, doc)
}
