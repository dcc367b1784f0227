// This file defines the admin-surface handlers: creating a café with its
// full menu in one submission and the form's live slug availability check.
// The admin surface carries no authentication; it is reachable only under
// the /admin prefix, which the tenant resolver never touches.
package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lazlle/menu-builder/internal/repository"
	"github.com/lazlle/menu-builder/internal/service"
	"github.com/lazlle/menu-builder/internal/utils"
)

// AdminHandler aggregates the services the admin endpoints need.
type AdminHandler struct {
	Cafes *service.CafeService
}

// createResponse is returned on a successful creation: everything the admin
// screen shows on its success state.
type createResponse struct {
	CafeID uint64 `json:"cafe_id"`
	Slug   string `json:"slug"`
	URL    string `json:"url"`
	QR     string `json:"qr"` // base64 PNG data URL for the printable code
}

// CreateCafe handles POST /admin/cafes. It accepts the whole menu form as
// JSON, validates and persists it atomically, and answers with the public
// URL plus its QR code. Validation problems map to 400, a name collision to
// 409, storage faults to 500 (safe to retry).
func (h *AdminHandler) CreateCafe(c echo.Context) error {
	var in service.CreateMenuInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	cafe, url, err := h.Cafes.Create(c.Request().Context(), in)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Message, "field": verr.Field})
		case errors.Is(err, repository.ErrDuplicateSlug):
			return c.JSON(http.StatusConflict, echo.Map{"error": "a cafe with this name already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create cafe"})
		}
	}

	qr, err := utils.QRDataURL(url)
	if err != nil {
		// The menu is live; a QR hiccup should not report the creation as
		// failed. The admin can re-request the code.
		log.Printf("qr: encode %s failed: %v", url, err)
		qr = ""
	}

	return c.JSON(http.StatusCreated, createResponse{
		CafeID: cafe.ID,
		Slug:   cafe.Slug,
		URL:    url,
		QR:     qr,
	})
}

// CheckSlug handles GET /admin/slug-check?name=... and reports the slug a
// café name would receive together with its availability, so the form can
// warn about duplicates before submission.
func (h *AdminHandler) CheckSlug(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("name"))
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	slug, available, err := h.Cafes.CheckSlug(c.Request().Context(), name)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"slug": slug, "available": available})
}
