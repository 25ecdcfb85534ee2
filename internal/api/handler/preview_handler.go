package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/appforge/appforge-api/internal/core/ports"
	"github.com/appforge/appforge-api/internal/preview"
)

// PreviewHandler serves a project's generated code as a standalone HTML
// document suitable for embedding in a sandboxed iframe.
type PreviewHandler struct {
	service ports.ProjectService
}

func NewPreviewHandler(service ports.ProjectService) *PreviewHandler {
	return &PreviewHandler{service: service}
}

// Get handles GET /projects/:id/preview.
//
// @Summary      Render a live preview of a project's generated code
// @Tags         projects
// @Produce      html
// @Security     CookieAuth
// @Param        id  path  string  true  "Project id"
// @Success      200  {string}  string  "HTML document"
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /projects/{id}/preview [get]
func (h *PreviewHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	project, err := h.service.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	// The document executes model-generated code; confine it to same-origin
	// frames and keep caches out of the loop so edits show up immediately.
	c.Response().Header().Set("Content-Security-Policy", "frame-ancestors 'self'")
	c.Response().Header().Set("Cache-Control", "no-store")

	return c.HTML(http.StatusOK, preview.Render(project.GeneratedCode))
}
