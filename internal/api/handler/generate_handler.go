package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/appforge/appforge-api/internal/api/metrics"
	"github.com/appforge/appforge-api/internal/core/domain"
	"github.com/appforge/appforge-api/internal/core/ports"
)

// GenerateHandler handles code generation requests. Failures are reported
// in the {success:false, error} envelope the web client expects, so error
// mapping is local rather than delegated to the central handler.
type GenerateHandler struct {
	service ports.GenerationService
}

func NewGenerateHandler(service ports.GenerationService) *GenerateHandler {
	return &GenerateHandler{service: service}
}

// Generate handles POST /generate — runs the prompt through the model,
// post-processes the result, and persists it as a project.
//
// @Summary      Generate application code from a prompt
// @Tags         generate
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      generateRequest  true  "Prompt and optional target project"
// @Success      200   {object}  generateResponse
// @Failure      400   {object}  authErrorResponse
// @Failure      401   {object}  authErrorResponse
// @Failure      429   {object}  authErrorResponse
// @Failure      500   {object}  authErrorResponse
// @Failure      503   {object}  authErrorResponse
// @Router       /generate [post]
func (h *GenerateHandler) Generate(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authErrorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authErrorResponse{Error: err.Error()})
	}

	start := time.Now()
	result, err := h.service.Generate(c.Request().Context(), ports.GenerateInput{
		UserID:    userID,
		Prompt:    req.Prompt,
		ProjectID: req.ProjectID,
	})
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		status, msg, outcome := generateError(err)
		metrics.GenerationsTotal.WithLabelValues(outcome).Inc()
		return c.JSON(status, authErrorResponse{Error: msg})
	}

	metrics.GenerationsTotal.WithLabelValues("completed").Inc()
	return c.JSON(http.StatusOK, generateResponse{
		Success:   true,
		Code:      result.Code,
		ProjectID: result.ProjectID,
	})
}

func generateError(err error) (status int, msg, outcome string) {
	switch {
	case errors.Is(err, domain.ErrTooManyRequests),
		errors.Is(err, domain.ErrGeneratorRateLimited):
		return http.StatusTooManyRequests, "rate limit exceeded, please try again later", "rate_limited"
	case errors.Is(err, domain.ErrGeneratorNotConfigured):
		return http.StatusServiceUnavailable, "generation service is not available", "error"
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, "project not found", "error"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden", "error"
	default:
		return http.StatusInternalServerError, "code generation failed", "error"
	}
}
