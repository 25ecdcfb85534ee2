package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/appforge/appforge-api/internal/api/metrics"
	"github.com/appforge/appforge-api/internal/api/middleware"
	"github.com/appforge/appforge-api/internal/core/domain"
	"github.com/appforge/appforge-api/internal/core/ports"
)

// cookieMaxAge matches the token TTL issued by the auth service.
const cookieMaxAge = 7 * 24 * time.Hour

// AuthHandler handles registration and login. secureCookies controls the
// Secure attribute of the auth cookie and must be true in production.
type AuthHandler struct {
	authService   ports.AuthService
	secureCookies bool
}

func NewAuthHandler(authService ports.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookies: secureCookies}
}

// Register creates a new user account and signs the caller in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  authErrorResponse
// @Failure      409   {object}  authErrorResponse
// @Failure      500   {object}  authErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authErrorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authErrorResponse{Error: err.Error()})
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "failure").Inc()
		status := http.StatusInternalServerError
		msg := "registration failed"
		if errors.Is(err, domain.ErrUserExists) {
			status = http.StatusConflict
			msg = "user with this email already exists"
		}
		return c.JSON(status, authErrorResponse{Error: msg})
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	h.setAuthCookie(c, token)

	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		User:    toUserResponse(user),
		Token:   token,
	})
}

// Login authenticates a user and returns an identity token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  authErrorResponse
// @Failure      401   {object}  authErrorResponse
// @Failure      500   {object}  authErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authErrorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authErrorResponse{Error: err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "failure").Inc()
		// Unknown email and wrong password answer identically so the
		// endpoint cannot be used to probe for accounts.
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, authErrorResponse{Error: "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, authErrorResponse{Error: "login failed"})
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	h.setAuthCookie(c, token)

	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		User:    toUserResponse(user),
		Token:   token,
	})
}

// Logout clears the auth cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func (h *AuthHandler) setAuthCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}
