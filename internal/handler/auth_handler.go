package handler

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"dealerreview/internal/auth"
	"dealerreview/internal/errors"
	"dealerreview/internal/logger"
	"dealerreview/internal/service"
)

// AuthHandler handles the login, logout and registration endpoints.
type AuthHandler struct {
	authService   service.AuthService
	secureCookies bool
	log           logger.ILogger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, secureCookies bool, log logger.ILogger) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		secureCookies: secureCookies,
		log:           log,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	UserName  string `json:"userName" validate:"required"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Login godoc
// @Summary Log in and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} IdentityResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} IdentityResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := decodeJSONBody(c, &req); err != nil {
		return errorResponse(errors.ErrInvalidPayload)
	}

	result, err := h.authService.Login(c.Request().Context(), req.UserName, req.Password)
	if err != nil {
		if stderrors.Is(err, errors.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, IdentityResponse{
				UserName: req.UserName,
				Status:   StatusInvalidCredentials,
			})
		}
		h.log.Error("login failed", logger.String("username", req.UserName), logger.Error(err))
		return errorResponse(err)
	}

	h.setSessionCookie(c, result.Token, result.ExpiresAt)
	return c.JSON(http.StatusOK, IdentityResponse{
		UserName: result.User.Username,
		Status:   StatusAuthenticated,
	})
}

// Logout godoc
// @Summary End the current session
// @Tags auth
// @Produce json
// @Success 200 {object} IdentityResponse
// @Router /logout [get]
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if session := CurrentSession(c); session != nil {
		if err := h.authService.Logout(c.Request().Context(), session.ID); err != nil {
			h.log.Warning("logout: session not removed", logger.String("session_id", session.ID), logger.Error(err))
		}
	}

	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, IdentityResponse{
		UserName: "",
		Status:   StatusLoggedOut,
	})
}

// Register godoc
// @Summary Register a new user and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} IdentityResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := decodeJSONBody(c, &req); err != nil {
		return errorResponse(errors.ErrInvalidPayload)
	}

	if err := c.Validate(&req); err != nil {
		return errorResponse(errors.ErrCredentialsRequired)
	}

	result, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Username:  req.UserName,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		if !stderrors.Is(err, errors.ErrUserAlreadyExists) && !stderrors.Is(err, errors.ErrCredentialsRequired) {
			h.log.Error("registration failed", logger.String("username", req.UserName), logger.Error(err))
		}
		return errorResponse(err)
	}

	h.setSessionCookie(c, result.Token, result.ExpiresAt)
	return c.JSON(http.StatusCreated, IdentityResponse{
		UserName: result.User.Username,
		Status:   StatusAuthenticated,
	})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
