package handler

import (
	"errors"
	"net/http"
	"strings"

	"athlete-service/internal/auth"
	"athlete-service/internal/domain/user"
	apperrors "athlete-service/pkg/errors"
	"athlete-service/pkg/validator"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authService *auth.Service
}

func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Register creates a new identity and renders its Profile — the hash
// never appears in the response shape.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.TrimSpace(req.Username)

	if err := validator.Username(req.Username); err != nil {
		return respondMessage(c, http.StatusBadRequest, err.Error())
	}

	if err := validator.Email(req.Email); err != nil {
		return respondMessage(c, http.StatusBadRequest, err.Error())
	}

	if err := validator.Password(req.Password); err != nil {
		return respondMessage(c, http.StatusBadRequest, err.Error())
	}

	role := user.Role(req.Role)
	if role == "" {
		role = user.RoleUser
	}
	if !role.Valid() {
		return respondMessage(c, http.StatusBadRequest, msgInvalidRole)
	}

	created, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password, role)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEmailExists), errors.Is(err, apperrors.ErrUsernameExists):
			return respondMessage(c, http.StatusBadRequest, appMessage(err, msgRegisterFail))
		default:
			c.Logger().Errorf("register failed: %v", err)
			return respondMessage(c, http.StatusInternalServerError, msgRegisterFail)
		}
	}

	return c.JSON(http.StatusCreated, created.Profile())
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return respondMessage(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return respondMessage(c, http.StatusUnauthorized, msgInvalidCredentials)
		}
		c.Logger().Errorf("login failed: %v", err)
		return respondMessage(c, http.StatusInternalServerError, msgLoginFail)
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// appMessage extracts the client-safe message from an AppError,
// falling back when the error carries none.
func appMessage(err error, fallback string) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
