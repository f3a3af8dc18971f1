package http

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "athlete-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

// CustomHTTPErrorHandler handles errors that escape handlers and
// middleware. It maps sentinel errors to HTTP status codes and never
// exposes internal error detail to clients.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	} else {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			code = http.StatusNotFound
			message = "resource not found"
		case errors.Is(err, apperrors.ErrUnauthorized):
			code = http.StatusUnauthorized
			message = "unauthorized"
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			code = http.StatusUnauthorized
			message = "invalid credentials"
		case errors.Is(err, apperrors.ErrTokenExpired):
			code = http.StatusForbidden
			message = "token expired"
		case errors.Is(err, apperrors.ErrTokenInvalid):
			code = http.StatusForbidden
			message = "invalid token"
		case errors.Is(err, apperrors.ErrForbidden):
			code = http.StatusForbidden
			message = "forbidden"
		case errors.Is(err, apperrors.ErrKeyInactive):
			code = http.StatusForbidden
			message = "invalid or inactive API key"
		case errors.Is(err, apperrors.ErrEmailExists), errors.Is(err, apperrors.ErrUsernameExists):
			code = http.StatusBadRequest
			message = "duplicate unique field"
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidInput):
			code = http.StatusBadRequest
			message = "invalid input"
		case errors.Is(err, apperrors.ErrConflict):
			code = http.StatusConflict
			message = "resource already exists"
		}

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && code < 500 && appErr.Message != "" {
			message = appErr.Message
		}
	}

	requestID := c.Response().Header().Get("X-Request-ID")
	if code >= 500 {
		c.Logger().Errorf("request %s failed with %d: %v", requestID, code, err)
		message = "internal server error"
	}

	if err := c.JSON(code, map[string]string{"message": message}); err != nil {
		c.Logger().Error(err)
	}
}
