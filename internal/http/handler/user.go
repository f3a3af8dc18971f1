package handler

import (
	"errors"
	"net/http"
	"strconv"

	"athlete-service/internal/repository"
	apperrors "athlete-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userRepo repository.UserRepository
}

func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// Get returns a user's profile. The ownership gate upstream guarantees
// the caller is either the user itself or an admin.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param(paramID), 10, 64)
	if err != nil {
		return respondMessage(c, http.StatusBadRequest, msgInvalidUserID)
	}

	u, err := h.userRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondMessage(c, http.StatusNotFound, msgUserNotFound)
		}
		c.Logger().Errorf("get user failed: %v", err)
		return respondMessage(c, http.StatusInternalServerError, msgInternalError)
	}

	return c.JSON(http.StatusOK, u.Profile())
}
