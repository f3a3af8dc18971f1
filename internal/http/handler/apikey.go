package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"athlete-service/internal/domain/apikey"
	"athlete-service/internal/repository"
	apperrors "athlete-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

// APIKeyHandler covers the administrative key lifecycle. Keys are
// created out-of-band by admins; the public track only consumes them.
type APIKeyHandler struct {
	apiKeyRepo repository.APIKeyRepository
}

func NewAPIKeyHandler(apiKeyRepo repository.APIKeyRepository) *APIKeyHandler {
	return &APIKeyHandler{apiKeyRepo: apiKeyRepo}
}

type CreateAPIKeyRequest struct {
	Key    string `json:"key"`
	UserID int64  `json:"user_id"`
}

type APIKeyResponse struct {
	ID     int64  `json:"id"`
	Key    string `json:"key"`
	UserID int64  `json:"user_id"`
	Active bool   `json:"is_active"`
}

func (h *APIKeyHandler) Create(c echo.Context) error {
	var req CreateAPIKeyRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Key = strings.TrimSpace(req.Key)
	if req.Key == "" {
		return respondMessage(c, http.StatusBadRequest, msgKeyValueRequired)
	}
	if req.UserID <= 0 {
		return respondMessage(c, http.StatusBadRequest, msgKeyOwnerRequired)
	}

	created, err := h.apiKeyRepo.Create(c.Request().Context(), apikey.CreateAPIKeyInput{
		Key:    req.Key,
		UserID: req.UserID,
		Active: true,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return respondMessage(c, http.StatusConflict, appMessage(err, msgInternalError))
		}
		c.Logger().Errorf("create api key failed: %v", err)
		return respondMessage(c, http.StatusInternalServerError, msgInternalError)
	}

	return c.JSON(http.StatusCreated, APIKeyResponse{
		ID:     created.ID,
		Key:    created.Key,
		UserID: created.UserID,
		Active: created.Active,
	})
}

func (h *APIKeyHandler) Deactivate(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param(paramID), 10, 64)
	if err != nil {
		return respondMessage(c, http.StatusBadRequest, msgInvalidAPIKeyID)
	}

	if err := h.apiKeyRepo.Deactivate(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondMessage(c, http.StatusNotFound, msgAPIKeyNotFound)
		}
		c.Logger().Errorf("deactivate api key failed: %v", err)
		return respondMessage(c, http.StatusInternalServerError, msgInternalError)
	}

	return c.NoContent(http.StatusNoContent)
}
