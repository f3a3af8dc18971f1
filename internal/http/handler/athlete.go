package handler

import (
	"errors"
	"net/http"
	"strconv"

	"athlete-service/internal/domain/athlete"
	"athlete-service/internal/repository"
	apperrors "athlete-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

type AthleteHandler struct {
	athleteRepo repository.AthleteRepository
}

func NewAthleteHandler(athleteRepo repository.AthleteRepository) *AthleteHandler {
	return &AthleteHandler{athleteRepo: athleteRepo}
}

// List is the open read endpoint. Filters and sort come from query
// parameters; unknown sort columns fall back to id ordering.
func (h *AthleteHandler) List(c echo.Context) error {
	filter := athlete.ListFilter{
		SortBy:   c.QueryParam("sort"),
		SortDesc: c.QueryParam("order") == "desc",
	}

	if name := c.QueryParam("name"); name != "" {
		filter.Name = &name
	}
	if gender := c.QueryParam("gender"); gender != "" {
		filter.Gender = &gender
	}
	if ageStr := c.QueryParam("age"); ageStr != "" {
		if age, err := strconv.Atoi(ageStr); err == nil {
			filter.Age = &age
		}
	}
	if perfStr := c.QueryParam("performance"); perfStr != "" {
		if perf, err := strconv.Atoi(perfStr); err == nil {
			filter.Performance = &perf
		}
	}

	athletes, err := h.athleteRepo.List(c.Request().Context(), filter)
	if err != nil {
		c.Logger().Errorf("list athletes failed: %v", err)
		return respondMessage(c, http.StatusInternalServerError, msgInternalError)
	}

	if athletes == nil {
		athletes = []*athlete.Athlete{}
	}

	return c.JSON(http.StatusOK, athletes)
}

func (h *AthleteHandler) Get(c echo.Context) error {
	id, err := athleteID(c)
	if err != nil {
		return respondMessage(c, http.StatusBadRequest, msgInvalidAthleteID)
	}

	a, err := h.athleteRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondMessage(c, http.StatusNotFound, msgAthleteNotFound)
		}
		c.Logger().Errorf("get athlete failed: %v", err)
		return respondMessage(c, http.StatusInternalServerError, msgInternalError)
	}

	return c.JSON(http.StatusOK, a)
}

func (h *AthleteHandler) Create(c echo.Context) error {
	var input athlete.CreateInput
	if err := bindStrictJSON(c, &input); err != nil {
		return handleHTTPError(c, err)
	}

	if err := input.Validate(); err != nil {
		return respondMessage(c, http.StatusBadRequest, err.Error())
	}

	created, err := h.athleteRepo.Create(c.Request().Context(), input)
	if err != nil {
		c.Logger().Errorf("create athlete failed: %v", err)
		return respondMessage(c, http.StatusInternalServerError, msgInternalError)
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *AthleteHandler) Update(c echo.Context) error {
	id, err := athleteID(c)
	if err != nil {
		return respondMessage(c, http.StatusBadRequest, msgInvalidAthleteID)
	}

	var input athlete.UpdateInput
	if err := bindStrictJSON(c, &input); err != nil {
		return handleHTTPError(c, err)
	}

	if input.IsEmpty() {
		return respondMessage(c, http.StatusBadRequest, msgEmptyUpdate)
	}

	if err := input.Validate(); err != nil {
		return respondMessage(c, http.StatusBadRequest, err.Error())
	}

	updated, err := h.athleteRepo.Update(c.Request().Context(), id, input)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondMessage(c, http.StatusNotFound, msgAthleteNotFound)
		}
		c.Logger().Errorf("update athlete failed: %v", err)
		return respondMessage(c, http.StatusInternalServerError, msgInternalError)
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *AthleteHandler) Delete(c echo.Context) error {
	id, err := athleteID(c)
	if err != nil {
		return respondMessage(c, http.StatusBadRequest, msgInvalidAthleteID)
	}

	if err := h.athleteRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondMessage(c, http.StatusNotFound, msgAthleteNotFound)
		}
		c.Logger().Errorf("delete athlete failed: %v", err)
		return respondMessage(c, http.StatusInternalServerError, msgInternalError)
	}

	return c.NoContent(http.StatusNoContent)
}

func athleteID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param(paramID), 10, 64)
}
