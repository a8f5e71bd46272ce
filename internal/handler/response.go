package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"nifresolver/internal/service"
	"nifresolver/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Error writes a JSON error body with the given status.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return Error(c, http.StatusBadRequest, "invalid path")
	default:
		logger.Error("request failed", "module", "handler", "path", c.Request().URL.Path, "error", err)
		return Error(c, http.StatusInternalServerError, "internal error")
	}
}
