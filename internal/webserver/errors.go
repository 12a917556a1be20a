package webserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/GuimaraesZ/workshop/internal/errs"
)

// ErrorBody is the uniform error response shape.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// httpErrorHandler is the single boundary that turns typed service failures
// into HTTP statuses. Handlers return errors; nobody else maps them.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, errs.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusUnauthorized
	default:
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		} else {
			zap.L().Error("unhandled request error",
				zap.String("path", c.Request().URL.Path), zap.Error(err))
			message = "internal server error"
		}
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(status)
	} else {
		werr = c.JSON(status, ErrorBody{Message: message, Status: status})
	}
	if werr != nil {
		zap.L().Error("failed to write error response", zap.Error(werr))
	}
}
