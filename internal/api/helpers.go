package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/GuimaraesZ/workshop/internal/errs"
)

func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, errs.Invalid("invalid %s parameter", name)
	}
	return id, nil
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func created(c echo.Context, location string, data interface{}) error {
	if location != "" {
		c.Response().Header().Set(echo.HeaderLocation, location)
	}
	return c.JSON(http.StatusCreated, data)
}
