package api

import (
	"github.com/labstack/echo/v4"
)

func (h *Handlers) listCategories(c echo.Context) error {
	rows, err := h.categories.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, rows)
}

func (h *Handlers) getCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	category, err := h.categories.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, category)
}

func (h *Handlers) listCategoryProducts(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	rows, err := h.categories.FindProducts(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, rows)
}
