package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/GuimaraesZ/workshop/internal/domain"
	"github.com/GuimaraesZ/workshop/internal/errs"
	"github.com/GuimaraesZ/workshop/internal/products"
)

type createProductPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImgUrl      string  `json:"img_url"`
	CategoryIDs []int64 `json:"category_ids"`
}

func (h *Handlers) listProducts(c echo.Context) error {
	rows, err := h.products.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, rows)
}

func (h *Handlers) getProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	product, err := h.products.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, product)
}

func (h *Handlers) createProduct(c echo.Context) error {
	var payload createProductPayload
	if err := c.Bind(&payload); err != nil {
		return errs.Invalid("unable to parse product payload")
	}
	if strings.TrimSpace(payload.Name) == "" {
		return errs.Invalid("product name is required")
	}
	product := &domain.Product{
		Name:        strings.TrimSpace(payload.Name),
		Description: payload.Description,
		Price:       payload.Price,
		ImgUrl:      payload.ImgUrl,
	}
	for _, cid := range payload.CategoryIDs {
		category, err := h.categories.FindByID(c.Request().Context(), cid)
		if err != nil {
			return err
		}
		product.Categories = append(product.Categories, *category)
	}
	product, err := h.products.Create(c.Request().Context(), product)
	if err != nil {
		return err
	}
	return created(c, fmt.Sprintf("/products/%d", product.ID), product)
}

func (h *Handlers) updateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var in products.UpdateInput
	if err := c.Bind(&in); err != nil {
		return errs.Invalid("unable to parse product payload")
	}
	product, err := h.products.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return ok(c, product)
}

func (h *Handlers) deleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.products.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
