package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/GuimaraesZ/workshop/internal/domain"
	"github.com/GuimaraesZ/workshop/internal/errs"
	"github.com/GuimaraesZ/workshop/internal/orders"
)

const headerUserID = "X-User-Id"

type payOrderPayload struct {
	Method string `json:"method"`
}

// listOrders returns every order, or only one client's orders when the
// X-User-Id header is present.
func (h *Handlers) listOrders(c echo.Context) error {
	ctx := c.Request().Context()

	var rows []domain.Order
	var err error
	if header := c.Request().Header.Get(headerUserID); header != "" {
		userID, perr := strconv.ParseInt(header, 10, 64)
		if perr != nil {
			return errs.Invalid("invalid %s header", headerUserID)
		}
		rows, err = h.orders.FindByClientID(ctx, userID)
	} else {
		rows, err = h.orders.FindAll(ctx)
	}
	if err != nil {
		return err
	}

	resp := make([]*orders.Response, 0, len(rows))
	for i := range rows {
		resp = append(resp, orders.NewResponse(&rows[i]))
	}
	return ok(c, resp)
}

func (h *Handlers) getOrder(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	order, err := h.orders.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, orders.NewResponse(order))
}

func (h *Handlers) createOrder(c echo.Context) error {
	header := c.Request().Header.Get(headerUserID)
	if header == "" {
		return errs.ErrUnauthorized
	}
	userID, err := strconv.ParseInt(header, 10, 64)
	if err != nil {
		return errs.Invalid("invalid %s header", headerUserID)
	}

	var req orders.CreateRequest
	if err := c.Bind(&req); err != nil {
		return errs.Invalid("unable to parse order payload")
	}
	resp, err := h.orders.Create(c.Request().Context(), userID, &req)
	if err != nil {
		return err
	}
	return created(c, fmt.Sprintf("/orders/%d", resp.ID), resp)
}

func (h *Handlers) deleteOrder(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.orders.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handlers) payOrder(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var payload payOrderPayload
	if err := c.Bind(&payload); err != nil {
		return errs.Invalid("unable to parse payment payload")
	}
	order, err := h.orders.Pay(c.Request().Context(), id, payload.Method)
	if err != nil {
		return err
	}
	return ok(c, orders.NewResponse(order))
}
