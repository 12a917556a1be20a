package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/GuimaraesZ/workshop/internal/domain"
	"github.com/GuimaraesZ/workshop/internal/errs"
	"github.com/GuimaraesZ/workshop/internal/users"
)

type createUserPayload struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
	StoreName    string `json:"store_name"`
	BirthDate    string `json:"birth_date"`
	Address      string `json:"address"`
	HouseNumber  string `json:"house_number"`
	Neighborhood string `json:"neighborhood"`
	Complement   string `json:"complement"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

type changePasswordPayload struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *Handlers) listUsers(c echo.Context) error {
	rows, err := h.users.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, rows)
}

func (h *Handlers) getUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	user, err := h.users.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, user)
}

func (h *Handlers) createUser(c echo.Context) error {
	var payload createUserPayload
	if err := c.Bind(&payload); err != nil {
		return errs.Invalid("unable to parse user payload")
	}
	user := &domain.User{
		Name:         payload.Name,
		Email:        payload.Email,
		Phone:        payload.Phone,
		Password:     payload.Password,
		StoreName:    payload.StoreName,
		BirthDate:    payload.BirthDate,
		Address:      payload.Address,
		HouseNumber:  payload.HouseNumber,
		Neighborhood: payload.Neighborhood,
		Complement:   payload.Complement,
		City:         payload.City,
		State:        payload.State,
		ZipCode:      payload.ZipCode,
	}
	user, err := h.users.Insert(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return created(c, fmt.Sprintf("/users/%d", user.ID), user)
}

func (h *Handlers) updateUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var in users.UpdateInput
	if err := c.Bind(&in); err != nil {
		return errs.Invalid("unable to parse user payload")
	}
	user, err := h.users.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return ok(c, user)
}

func (h *Handlers) deleteUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handlers) changePassword(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var payload changePasswordPayload
	if err := c.Bind(&payload); err != nil {
		return errs.Invalid("unable to parse password payload")
	}
	if err := h.users.ChangePassword(c.Request().Context(), id, payload.CurrentPassword, payload.NewPassword); err != nil {
		return err
	}
	return ok(c, map[string]string{"message": "password changed"})
}
