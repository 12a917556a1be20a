package api

import (
	"github.com/labstack/echo/v4"

	"github.com/GuimaraesZ/workshop/internal/auth"
	"github.com/GuimaraesZ/workshop/internal/domain"
	"github.com/GuimaraesZ/workshop/internal/errs"
)

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (h *Handlers) login(c echo.Context) error {
	var req auth.LoginRequest
	if err := c.Bind(&req); err != nil {
		return errs.Invalid("unable to parse login payload")
	}
	if err := auth.ValidateLogin(&req); err != nil {
		return err
	}
	user, err := h.auth.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	token, err := h.auth.GenerateToken(user)
	if err != nil {
		return err
	}
	return ok(c, loginResponse{Token: token, User: user})
}

func (h *Handlers) signup(c echo.Context) error {
	var req auth.SignupRequest
	if err := c.Bind(&req); err != nil {
		return errs.Invalid("unable to parse signup payload")
	}
	if err := auth.ValidateSignup(&req); err != nil {
		return err
	}
	user, err := h.auth.Register(c.Request().Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		return err
	}
	token, err := h.auth.GenerateToken(user)
	if err != nil {
		return err
	}
	return ok(c, loginResponse{Token: token, User: user})
}
