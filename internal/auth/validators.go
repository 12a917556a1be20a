package auth

import (
	"regexp"
	"strings"

	"github.com/GuimaraesZ/workshop/internal/errs"
)

// LoginRequest is the POST /auth/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the POST /auth/signup body.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Permissive on purpose: anything with a local part and a domain passes.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

var nonDigits = regexp.MustCompile(`[^0-9]`)

// ValidateLogin rejects malformed login payloads before any I/O happens.
func ValidateLogin(req *LoginRequest) error {
	if req == nil {
		return errs.Invalid("login payload must not be empty")
	}
	if strings.TrimSpace(req.Email) == "" {
		return errs.Invalid("email is required")
	}
	if !emailPattern.MatchString(req.Email) {
		return errs.Invalid("email is invalid")
	}
	if strings.TrimSpace(req.Password) == "" {
		return errs.Invalid("password is required")
	}
	return nil
}

// ValidateSignup rejects malformed signup payloads before any I/O happens.
func ValidateSignup(req *SignupRequest) error {
	if req == nil {
		return errs.Invalid("signup payload must not be empty")
	}
	if strings.TrimSpace(req.Name) == "" {
		return errs.Invalid("name is required")
	}
	if len(req.Name) < 3 {
		return errs.Invalid("name must be at least 3 characters")
	}
	if strings.TrimSpace(req.Email) == "" {
		return errs.Invalid("email is required")
	}
	if !emailPattern.MatchString(req.Email) {
		return errs.Invalid("email is invalid")
	}
	if req.Password == "" {
		return errs.Invalid("password is required")
	}
	if len(req.Password) < 6 {
		return errs.Invalid("password must be at least 6 characters")
	}
	if strings.TrimSpace(req.Phone) != "" {
		digits := nonDigits.ReplaceAllString(req.Phone, "")
		if len(digits) < 10 || len(digits) > 11 {
			return errs.Invalid("phone is invalid")
		}
	}
	return nil
}
