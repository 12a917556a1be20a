package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/GuimaraesZ/workshop/internal/domain"
	"github.com/GuimaraesZ/workshop/internal/errs"
	"github.com/GuimaraesZ/workshop/internal/users"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(domain.Tables...))
	return NewService(users.NewGormRepository(db), "test-secret")
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Register(context.Background(), "Maria Silva", "maria@example.com", "11999999999", "123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", user.Password)

	got, err := svc.Authenticate(context.Background(), "maria@example.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register(context.Background(), "Maria Silva", "maria@example.com", "11999999999", "123456")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other Maria", "maria@example.com", "11888888888", "654321")
	assert.ErrorIs(t, err, errs.ErrInvalid)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register(context.Background(), "Maria Silva", "maria@example.com", "11999999999", "123456")
	require.NoError(t, err)

	_, errUnknown := svc.Authenticate(context.Background(), "nobody@example.com", "123456")
	_, errWrongPass := svc.Authenticate(context.Background(), "maria@example.com", "badpass")

	assert.ErrorIs(t, errUnknown, errs.ErrUnauthorized)
	assert.ErrorIs(t, errWrongPass, errs.ErrUnauthorized)
	// the caller cannot tell which part was wrong
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Register(context.Background(), "Maria Silva", "maria@example.com", "11999999999", "123456")
	require.NoError(t, err)

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, uid)

	_, err = svc.ParseToken(token + "tampered")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	other := NewService(svc.repo, "other-secret")
	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name    string
		req     *LoginRequest
		wantErr bool
	}{
		{"valid", &LoginRequest{Email: "maria@example.com", Password: "123456"}, false},
		{"nil payload", nil, true},
		{"missing email", &LoginRequest{Password: "123456"}, true},
		{"malformed email", &LoginRequest{Email: "not-an-email", Password: "123456"}, true},
		{"missing password", &LoginRequest{Email: "maria@example.com"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogin(tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSignup(t *testing.T) {
	valid := SignupRequest{Name: "Maria Silva", Email: "maria@example.com", Phone: "11999999999", Password: "123456"}

	tests := []struct {
		name    string
		mutate  func(r *SignupRequest)
		wantErr bool
	}{
		{"valid", func(r *SignupRequest) {}, false},
		{"no phone is fine", func(r *SignupRequest) { r.Phone = "" }, false},
		{"formatted phone", func(r *SignupRequest) { r.Phone = "(11) 99999-9999" }, false},
		{"short name", func(r *SignupRequest) { r.Name = "Ma" }, true},
		{"missing email", func(r *SignupRequest) { r.Email = "" }, true},
		{"malformed email", func(r *SignupRequest) { r.Email = "maria" }, true},
		{"short password", func(r *SignupRequest) { r.Password = "12345" }, true},
		{"short phone", func(r *SignupRequest) { r.Phone = "12345" }, true},
		{"long phone", func(r *SignupRequest) { r.Phone = "123456789012" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := ValidateSignup(&req)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
