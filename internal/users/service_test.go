package users

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/GuimaraesZ/workshop/internal/domain"
	"github.com/GuimaraesZ/workshop/internal/errs"
	"github.com/GuimaraesZ/workshop/pkg/common"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(domain.Tables...))
	return db
}

func strptr(s string) *string { return &s }

func TestInsertHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewGormRepository(db))

	user, err := svc.Insert(context.Background(), &domain.User{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Phone:    "11999999999",
		Password: "123456",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "123456", user.Password)
	assert.True(t, common.CheckPassword(user.Password, "123456"))
}

func TestUpdateMergesOnlyPresentFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewGormRepository(db))

	user, err := svc.Insert(context.Background(), &domain.User{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Phone:    "11999999999",
		Password: "123456",
		City:     "Uberlandia",
	})
	require.NoError(t, err)
	originalPassword := user.Password

	updated, err := svc.Update(context.Background(), user.ID, UpdateInput{
		Name:  strptr("Maria Souza"),
		Phone: strptr("11888888888"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", updated.Name)
	assert.Equal(t, "11888888888", updated.Phone)
	// untouched fields survive
	assert.Equal(t, "maria@example.com", updated.Email)
	assert.Equal(t, "Uberlandia", updated.City)
	assert.Equal(t, originalPassword, updated.Password)
	assert.Equal(t, user.ID, updated.ID)
}

func TestUpdateUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewGormRepository(db))

	_, err := svc.Update(context.Background(), 404, UpdateInput{Name: strptr("x")})
	assert.True(t, errs.IsNotFound(err))
}

func TestDeleteConflictsWithOrders(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewGormRepository(db))

	user, err := svc.Insert(context.Background(), &domain.User{
		Name: "Maria Silva", Email: "maria@example.com", Phone: "11999999999", Password: "123456",
	})
	require.NoError(t, err)
	require.NoError(t, db.Create(&domain.Order{
		Moment:   time.Now(),
		Status:   domain.OrderStatusWaitingPayment,
		ClientID: user.ID,
	}).Error)

	err = svc.Delete(context.Background(), user.ID)
	assert.ErrorIs(t, err, errs.ErrConflict)

	// still there
	_, err = svc.FindByID(context.Background(), user.ID)
	assert.NoError(t, err)
}

func TestDeleteWithoutOrders(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewGormRepository(db))

	user, err := svc.Insert(context.Background(), &domain.User{
		Name: "Maria Silva", Email: "maria@example.com", Phone: "11999999999", Password: "123456",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), user.ID))

	_, err = svc.FindByID(context.Background(), user.ID)
	assert.True(t, errs.IsNotFound(err))
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewGormRepository(db))

	user, err := svc.Insert(context.Background(), &domain.User{
		Name: "Maria Silva", Email: "maria@example.com", Phone: "11999999999", Password: "123456",
	})
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), user.ID, "wrong", "newsecret")
	assert.ErrorIs(t, err, errs.ErrInvalid)

	err = svc.ChangePassword(context.Background(), user.ID, "123456", "short")
	assert.ErrorIs(t, err, errs.ErrInvalid)

	require.NoError(t, svc.ChangePassword(context.Background(), user.ID, "123456", "newsecret"))

	stored, err := svc.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, common.CheckPassword(stored.Password, "newsecret"))
	assert.False(t, common.CheckPassword(stored.Password, "123456"))
}

func TestSetProfileImage(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewGormRepository(db))

	user, err := svc.Insert(context.Background(), &domain.User{
		Name: "Maria Silva", Email: "maria@example.com", Phone: "11999999999", Password: "123456",
	})
	require.NoError(t, err)

	updated, err := svc.SetProfileImage(context.Background(), user.ID, "/uploads/users/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/users/abc.png", updated.ProfileImage)
}
