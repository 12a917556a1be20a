package products

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
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(domain.Tables...))
	return db
}

func floatptr(f float64) *float64 { return &f }
func strptr(s string) *string    { return &s }

func TestCreateProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewGormRepository(db))

	product, err := svc.Create(context.Background(), &domain.Product{
		Name: "Smart TV", Description: "55 inch", Price: 2190.0,
	})
	require.NoError(t, err)
	assert.NotZero(t, product.ID)

	_, err = svc.Create(context.Background(), &domain.Product{Name: "Bad", Price: -1})
	assert.ErrorIs(t, err, errs.ErrInvalid)
}

func TestUpdateProductMergesFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewGormRepository(db))

	product, err := svc.Create(context.Background(), &domain.Product{
		Name: "Smart TV", Description: "55 inch", Price: 2190.0,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), product.ID, UpdateInput{
		Price: floatptr(1990.0),
	})
	require.NoError(t, err)
	assert.Equal(t, 1990.0, updated.Price)
	assert.Equal(t, "Smart TV", updated.Name)
	assert.Equal(t, "55 inch", updated.Description)

	_, err = svc.Update(context.Background(), product.ID, UpdateInput{Price: floatptr(-5)})
	assert.ErrorIs(t, err, errs.ErrInvalid)

	_, err = svc.Update(context.Background(), 9999, UpdateInput{Name: strptr("x")})
	assert.True(t, errs.IsNotFound(err))
}

func TestSetCategories(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewGormRepository(db))

	electronics := domain.Category{Name: "Electronics"}
	computers := domain.Category{Name: "Computers"}
	require.NoError(t, db.Create(&electronics).Error)
	require.NoError(t, db.Create(&computers).Error)

	product, err := svc.Create(context.Background(), &domain.Product{Name: "PC Gamer", Price: 1200.0})
	require.NoError(t, err)

	linked, err := svc.SetCategories(context.Background(), product.ID, []domain.Category{electronics, computers})
	require.NoError(t, err)
	assert.Len(t, linked.Categories, 2)

	linked, err = svc.SetCategories(context.Background(), product.ID, []domain.Category{computers})
	require.NoError(t, err)
	assert.Len(t, linked.Categories, 1)
	assert.Equal(t, "Computers", linked.Categories[0].Name)
}

func TestDeleteProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewGormRepository(db))

	product, err := svc.Create(context.Background(), &domain.Product{Name: "Book", Price: 10.0})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), product.ID))

	_, err = svc.FindByID(context.Background(), product.ID)
	assert.True(t, errs.IsNotFound(err))

	err = svc.Delete(context.Background(), product.ID)
	assert.True(t, errs.IsNotFound(err))
}
