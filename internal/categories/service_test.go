package categories

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

func TestFindAllAndByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewGormRepository(db))

	require.NoError(t, db.Create(&domain.Category{Name: "Books"}).Error)
	require.NoError(t, db.Create(&domain.Category{Name: "Electronics"}).Error)

	all, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	first, err := svc.FindByID(context.Background(), all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Books", first.Name)

	_, err = svc.FindByID(context.Background(), 9999)
	assert.True(t, errs.IsNotFound(err))
}

func TestFindProducts(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewGormRepository(db))

	books := domain.Category{Name: "Books"}
	require.NoError(t, db.Create(&books).Error)
	require.NoError(t, db.Create(&domain.Product{
		Name: "The Lord of the Rings", Price: 90.5,
		Categories: []domain.Category{books},
	}).Error)
	require.NoError(t, db.Create(&domain.Product{Name: "Smart TV", Price: 2190.0}).Error)

	products, err := svc.FindProducts(context.Background(), books.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "The Lord of the Rings", products[0].Name)

	_, err = svc.FindProducts(context.Background(), 9999)
	assert.True(t, errs.IsNotFound(err))
}
