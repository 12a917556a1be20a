package categories

import (
	"context"

	"gorm.io/gorm"

	"github.com/GuimaraesZ/workshop/internal/domain"
)

// Repository handles database operations for product categories.
type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	ListProducts(ctx context.Context, id int64) ([]domain.Product, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) List(ctx context.Context) ([]domain.Category, error) {
	var rows []domain.Category
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var category domain.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	return &category, err
}

func (r *GormRepository) ListProducts(ctx context.Context, id int64) ([]domain.Product, error) {
	var category domain.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	var products []domain.Product
	err := r.db.WithContext(ctx).Model(&category).Association("Products").Find(&products)
	return products, err
}
