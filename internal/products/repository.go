package products

import (
	"context"

	"gorm.io/gorm"

	"github.com/GuimaraesZ/workshop/internal/domain"
)

// Repository handles database operations for catalog products.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Save(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
	ReplaceCategories(ctx context.Context, product *domain.Product, categories []domain.Category) error
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) List(ctx context.Context) ([]domain.Product, error) {
	var rows []domain.Product
	err := r.db.WithContext(ctx).Preload("Categories").Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).Preload("Categories").First(&product, id).Error
	return &product, err
}

func (r *GormRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *GormRepository) Save(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Omit("Categories").Save(product).Error
}

func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Select("Categories").Delete(&domain.Product{ID: id}).Error
}

func (r *GormRepository) ReplaceCategories(ctx context.Context, product *domain.Product, categories []domain.Category) error {
	return r.db.WithContext(ctx).Model(product).Association("Categories").Replace(categories)
}
