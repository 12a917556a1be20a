package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/GuimaraesZ/workshop/internal/domain"
)

// Repository handles database operations for orders, their items and
// payments. InTx runs a function against a transaction-bound repository so
// the multi-row creation workflow is all-or-nothing.
type Repository interface {
	List(ctx context.Context) ([]domain.Order, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error

	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateOrder(ctx context.Context, order *domain.Order) error
	CreateItem(ctx context.Context, item *domain.OrderItem) error
	CreatePayment(ctx context.Context, payment *domain.Payment) error
	SaveOrder(ctx context.Context, order *domain.Order) error

	InTx(ctx context.Context, fn func(tx Repository) error) error
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) preload(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items.Product").
		Preload("Client").
		Preload("Payment")
}

func (r *GormRepository) List(ctx context.Context) ([]domain.Order, error) {
	var rows []domain.Order
	err := r.preload(ctx).Order("id DESC").Find(&rows).Error
	return rows, err
}

func (r *GormRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Order, error) {
	var rows []domain.Order
	err := r.preload(ctx).Where("client_id = ?", clientID).Order("id DESC").Find(&rows).Error
	return rows, err
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	err := r.preload(ctx).First(&order, id).Error
	return &order, err
}

func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&domain.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&domain.Payment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Order{}, id).Error
	})
}

func (r *GormRepository) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	return &user, err
}

func (r *GormRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	return &product, err
}

func (r *GormRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Omit("Items", "Client", "Payment").Create(order).Error
}

func (r *GormRepository) CreateItem(ctx context.Context, item *domain.OrderItem) error {
	return r.db.WithContext(ctx).Omit("Product").Create(item).Error
}

func (r *GormRepository) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *GormRepository) SaveOrder(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Omit("Items", "Client", "Payment").Save(order).Error
}

func (r *GormRepository) InTx(ctx context.Context, fn func(tx Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx})
	})
}
