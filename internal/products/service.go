package products

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/GuimaraesZ/workshop/internal/domain"
	"github.com/GuimaraesZ/workshop/internal/errs"
)

// UpdateInput is a partially-populated product update. Nil fields mean
// "no change"; id and relations are deliberately absent.
type UpdateInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImgUrl      *string  `json:"img_url"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) FindAll(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("product", id)
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Service) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.ID = 0
	if product.Price < 0 {
		return nil, errs.Invalid("product price must not be negative")
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update overwrites only the fields present in the input; omitted fields keep
// their stored value. Category links are managed separately.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Product, error) {
	product, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, errs.Invalid("product price must not be negative")
		}
		product.Price = *in.Price
	}
	if in.ImgUrl != nil {
		product.ImgUrl = *in.ImgUrl
	}
	if err := s.repo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// SetImage persists the stored relative path of an uploaded product image.
func (s *Service) SetImage(ctx context.Context, id int64, imageUrl string) (*domain.Product, error) {
	product, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.ImgUrl = imageUrl
	if err := s.repo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// SetCategories replaces the product's category links.
func (s *Service) SetCategories(ctx context.Context, id int64, categories []domain.Category) (*domain.Product, error) {
	product, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceCategories(ctx, product, categories); err != nil {
		return nil, err
	}
	return s.FindByID(ctx, id)
}
