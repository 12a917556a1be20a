package categories

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/GuimaraesZ/workshop/internal/domain"
	"github.com/GuimaraesZ/workshop/internal/errs"
)

// Service exposes the read-only category catalog.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) FindAll(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("category", id)
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) FindProducts(ctx context.Context, id int64) ([]domain.Product, error) {
	products, err := s.repo.ListProducts(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("category", id)
	}
	if err != nil {
		return nil, err
	}
	return products, nil
}
