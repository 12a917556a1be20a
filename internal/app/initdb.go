package app

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GuimaraesZ/workshop/internal/domain"
	"github.com/GuimaraesZ/workshop/pkg/common"
)

// checkCategories initializes the default category catalog
func (a *Application) checkCategories() {
	defaultCategories := []domain.Category{
		{Name: "Electronics"},
		{Name: "Books"},
		{Name: "Computers"},
	}

	for _, cat := range defaultCategories {
		var count int64
		a.gormDB.Model(&domain.Category{}).Where("name = ?", cat.Name).Count(&count)
		if count == 0 {
			if err := a.gormDB.Create(&cat).Error; err != nil {
				zap.L().Error("failed to create default category", zap.String("name", cat.Name), zap.Error(err))
			} else {
				zap.L().Info("initialized default category", zap.String("name", cat.Name))
			}
		}
	}
}

// checkProducts initializes default catalog products bound to the default
// categories
func (a *Application) checkProducts() {
	type seedProduct struct {
		product    domain.Product
		categories []string
	}
	defaultProducts := []seedProduct{
		{
			product: domain.Product{
				Name:        "The Lord of the Rings",
				Description: "Lorem ipsum dolor sit amet, consectetur.",
				Price:       90.5,
			},
			categories: []string{"Books"},
		},
		{
			product: domain.Product{
				Name:        "Smart TV",
				Description: "Nulla eu imperdiet purus. Maecenas ante.",
				Price:       2190.0,
			},
			categories: []string{"Electronics", "Computers"},
		},
		{
			product: domain.Product{
				Name:        "Macbook Pro",
				Description: "Nam eleifend maximus tortor, at mollis.",
				Price:       1250.0,
			},
			categories: []string{"Computers"},
		},
		{
			product: domain.Product{
				Name:        "PC Gamer",
				Description: "Donec aliquet odio ac rhoncus cursus.",
				Price:       1200.0,
			},
			categories: []string{"Computers"},
		},
	}

	for _, seed := range defaultProducts {
		var count int64
		a.gormDB.Model(&domain.Product{}).Where("name = ?", seed.product.Name).Count(&count)
		if count != 0 {
			continue
		}
		for _, name := range seed.categories {
			var cat domain.Category
			if err := a.gormDB.Where("name = ?", name).First(&cat).Error; err == nil {
				seed.product.Categories = append(seed.product.Categories, cat)
			}
		}
		if err := a.gormDB.Create(&seed.product).Error; err != nil {
			zap.L().Error("failed to create default product", zap.String("name", seed.product.Name), zap.Error(err))
		} else {
			zap.L().Info("initialized default product", zap.String("name", seed.product.Name))
		}
	}
}

// checkDemoUser initializes a demo client account
func (a *Application) checkDemoUser() {
	const demoEmail = "maria@gmail.com"

	var user domain.User
	err := a.gormDB.Where("email = ?", demoEmail).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hashed, herr := common.HashPassword("123456")
		if herr != nil {
			zap.L().Error("failed to hash demo user password", zap.Error(herr))
			return
		}
		if err := a.gormDB.Create(&domain.User{
			Name:     "Maria Silva",
			Email:    demoEmail,
			Phone:    "11999999999",
			Password: hashed,
		}).Error; err != nil {
			zap.L().Error("failed to create demo user", zap.Error(err))
		} else {
			zap.L().Info("initialized demo user", zap.String("email", demoEmail))
		}
	case err != nil:
		zap.L().Error("failed to query demo user", zap.Error(err))
	}
}
