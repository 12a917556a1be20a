package domain

import "time"

// Product is a catalog item. Categories are a many-to-many relation through
// tb_product_category.
type Product struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"index" json:"name" form:"name"`
	Description string     `gorm:"size:4096" json:"description" form:"description"`
	Price       float64    `json:"price" form:"price"`
	ImgUrl      string     `gorm:"size:1024" json:"img_url"`
	Categories  []Category `gorm:"many2many:tb_product_category" json:"categories,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Product) TableName() string {
	return "tb_product"
}
