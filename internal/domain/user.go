package domain

import "time"

// User is a store client. The password field always holds a bcrypt hash and
// never reaches JSON responses.
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `json:"name" form:"name"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email" form:"email"`
	Phone        string    `json:"phone" form:"phone"`
	Password     string    `json:"-"`
	StoreName    string    `json:"store_name" form:"store_name"`
	ProfileImage string    `gorm:"size:1024" json:"profile_image"`
	BirthDate    string    `json:"birth_date" form:"birth_date"`
	Address      string    `json:"address" form:"address"`
	HouseNumber  string    `json:"house_number" form:"house_number"`
	Neighborhood string    `json:"neighborhood" form:"neighborhood"`
	Complement   string    `json:"complement" form:"complement"`
	City         string    `json:"city" form:"city"`
	State        string    `json:"state" form:"state"`
	ZipCode      string    `json:"zip_code" form:"zip_code"`
	Orders       []Order   `gorm:"foreignKey:ClientID" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "tb_user"
}
