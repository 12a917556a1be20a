package domain

import "time"

// Order is a purchase placed by a client. Items carry the composite key
// (order id, product id); the Payment row shares the order id.
type Order struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Moment    time.Time   `json:"moment"`
	Status    OrderStatus `gorm:"column:order_status" json:"status"`
	ClientID  int64       `gorm:"index" json:"client_id"`
	Client    *User       `gorm:"foreignKey:ClientID" json:"-"`
	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Payment   *Payment    `gorm:"foreignKey:OrderID" json:"payment,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (Order) TableName() string {
	return "tb_order"
}

// Total is the sum of item subtotals.
func (o *Order) Total() float64 {
	var total float64
	for i := range o.Items {
		total += o.Items[i].SubTotal()
	}
	return total
}

// OrderItem is one purchased line. Identity is the pair (order id,
// product id), not a surrogate key.
type OrderItem struct {
	OrderID   int64    `gorm:"primaryKey;autoIncrement:false" json:"-"`
	ProductID int64    `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
}

func (OrderItem) TableName() string {
	return "tb_order_item"
}

func (i *OrderItem) SubTotal() float64 {
	return i.Price * float64(i.Quantity)
}
