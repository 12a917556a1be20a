package domain

import "time"

// Payment records that an order was paid. Its primary key is the order id,
// so at most one payment exists per order and it cannot precede the order.
type Payment struct {
	OrderID   int64     `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	Moment    time.Time `json:"moment"`
	Method    string    `gorm:"size:64" json:"method"`
	CreatedAt time.Time `json:"created_at"`
}

func (Payment) TableName() string {
	return "tb_payment"
}
