package domain

import (
	"encoding/json"
	"fmt"
)

// OrderStatus is the order lifecycle state, stored as an integer code.
type OrderStatus int

const (
	OrderStatusWaitingPayment OrderStatus = 1
	OrderStatusPaid           OrderStatus = 2
	OrderStatusShipped        OrderStatus = 3
	OrderStatusDelivered      OrderStatus = 4
	OrderStatusCanceled       OrderStatus = 5
)

var orderStatusNames = map[OrderStatus]string{
	OrderStatusWaitingPayment: "WAITING_PAYMENT",
	OrderStatusPaid:           "PAID",
	OrderStatusShipped:        "SHIPPED",
	OrderStatusDelivered:      "DELIVERED",
	OrderStatusCanceled:       "CANCELED",
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusNames[s]
	return ok
}

func (s OrderStatus) String() string {
	if name, ok := orderStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(s))
}

// MarshalJSON renders the status name; the integer code stays a storage detail.
func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		for code, n := range orderStatusNames {
			if n == name {
				*s = code
				return nil
			}
		}
		return fmt.Errorf("unknown order status %q", name)
	}
	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	*s = OrderStatus(code)
	return nil
}
