package orders

import (
	"fmt"
	"time"

	"github.com/GuimaraesZ/workshop/internal/domain"
)

// ItemRequest is one requested order line. The price is taken from the
// request as-is and not re-derived from the product's current price.
type ItemRequest struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// ShippingAddress is shipping metadata echoed back in the response. It is not
// persisted by the order workflow.
type ShippingAddress struct {
	RecipientName string `json:"recipient_name"`
	Phone         string `json:"phone"`
	Street        string `json:"street"`
	Number        string `json:"number"`
	Complement    string `json:"complement"`
	Neighborhood  string `json:"neighborhood"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
}

// CreateRequest is the POST /orders body.
type CreateRequest struct {
	Items           []ItemRequest    `json:"items"`
	ShippingAddress *ShippingAddress `json:"shipping_address"`
	PaymentMethod   string           `json:"payment_method"`
	ShippingCost    float64          `json:"shipping_cost"`
	Subtotal        float64          `json:"subtotal"`
	Total           float64          `json:"total"`
}

// ItemResponse is one order line in a response.
type ItemResponse struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	ImgUrl      string  `json:"img_url,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	SubTotal    float64 `json:"sub_total"`
}

// Response is the order representation returned by the API.
type Response struct {
	ID              int64              `json:"id"`
	OrderNumber     string             `json:"order_number"`
	Moment          time.Time          `json:"moment"`
	Status          domain.OrderStatus `json:"status"`
	Items           []ItemResponse     `json:"items"`
	ShippingAddress *ShippingAddress   `json:"shipping_address,omitempty"`
	PaymentMethod   string             `json:"payment_method,omitempty"`
	ShippingCost    float64            `json:"shipping_cost,omitempty"`
	Subtotal        float64            `json:"subtotal,omitempty"`
	Total           float64            `json:"total"`
	ClientName      string             `json:"client_name,omitempty"`
	ClientEmail     string             `json:"client_email,omitempty"`
	Payment         *domain.Payment    `json:"payment,omitempty"`
}

// NewResponse shapes a persisted order for the API.
func NewResponse(order *domain.Order) *Response {
	resp := &Response{
		ID:          order.ID,
		OrderNumber: fmt.Sprintf("ORD-%05d", order.ID),
		Moment:      order.Moment,
		Status:      order.Status,
		Items:       make([]ItemResponse, 0, len(order.Items)),
		Total:       order.Total(),
		Payment:     order.Payment,
	}
	for i := range order.Items {
		item := &order.Items[i]
		ir := ItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			SubTotal:  item.SubTotal(),
		}
		if item.Product != nil {
			ir.ProductName = item.Product.Name
			ir.ImgUrl = item.Product.ImgUrl
		}
		resp.Items = append(resp.Items, ir)
	}
	if order.Client != nil {
		resp.ClientName = order.Client.Name
		resp.ClientEmail = order.Client.Email
	}
	return resp
}

// WithRequestMeta copies the pass-through shipping and payment metadata from
// the request onto the response. Only order and item rows are durable.
func (r *Response) WithRequestMeta(req *CreateRequest) *Response {
	r.ShippingAddress = req.ShippingAddress
	r.PaymentMethod = req.PaymentMethod
	r.ShippingCost = req.ShippingCost
	r.Subtotal = req.Subtotal
	if req.Total > 0 {
		r.Total = req.Total
	}
	return r
}
