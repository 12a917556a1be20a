package api

import (
	"github.com/labstack/echo/v4"
	"github.com/montanaflynn/stats"

	"github.com/GuimaraesZ/workshop/internal/domain"
)

type dashboardResponse struct {
	Users         int64   `json:"users"`
	Products      int64   `json:"products"`
	Categories    int64   `json:"categories"`
	Orders        int64   `json:"orders"`
	PaidOrders    int64   `json:"paid_orders"`
	Revenue       float64 `json:"revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
	MedOrderValue float64 `json:"med_order_value"`
}

// dashboard aggregates store counters and revenue statistics over paid
// orders for the manager console.
func (h *Handlers) dashboard(c echo.Context) error {
	db := h.db.WithContext(c.Request().Context())

	var resp dashboardResponse
	if err := db.Model(&domain.User{}).Count(&resp.Users).Error; err != nil {
		return err
	}
	if err := db.Model(&domain.Product{}).Count(&resp.Products).Error; err != nil {
		return err
	}
	if err := db.Model(&domain.Category{}).Count(&resp.Categories).Error; err != nil {
		return err
	}
	if err := db.Model(&domain.Order{}).Count(&resp.Orders).Error; err != nil {
		return err
	}

	var totals []float64
	err := db.Model(&domain.OrderItem{}).
		Select("SUM(tb_order_item.price * tb_order_item.quantity)").
		Joins("JOIN tb_order ON tb_order.id = tb_order_item.order_id").
		Where("tb_order.order_status <> ?", domain.OrderStatusWaitingPayment).
		Group("tb_order_item.order_id").
		Scan(&totals).Error
	if err != nil {
		return err
	}

	resp.PaidOrders = int64(len(totals))
	if len(totals) > 0 {
		resp.Revenue, _ = stats.Sum(totals)
		resp.AvgOrderValue, _ = stats.Mean(totals)
		resp.MedOrderValue, _ = stats.Median(totals)
	}
	return ok(c, resp)
}
