package app

import (
	"fmt"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/GuimaraesZ/workshop/internal/auth"
	"github.com/GuimaraesZ/workshop/internal/domain"
	"github.com/GuimaraesZ/workshop/internal/orders"
	"github.com/GuimaraesZ/workshop/pkg/common"
)

// initEvents wires the in-process bus. Subscribers run async so a slow SMTP
// server never blocks a request handler.
func (a *Application) initEvents() {
	a.bus = EventBus.New()

	_ = a.bus.SubscribeAsync(orders.TopicOrderCreated, func(order *domain.Order) {
		a.audit("system", "order.created",
			fmt.Sprintf("order ORD-%05d created, total %.2f", order.ID, order.Total()))
		a.mailer.SendOrderConfirmation(order)
	}, false)

	_ = a.bus.SubscribeAsync(orders.TopicOrderPaid, func(order *domain.Order) {
		method := ""
		if order.Payment != nil {
			method = order.Payment.Method
		}
		a.audit("system", "order.paid",
			fmt.Sprintf("order ORD-%05d paid via %s", order.ID, method))
	}, false)

	_ = a.bus.SubscribeAsync(auth.TopicUserRegistered, func(user *domain.User) {
		a.audit(user.Email, "user.registered",
			fmt.Sprintf("user %s registered", user.Email))
		a.mailer.SendWelcome(user)
	}, false)
}

func (a *Application) audit(actor, action, detail string) {
	row := domain.AuditLog{
		ID:     common.UUIDint64(),
		Actor:  actor,
		Action: action,
		Detail: detail,
	}
	if err := a.gormDB.Create(&row).Error; err != nil {
		zap.L().Error("failed to write audit log", zap.String("action", action), zap.Error(err))
	}
}
