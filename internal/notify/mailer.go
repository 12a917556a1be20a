package notify

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/GuimaraesZ/workshop/config"
	"github.com/GuimaraesZ/workshop/internal/domain"
)

// Mailer sends transactional store mail. Without SMTP configuration every
// send becomes a no-op, so the rest of the application never checks.
type Mailer struct {
	cfg config.SmtpConfig
}

func NewMailer(cfg config.SmtpConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) enabled() bool {
	return m.cfg.Host != "" && m.cfg.From != ""
}

func (m *Mailer) send(to, subject, body string) {
	if !m.enabled() || to == "" {
		return
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		zap.L().Error("failed to send mail", zap.String("to", to), zap.Error(err))
		return
	}
	zap.L().Info("mail sent", zap.String("to", to), zap.String("subject", subject))
}

// SendWelcome greets a freshly registered user.
func (m *Mailer) SendWelcome(user *domain.User) {
	m.send(user.Email, "Welcome to the store",
		fmt.Sprintf("Hello %s, your account was created successfully.", user.Name))
}

// SendOrderConfirmation confirms a placed order to its client.
func (m *Mailer) SendOrderConfirmation(order *domain.Order) {
	if order.Client == nil {
		return
	}
	m.send(order.Client.Email, fmt.Sprintf("Order ORD-%05d received", order.ID),
		fmt.Sprintf("Hello %s, we received your order of %.2f and it is waiting for payment.",
			order.Client.Name, order.Total()))
}
