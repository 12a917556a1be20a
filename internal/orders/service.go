package orders

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GuimaraesZ/workshop/internal/domain"
	"github.com/GuimaraesZ/workshop/internal/errs"
)

// EventPublisher decouples the service from the process event bus.
type EventPublisher interface {
	Publish(topic string, args ...interface{})
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, ...interface{}) {}

const (
	TopicOrderCreated = "order.created"
	TopicOrderPaid    = "order.paid"
)

type Service struct {
	repo   Repository
	events EventPublisher
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, events: noopPublisher{}}
}

// WithEvents attaches an event publisher; order lifecycle events are
// published after the surrounding transaction commits.
func (s *Service) WithEvents(pub EventPublisher) *Service {
	if pub != nil {
		s.events = pub
	}
	return s
}

func (s *Service) FindAll(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) FindByClientID(ctx context.Context, clientID int64) ([]domain.Order, error) {
	return s.repo.ListByClient(ctx, clientID)
}

func (s *Service) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("order", id)
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Create persists an order and its items in one transaction. A missing user
// or product aborts everything; no partial order survives.
func (s *Service) Create(ctx context.Context, userID int64, req *CreateRequest) (*Response, error) {
	if len(req.Items) == 0 {
		return nil, errs.Invalid("order must have at least one item")
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, errs.Invalid("item quantity must be at least 1")
		}
		if item.Price < 0 {
			return nil, errs.Invalid("item price must not be negative")
		}
	}

	var created *domain.Order
	err := s.repo.InTx(ctx, func(tx Repository) error {
		user, err := tx.GetUser(ctx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("user", userID)
		}
		if err != nil {
			return err
		}

		order := &domain.Order{
			Moment:   time.Now().UTC(),
			Status:   domain.OrderStatusWaitingPayment,
			ClientID: user.ID,
		}
		// Persist first: the item key embeds the order id.
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}

		for _, line := range req.Items {
			product, err := tx.GetProduct(ctx, line.ProductID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("product", line.ProductID)
			}
			if err != nil {
				return err
			}
			item := domain.OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  line.Quantity,
				Price:     line.Price,
			}
			if err := tx.CreateItem(ctx, &item); err != nil {
				return err
			}
			item.Product = product
			order.Items = append(order.Items, item)
		}

		order.Client = user
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("order created",
		zap.Int64("order_id", created.ID),
		zap.Int64("client_id", userID),
		zap.Int("items", len(created.Items)),
		zap.Float64("total", created.Total()))
	s.events.Publish(TopicOrderCreated, created)

	return NewResponse(created).WithRequestMeta(req), nil
}

// Pay attaches the payment row to an order and moves it to PAID. Orders that
// already carry a payment are rejected with a conflict.
func (s *Service) Pay(ctx context.Context, id int64, method string) (*domain.Order, error) {
	var paid *domain.Order
	err := s.repo.InTx(ctx, func(tx Repository) error {
		order, err := tx.GetByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("order", id)
		}
		if err != nil {
			return err
		}
		if order.Payment != nil || order.Status != domain.OrderStatusWaitingPayment {
			return errs.Conflict("order %d is not waiting for payment", id)
		}
		payment := &domain.Payment{
			OrderID: order.ID,
			Moment:  time.Now().UTC(),
			Method:  method,
		}
		if err := tx.CreatePayment(ctx, payment); err != nil {
			return err
		}
		order.Status = domain.OrderStatusPaid
		if err := tx.SaveOrder(ctx, order); err != nil {
			return err
		}
		order.Payment = payment
		paid = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("order paid", zap.Int64("order_id", id), zap.String("method", method))
	s.events.Publish(TopicOrderPaid, paid)
	return paid, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
