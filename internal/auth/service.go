package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GuimaraesZ/workshop/internal/domain"
	"github.com/GuimaraesZ/workshop/internal/errs"
	"github.com/GuimaraesZ/workshop/internal/users"
	"github.com/GuimaraesZ/workshop/pkg/common"
)

const TopicUserRegistered = "user.registered"

// EventPublisher decouples the service from the process event bus.
type EventPublisher interface {
	Publish(topic string, args ...interface{})
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, ...interface{}) {}

// Service authenticates and registers store users and issues signed,
// expiring bearer tokens.
type Service struct {
	repo     users.Repository
	secret   []byte
	tokenTTL time.Duration
	events   EventPublisher
}

func NewService(repo users.Repository, secret string) *Service {
	return &Service{
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: 24 * time.Hour,
		events:   noopPublisher{},
	}
}

func (s *Service) WithEvents(pub EventPublisher) *Service {
	if pub != nil {
		s.events = pub
	}
	return s
}

// Authenticate verifies email and password. Unknown email and wrong password
// fail with the same error, so callers cannot tell the two apart.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		zap.L().Info("login rejected", zap.String("email", email))
		return nil, errs.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if !common.CheckPassword(user.Password, password) {
		zap.L().Info("login rejected", zap.String("email", email))
		return nil, errs.ErrUnauthorized
	}
	return user, nil
}

// Register creates a new user with a hashed password. Fails when the email
// is already registered.
func (s *Service) Register(ctx context.Context, name, email, phone, password string) (*domain.User, error) {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, errs.Invalid("email %s is already registered", email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: hashed,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	zap.L().Info("user registered", zap.Int64("user_id", user.ID), zap.String("email", email))
	s.events.Publish(TopicUserRegistered, user)
	return user, nil
}

type tokenClaims struct {
	UserID int64  `json:"uid"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed, expiring HS256 token for a user.
func (s *Service) GenerateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: user.ID,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        common.UUIDBase32(),
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken validates a token and returns the embedded user id.
func (s *Service) ParseToken(tokenString string) (int64, error) {
	claims := new(tokenClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, errs.ErrUnauthorized
	}
	return claims.UserID, nil
}
