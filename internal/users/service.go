package users

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GuimaraesZ/workshop/internal/domain"
	"github.com/GuimaraesZ/workshop/internal/errs"
	"github.com/GuimaraesZ/workshop/pkg/common"
)

// UpdateInput is a partially-populated user update. Nil fields mean
// "no change"; identity, password and relations are deliberately absent.
type UpdateInput struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	StoreName    *string `json:"store_name"`
	ProfileImage *string `json:"profile_image"`
	BirthDate    *string `json:"birth_date"`
	Address      *string `json:"address"`
	HouseNumber  *string `json:"house_number"`
	Neighborhood *string `json:"neighborhood"`
	Complement   *string `json:"complement"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zip_code"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("user", id)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.ID = 0
	if user.Password != "" {
		hashed, err := common.HashPassword(user.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update overwrites only the fields present in the input. Omitted fields keep
// their stored value; id and password are never touched here.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.User, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mergeString(&user.Name, in.Name)
	mergeString(&user.Email, in.Email)
	mergeString(&user.Phone, in.Phone)
	mergeString(&user.StoreName, in.StoreName)
	mergeString(&user.ProfileImage, in.ProfileImage)
	mergeString(&user.BirthDate, in.BirthDate)
	mergeString(&user.Address, in.Address)
	mergeString(&user.HouseNumber, in.HouseNumber)
	mergeString(&user.Neighborhood, in.Neighborhood)
	mergeString(&user.Complement, in.Complement)
	mergeString(&user.City, in.City)
	mergeString(&user.State, in.State)
	mergeString(&user.ZipCode, in.ZipCode)

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user. Users still referenced by orders are protected and
// the call fails with a conflict.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}
	orders, err := s.repo.CountOrders(ctx, id)
	if err != nil {
		return err
	}
	if orders > 0 {
		return errs.Conflict("cannot delete user %d because there are related orders", id)
	}
	return s.repo.Delete(ctx, id)
}

// ChangePassword verifies the current password through bcrypt before storing
// the hash of the new one.
func (s *Service) ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !common.CheckPassword(user.Password, currentPassword) {
		return errs.Invalid("current password is incorrect")
	}
	if strings.TrimSpace(newPassword) == "" {
		return errs.Invalid("new password must not be empty")
	}
	if len(newPassword) < 6 {
		return errs.Invalid("new password must be at least 6 characters")
	}
	hashed, err := common.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	if err := s.repo.Save(ctx, user); err != nil {
		return err
	}
	zap.L().Info("user password changed", zap.Int64("user_id", id))
	return nil
}

// SetProfileImage persists the stored relative path of an uploaded image.
func (s *Service) SetProfileImage(ctx context.Context, id int64, imageUrl string) (*domain.User, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.ProfileImage = imageUrl
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func mergeString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
