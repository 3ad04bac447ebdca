package repositories

import (
	"context"
	"errors"
	"fmt"
	"gin-fooddelivery/apperrors"
	"gin-fooddelivery/constants"
	"gin-fooddelivery/models"

	"gorm.io/gorm"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	UpdateCart(ctx context.Context, id string, cart map[string]int) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.CartData == nil {
		user.CartData = map[string]int{}
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindByEmail は正規化済みのメールアドレスで検索する。
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(constants.ErrUserNotFound)
		}
		return nil, fmt.Errorf("find user by email: %w", result.Error)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(constants.ErrUserNotFound)
		}
		return nil, fmt.Errorf("find user by id: %w", result.Error)
	}
	return &user, nil
}

func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdateCart(ctx context.Context, id string, cart map[string]int) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{Base: models.Base{ID: id}}).
		Select("cart_data").
		Updates(&models.User{CartData: cart})
	if result.Error != nil {
		return fmt.Errorf("update cart: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(constants.ErrUserNotFound)
	}
	return nil
}
