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

type IOrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByUser(ctx context.Context, userID string) ([]models.Order, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	MarkPaid(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).Order("date").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("find user orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	return r.update(ctx, id, "status", status)
}

func (r *OrderRepository) MarkPaid(ctx context.Context, id string) error {
	return r.update(ctx, id, "payment", true)
}

func (r *OrderRepository) update(ctx context.Context, id string, column string, value interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return fmt.Errorf("update order %s: %w", column, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(constants.ErrOrderNotFound)
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(constants.ErrOrderNotFound)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	result := r.db.WithContext(ctx).First(&order, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(constants.ErrOrderNotFound)
		}
		return nil, fmt.Errorf("find order: %w", result.Error)
	}
	return &order, nil
}
