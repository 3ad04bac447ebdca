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

type IFoodRepository interface {
	FindAll(ctx context.Context) ([]models.Food, error)
	FindByID(ctx context.Context, id string) (*models.Food, error)
	Create(ctx context.Context, food *models.Food) error
	Delete(ctx context.Context, id string) error
	UpdateCategory(ctx context.Context, id string, category string) error
	CountByCategory(ctx context.Context, category string) (int64, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

type FoodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) IFoodRepository {
	return &FoodRepository{db: db}
}

func (r *FoodRepository) FindAll(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	if err := r.db.WithContext(ctx).Order("created_at").Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("find foods: %w", err)
	}
	return foods, nil
}

func (r *FoodRepository) FindByID(ctx context.Context, id string) (*models.Food, error) {
	var food models.Food
	result := r.db.WithContext(ctx).First(&food, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(constants.ErrFoodNotFound)
		}
		return nil, fmt.Errorf("find food: %w", result.Error)
	}
	return &food, nil
}

func (r *FoodRepository) Create(ctx context.Context, food *models.Food) error {
	if err := r.db.WithContext(ctx).Create(food).Error; err != nil {
		return fmt.Errorf("create food: %w", err)
	}
	return nil
}

func (r *FoodRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Food{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete food: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(constants.ErrFoodNotFound)
	}
	return nil
}

func (r *FoodRepository) UpdateCategory(ctx context.Context, id string, category string) error {
	result := r.db.WithContext(ctx).Model(&models.Food{}).Where("id = ?", id).Update("category", category)
	if result.Error != nil {
		return fmt.Errorf("update food category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(constants.ErrFoodNotFound)
	}
	return nil
}

// CountByCategory はカテゴリ名の完全一致（大文字小文字を区別）で数える。
func (r *FoodRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Food{}).Where("category = ?", category).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("count foods by category: %w", result.Error)
	}
	return count, nil
}

func (r *FoodRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var names []string
	result := r.db.WithContext(ctx).Model(&models.Food{}).Distinct().Pluck("category", &names)
	if result.Error != nil {
		return nil, fmt.Errorf("distinct food categories: %w", result.Error)
	}
	return names, nil
}
