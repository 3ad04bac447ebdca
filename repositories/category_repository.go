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

type ICategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id string) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	UpdateImage(ctx context.Context, id string, image string) error
	Delete(ctx context.Context, id string) error
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) ICategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	result := r.db.WithContext(ctx).First(&category, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(constants.ErrCategoryNotFound)
		}
		return nil, fmt.Errorf("find category: %w", result.Error)
	}
	return &category, nil
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	result := r.db.WithContext(ctx).First(&category, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(constants.ErrCategoryNotFound)
		}
		return nil, fmt.Errorf("find category by name: %w", result.Error)
	}
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) UpdateImage(ctx context.Context, id string, image string) error {
	result := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Update("image", image)
	if result.Error != nil {
		return fmt.Errorf("update category image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(constants.ErrCategoryNotFound)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(constants.ErrCategoryNotFound)
	}
	return nil
}
