package services

import (
	"context"
	"errors"
	"gin-fooddelivery/apperrors"
	"gin-fooddelivery/cache"
	"gin-fooddelivery/constants"
	"gin-fooddelivery/logging"
	"gin-fooddelivery/models"
	"gin-fooddelivery/repositories"
	"gin-fooddelivery/storage"
	"strings"
)

// FoodReferenceCounter はカテゴリを参照している料理の数を返す。
// 現在の参照はカテゴリ名の文字列一致であり、IDによる参照に置き換える場合はここを差し替える。
type FoodReferenceCounter interface {
	CountByCategory(ctx context.Context, category string) (int64, error)
}

type ICategoryService interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, name string, image *ImageUpload) (*models.Category, error)
	UpdateImage(ctx context.Context, id string, image *ImageUpload) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService struct {
	repository repositories.ICategoryRepository
	foods      FoodReferenceCounter
	images     storage.ImageStore
	cache      cache.Store
	logger     logging.Logger
}

func NewCategoryService(
	repository repositories.ICategoryRepository,
	foods FoodReferenceCounter,
	images storage.ImageStore,
	c cache.Store,
	logger logging.Logger,
) ICategoryService {
	return &CategoryService{
		repository: repository,
		foods:      foods,
		images:     images,
		cache:      orNoCache(c),
		logger:     logger.With("component", "category"),
	}
}

func (s *CategoryService) FindAll(ctx context.Context) ([]models.Category, error) {
	return cachedList(ctx, s.cache, categoriesCacheKey, func() ([]models.Category, error) {
		return s.repository.FindAll(ctx)
	})
}

func (s *CategoryService) Create(ctx context.Context, name string, image *ImageUpload) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation(constants.ErrCategoryNameRequired)
	}

	if _, err := s.repository.FindByName(ctx, name); err == nil {
		return nil, apperrors.Conflict(constants.ErrCategoryExists)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	category := models.Category{Name: name}
	if image != nil {
		stored, err := saveImage(ctx, s.images, image)
		if err != nil {
			return nil, err
		}
		category.Image = stored
	}

	if err := s.repository.Create(ctx, &category); err != nil {
		removeImage(ctx, s.images, s.logger, category.Image)
		return nil, err
	}

	s.invalidate(ctx)
	return &category, nil
}

// UpdateImage は画像を差し替え、古い画像の削除を試みる。
func (s *CategoryService) UpdateImage(ctx context.Context, id string, image *ImageUpload) (*models.Category, error) {
	if image == nil {
		return nil, apperrors.Validation(constants.ErrImageRequired)
	}

	category, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stored, err := saveImage(ctx, s.images, image)
	if err != nil {
		return nil, err
	}
	if err := s.repository.UpdateImage(ctx, category.ID, stored); err != nil {
		removeImage(ctx, s.images, s.logger, stored)
		return nil, err
	}
	removeImage(ctx, s.images, s.logger, category.Image)

	category.Image = stored
	s.invalidate(ctx)
	return category, nil
}

// Delete はカテゴリを参照している料理が無い場合のみ削除する。
// 参照チェックと削除は同一トランザクションではない。
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.Validation(constants.ErrCategoryIDRequired)
	}

	category, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.foods.CountByCategory(ctx, category.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return &apperrors.CategoryInUseError{Name: category.Name, Count: count}
	}

	removeImage(ctx, s.images, s.logger, category.Image)

	if err := s.repository.Delete(ctx, category.ID); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CategoryService) invalidate(ctx context.Context) {
	_ = s.cache.Delete(ctx, categoriesCacheKey, foodCategoriesKey)
}
