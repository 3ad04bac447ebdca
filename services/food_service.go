package services

import (
	"context"
	"gin-fooddelivery/apperrors"
	"gin-fooddelivery/cache"
	"gin-fooddelivery/constants"
	"gin-fooddelivery/dto"
	"gin-fooddelivery/logging"
	"gin-fooddelivery/models"
	"gin-fooddelivery/repositories"
	"gin-fooddelivery/storage"
	"sort"
	"strings"
)

type IFoodService interface {
	FindAll(ctx context.Context) ([]models.Food, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, input dto.CreateFoodInput, image *ImageUpload) (*models.Food, error)
	UpdateCategory(ctx context.Context, id string, category string) error
	Delete(ctx context.Context, id string) error
}

type FoodService struct {
	repository repositories.IFoodRepository
	categories repositories.ICategoryRepository
	images     storage.ImageStore
	cache      cache.Store
	logger     logging.Logger
}

func NewFoodService(
	repository repositories.IFoodRepository,
	categories repositories.ICategoryRepository,
	images storage.ImageStore,
	c cache.Store,
	logger logging.Logger,
) IFoodService {
	return &FoodService{
		repository: repository,
		categories: categories,
		images:     images,
		cache:      orNoCache(c),
		logger:     logger.With("component", "food"),
	}
}

func (s *FoodService) FindAll(ctx context.Context) ([]models.Food, error) {
	return cachedList(ctx, s.cache, foodsCacheKey, func() ([]models.Food, error) {
		return s.repository.FindAll(ctx)
	})
}

// Categories は登録済みカテゴリと料理が使っているカテゴリ名の和集合を返す。
func (s *FoodService) Categories(ctx context.Context) ([]string, error) {
	return cachedList(ctx, s.cache, foodCategoriesKey, func() ([]string, error) {
		categories, err := s.categories.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		used, err := s.repository.DistinctCategories(ctx)
		if err != nil {
			return nil, err
		}

		seen := make(map[string]struct{}, len(categories)+len(used))
		names := make([]string, 0, len(categories)+len(used))
		add := func(name string) {
			if name == "" {
				return
			}
			if _, ok := seen[name]; ok {
				return
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
		for _, c := range categories {
			add(c.Name)
		}
		for _, name := range used {
			add(name)
		}
		sort.Strings(names)
		return names, nil
	})
}

// Create はカテゴリの存在を確認しない。Food.Category は名前のコピーとして保存される。
func (s *FoodService) Create(ctx context.Context, input dto.CreateFoodInput, image *ImageUpload) (*models.Food, error) {
	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)
	switch {
	case name == "":
		return nil, apperrors.Validation(constants.ErrFoodNameRequired)
	case input.Price <= 0:
		return nil, apperrors.Validation(constants.ErrInvalidPrice)
	case category == "":
		return nil, apperrors.Validation(constants.ErrCategoryNameRequired)
	case image == nil:
		return nil, apperrors.Validation(constants.ErrImageRequired)
	}

	stored, err := saveImage(ctx, s.images, image)
	if err != nil {
		return nil, err
	}

	food := models.Food{
		Name:        name,
		Description: input.Description,
		Price:       input.Price,
		Category:    category,
		Image:       stored,
	}
	if err := s.repository.Create(ctx, &food); err != nil {
		removeImage(ctx, s.images, s.logger, stored)
		return nil, err
	}

	s.invalidate(ctx)
	return &food, nil
}

// UpdateCategory は料理を別のカテゴリ名に付け替える。
func (s *FoodService) UpdateCategory(ctx context.Context, id string, category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return apperrors.Validation(constants.ErrCategoryNameRequired)
	}
	if err := s.repository.UpdateCategory(ctx, id, category); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FoodService) Delete(ctx context.Context, id string) error {
	food, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	removeImage(ctx, s.images, s.logger, food.Image)

	if err := s.repository.Delete(ctx, food.ID); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FoodService) invalidate(ctx context.Context) {
	_ = s.cache.Delete(ctx, foodsCacheKey, foodCategoriesKey)
}
