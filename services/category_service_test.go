package services

import (
	"context"
	"encoding/json"
	"gin-fooddelivery/apperrors"
	"gin-fooddelivery/constants"
	"gin-fooddelivery/logging"
	"gin-fooddelivery/models"
	"gin-fooddelivery/repositories"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type categoryFixture struct {
	db         *gorm.DB
	svc        ICategoryService
	foods      IFoodService
	categories repositories.ICategoryRepository
	foodRepo   repositories.IFoodRepository
	images     *fakeImageStore
	cache      *fakeCache
}

func newCategoryFixture(t *testing.T) *categoryFixture {
	t.Helper()
	db := newTestDB(t)
	f := &categoryFixture{
		db:         db,
		categories: repositories.NewCategoryRepository(db),
		foodRepo:   repositories.NewFoodRepository(db),
		images:     newFakeImageStore(),
		cache:      newFakeCache(),
	}
	f.svc = NewCategoryService(f.categories, f.foodRepo, f.images, f.cache, logging.Discard())
	f.foods = NewFoodService(f.foodRepo, f.categories, f.images, f.cache, logging.Discard())
	return f
}

func (f *categoryFixture) addFoods(t *testing.T, category string, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		food := models.Food{Name: "item", Price: 10, Category: category}
		require.NoError(t, f.foodRepo.Create(context.Background(), &food))
		ids = append(ids, food.ID)
	}
	return ids
}

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()
	f := newCategoryFixture(t)

	c, err := f.svc.Create(ctx, "  Salad ", &ImageUpload{Filename: "salad.png", Body: strings.NewReader("img")})
	require.NoError(t, err)
	assert.Equal(t, "Salad", c.Name)
	assert.True(t, strings.HasSuffix(c.Image, "salad.png"))
	assert.Equal(t, "img", f.images.saved[c.Image])

	noImage, err := f.svc.Create(ctx, "Noodles", nil)
	require.NoError(t, err)
	assert.Empty(t, noImage.Image)

	_, err = f.svc.Create(ctx, "Salad", nil)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.EqualError(t, err, constants.ErrCategoryExists)

	_, err = f.svc.Create(ctx, "   ", nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCategoryService_FindAll_SortedAndCached(t *testing.T) {
	ctx := context.Background()
	f := newCategoryFixture(t)

	for _, name := range []string{"Salad", "Desserts", "Noodles"} {
		_, err := f.svc.Create(ctx, name, nil)
		require.NoError(t, err)
	}

	list, err := f.svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Desserts", list[0].Name)
	assert.Equal(t, "Salad", list[2].Name)

	var cached []models.Category
	require.NoError(t, json.Unmarshal(f.cache.values[categoriesCacheKey], &cached))
	assert.Len(t, cached, 3)

	_, err = f.svc.Create(ctx, "Pasta", nil)
	require.NoError(t, err)
	assert.NotContains(t, f.cache.values, categoriesCacheKey)

	list, err = f.svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 4)
}

func TestCategoryService_Delete_NoReferences(t *testing.T) {
	ctx := context.Background()
	f := newCategoryFixture(t)

	c, err := f.svc.Create(ctx, "Soups", &ImageUpload{Filename: "soup.png", Body: strings.NewReader("img")})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, c.ID))
	assert.Equal(t, []string{c.Image}, f.images.deleted)
	assert.NotContains(t, f.images.saved, c.Image)

	_, err = f.categories.FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCategoryService_Delete_BlockedByReferences(t *testing.T) {
	ctx := context.Background()
	f := newCategoryFixture(t)

	c, err := f.svc.Create(ctx, "Main Course", &ImageUpload{Filename: "main.png", Body: strings.NewReader("img")})
	require.NoError(t, err)
	f.addFoods(t, "Main Course", 3)

	err = f.svc.Delete(ctx, c.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "3")
	assert.Equal(t, "Cannot delete category. 3 food item(s) are using this category. Please reassign or delete those items first.", err.Error())

	// 何も削除されていない
	assert.Empty(t, f.images.deleted)
	still, err := f.categories.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Image, still.Image)
	count, err := f.foodRepo.CountByCategory(ctx, "Main Course")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

// 参照はカテゴリ名の完全一致（大文字小文字を区別）で判定される。
func TestCategoryService_Delete_ReferenceMatchIsExact(t *testing.T) {
	ctx := context.Background()
	f := newCategoryFixture(t)

	c, err := f.svc.Create(ctx, "Dessert", nil)
	require.NoError(t, err)
	f.addFoods(t, "dessert", 2)
	f.addFoods(t, "Desserts", 1)

	assert.NoError(t, f.svc.Delete(ctx, c.ID))
}

func TestCategoryService_Delete_ReassignThenDelete(t *testing.T) {
	ctx := context.Background()
	f := newCategoryFixture(t)

	c, err := f.svc.Create(ctx, "Desserts", nil)
	require.NoError(t, err)
	ids := f.addFoods(t, "Desserts", 2)

	err = f.svc.Delete(ctx, c.ID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "2 food item(s)")

	for _, id := range ids {
		require.NoError(t, f.foods.UpdateCategory(ctx, id, "Sweets"))
	}

	require.NoError(t, f.svc.Delete(ctx, c.ID))
	_, err = f.categories.FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCategoryService_Delete_ImageFailureIsIgnored(t *testing.T) {
	ctx := context.Background()
	f := newCategoryFixture(t)

	c, err := f.svc.Create(ctx, "Rolls", &ImageUpload{Filename: "rolls.png", Body: strings.NewReader("img")})
	require.NoError(t, err)
	f.images.deleteErr = errBoom

	require.NoError(t, f.svc.Delete(ctx, c.ID))
	_, err = f.categories.FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCategoryService_Delete_NotFoundAndMissingID(t *testing.T) {
	f := newCategoryFixture(t)

	err := f.svc.Delete(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.EqualError(t, err, constants.ErrCategoryNotFound)

	err = f.svc.Delete(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.EqualError(t, err, constants.ErrCategoryIDRequired)
}

// カテゴリ名を変えても料理のカテゴリ文字列は追従しない（既知の制約）。
func TestCategoryService_RenameDoesNotCascade(t *testing.T) {
	ctx := context.Background()
	f := newCategoryFixture(t)

	c, err := f.svc.Create(ctx, "Sandwich", nil)
	require.NoError(t, err)
	f.addFoods(t, "Sandwich", 1)

	c.Name = "Sandwiches"
	require.NoError(t, f.db.Save(c).Error)

	// 料理は古い名前を持ち続けるため、削除はブロックされない
	assert.NoError(t, f.svc.Delete(ctx, c.ID))
	count, err := f.foodRepo.CountByCategory(ctx, "Sandwich")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCategoryService_UpdateImage(t *testing.T) {
	ctx := context.Background()
	f := newCategoryFixture(t)

	c, err := f.svc.Create(ctx, "Pasta", &ImageUpload{Filename: "old.png", Body: strings.NewReader("old")})
	require.NoError(t, err)
	oldImage := c.Image

	updated, err := f.svc.UpdateImage(ctx, c.ID, &ImageUpload{Filename: "new.png", Body: strings.NewReader("new")})
	require.NoError(t, err)
	assert.NotEqual(t, oldImage, updated.Image)
	assert.Equal(t, []string{oldImage}, f.images.deleted)

	stored, err := f.categories.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Image, stored.Image)

	_, err = f.svc.UpdateImage(ctx, c.ID, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = f.svc.UpdateImage(ctx, "missing", &ImageUpload{Filename: "x.png", Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
