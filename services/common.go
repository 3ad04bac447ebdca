package services

import (
	"context"
	"encoding/json"
	"gin-fooddelivery/cache"
	"gin-fooddelivery/logging"
	"gin-fooddelivery/storage"
	"io"
	"time"
)

const (
	categoriesCacheKey = "categories:list"
	foodsCacheKey      = "foods:list"
	foodCategoriesKey  = "foods:categories"
	listCacheTTL       = 5 * time.Minute
)

// ImageUpload はアップロードされた画像ファイル。
type ImageUpload struct {
	Filename string
	Body     io.Reader
}

func orNoCache(c cache.Store) cache.Store {
	if c == nil {
		return (*cache.Client)(nil)
	}
	return c
}

// cachedList はキャッシュにあればそれを返し、無ければloadした結果を保存する。
func cachedList[T any](ctx context.Context, c cache.Store, key string, load func() ([]T, error)) ([]T, error) {
	if raw, _ := c.Get(ctx, key); raw != nil {
		var items []T
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
	}

	items, err := load()
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(items); err == nil {
		_ = c.Set(ctx, key, raw, listCacheTTL)
	}
	return items, nil
}

// saveImage は新しい保存名で画像を保存し、その名前を返す。
func saveImage(ctx context.Context, images storage.ImageStore, upload *ImageUpload) (string, error) {
	name := storage.NewImageName(upload.Filename)
	if err := images.Save(ctx, name, upload.Body); err != nil {
		return "", err
	}
	return name, nil
}

// removeImage は画像の削除を試みる。失敗してもログに残すだけで処理は続ける。
func removeImage(ctx context.Context, images storage.ImageStore, logger logging.Logger, name string) {
	if name == "" {
		return
	}
	if err := images.Delete(ctx, name); err != nil {
		logger.Warn(ctx, "failed to delete image", "image", name, "err", err)
	}
}
