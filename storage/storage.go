// Package storage はアップロード画像の保存先を抽象化する。
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidName = errors.New("invalid image name")

// ImageStore は画像の保存と削除を行う。
type ImageStore interface {
	Save(ctx context.Context, name string, r io.Reader) error
	Delete(ctx context.Context, name string) error
}

// URLSigner は画像を直接配信できない保存先で、取得用のURLを発行する。
type URLSigner interface {
	URL(ctx context.Context, name string) (string, error)
}

// NewImageName はUUIDと元のファイル名から保存名を作る。同じファイル名でも呼び出しごとに別の名前になる。
func NewImageName(original string) string {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	base = strings.ReplaceAll(base, " ", "_")
	if base == "." || base == "/" {
		base = "image"
	}
	return uuid.NewString() + "-" + base
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
