// Package apperrors はアプリケーション全体で使うエラー分類を定義する。
package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal error")
)

// Error は分類(Kind)とクライアントに返すメッセージを持つ。
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string) *Error   { return New(ErrValidation, message) }
func NotFound(message string) *Error     { return New(ErrNotFound, message) }
func Conflict(message string) *Error     { return New(ErrConflict, message) }
func Unauthorized(message string) *Error { return New(ErrUnauthorized, message) }
func Forbidden(message string) *Error    { return New(ErrForbidden, message) }

// CategoryInUseError はカテゴリを参照している料理が残っている場合に返される。
type CategoryInUseError struct {
	Name  string
	Count int64
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("Cannot delete category. %d food item(s) are using this category. Please reassign or delete those items first.", e.Count)
}

func (e *CategoryInUseError) Unwrap() error {
	return ErrConflict
}

// ClientMessage はクライアントに見せてよいメッセージを返す。
// 分類されていないエラーや内部エラーの場合は ok=false。
func ClientMessage(err error) (string, bool) {
	if err == nil || errors.Is(err, ErrInternal) {
		return "", false
	}
	var inUse *CategoryInUseError
	if errors.As(err, &inUse) {
		return inUse.Error(), true
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message, true
	}
	return "", false
}
