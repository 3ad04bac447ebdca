package services

import (
	"context"
	"gin-fooddelivery/apperrors"
	"gin-fooddelivery/constants"
	"gin-fooddelivery/repositories"
	"strings"
)

type ICartService interface {
	Add(ctx context.Context, userID string, itemID string) error
	Remove(ctx context.Context, userID string, itemID string) error
	Get(ctx context.Context, userID string) (map[string]int, error)
}

// CartService はユーザーレコードに保存されたカート（料理ID→数量）を操作する。
type CartService struct {
	users repositories.IUserRepository
}

func NewCartService(users repositories.IUserRepository) ICartService {
	return &CartService{users: users}
}

func (s *CartService) Add(ctx context.Context, userID string, itemID string) error {
	return s.modify(ctx, userID, itemID, func(cart map[string]int, id string) {
		cart[id]++
	})
}

// Remove は数量を1減らす。0になった項目はカートから消す。
func (s *CartService) Remove(ctx context.Context, userID string, itemID string) error {
	return s.modify(ctx, userID, itemID, func(cart map[string]int, id string) {
		if cart[id] > 1 {
			cart[id]--
			return
		}
		delete(cart, id)
	})
}

func (s *CartService) Get(ctx context.Context, userID string) (map[string]int, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.CartData == nil {
		return map[string]int{}, nil
	}
	return user.CartData, nil
}

func (s *CartService) modify(ctx context.Context, userID string, itemID string, fn func(cart map[string]int, id string)) error {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return apperrors.Validation(constants.ErrItemIDRequired)
	}
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	fn(cart, itemID)
	return s.users.UpdateCart(ctx, userID, cart)
}
