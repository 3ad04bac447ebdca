package services

import (
	"context"
	"gin-fooddelivery/apperrors"
	"gin-fooddelivery/constants"
	"gin-fooddelivery/dto"
	"gin-fooddelivery/logging"
	"gin-fooddelivery/models"
	"gin-fooddelivery/notify"
	"gin-fooddelivery/repositories"
	"strings"
	"time"
)

var orderStatuses = map[string]struct{}{
	constants.OrderStatusProcessing: {},
	constants.OrderStatusDelivery:   {},
	constants.OrderStatusDelivered:  {},
}

type IOrderService interface {
	Place(ctx context.Context, userID string, input dto.PlaceOrderInput, cashOnDelivery bool) (*models.Order, error)
	Verify(ctx context.Context, orderID string, paid bool) error
	UserOrders(ctx context.Context, userID string) ([]models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status string) error
}

type OrderService struct {
	orders   repositories.IOrderRepository
	users    repositories.IUserRepository
	notifier notify.Notifier
	logger   logging.Logger
	now      func() time.Time
}

func NewOrderService(
	orders repositories.IOrderRepository,
	users repositories.IUserRepository,
	notifier notify.Notifier,
	logger logging.Logger,
) IOrderService {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &OrderService{
		orders:   orders,
		users:    users,
		notifier: notifier,
		logger:   logger.With("component", "order"),
		now:      time.Now,
	}
}

// Place は注文を作成しカートを空にする。
// 代引きの場合はすぐに管理者へ通知し、それ以外は支払い確認(Verify)を待つ。
func (s *OrderService) Place(ctx context.Context, userID string, input dto.PlaceOrderInput, cashOnDelivery bool) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperrors.Validation(constants.ErrEmptyOrder)
	}
	if input.Amount <= 0 {
		return nil, apperrors.Validation(constants.ErrInvalidAmount)
	}

	order := models.Order{
		UserID:  userID,
		Items:   input.Items,
		Amount:  input.Amount,
		Address: input.Address,
		Status:  constants.OrderStatusProcessing,
		Date:    s.now(),
		Payment: false,
	}
	if err := s.orders.Create(ctx, &order); err != nil {
		return nil, err
	}

	if err := s.users.UpdateCart(ctx, userID, map[string]int{}); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "order placed", "order", order.ID, "user", userID, "cod", cashOnDelivery)
	if cashOnDelivery {
		s.notify(ctx, &order)
	}
	return &order, nil
}

// Verify は支払い結果を反映する。失敗した場合は注文を削除する。
func (s *OrderService) Verify(ctx context.Context, orderID string, paid bool) error {
	if strings.TrimSpace(orderID) == "" {
		return apperrors.NotFound(constants.ErrOrderNotFound)
	}
	if !paid {
		if err := s.orders.Delete(ctx, orderID); err != nil {
			return err
		}
		s.logger.Info(ctx, "unpaid order cancelled", "order", orderID)
		return nil
	}

	if err := s.orders.MarkPaid(ctx, orderID); err != nil {
		return err
	}
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	s.notify(ctx, order)
	return nil
}

func (s *OrderService) UserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status string) error {
	if _, ok := orderStatuses[status]; !ok {
		return apperrors.Validation(constants.ErrInvalidStatus)
	}
	return s.orders.UpdateStatus(ctx, orderID, status)
}

func (s *OrderService) notify(ctx context.Context, order *models.Order) {
	if err := s.notifier.OrderPlaced(ctx, order); err != nil {
		s.logger.Warn(ctx, "failed to notify new order", "order", order.ID, "err", err)
	}
}
