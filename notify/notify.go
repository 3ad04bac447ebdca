// Package notify は新規注文を管理者に知らせる。
package notify

import (
	"context"
	"fmt"
	"gin-fooddelivery/models"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Notifier interface {
	OrderPlaced(ctx context.Context, order *models.Order) error
}

// Noop は通知を無効にする。
type Noop struct{}

func (Noop) OrderPlaced(ctx context.Context, order *models.Order) error { return nil }

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram は管理者チャットに注文内容を送る。
type Telegram struct {
	bot    sender
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &Telegram{bot: bot, chatID: chatID}, nil
}

func (t *Telegram) OrderPlaced(ctx context.Context, order *models.Order) error {
	msg := tgbotapi.NewMessage(t.chatID, FormatOrder(order))
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("send order %s: %w", order.ID, err)
	}
	return nil
}

func FormatOrder(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order %s\n", order.ID)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %s x%d\n", item.Name, item.Quantity)
	}
	fmt.Fprintf(&b, "Total: %.2f\n", order.Amount)
	if order.Payment {
		b.WriteString("Payment: paid\n")
	} else {
		b.WriteString("Payment: pending\n")
	}
	a := order.Address
	fmt.Fprintf(&b, "%s %s, %s, %s, %s", a.FirstName, a.LastName, a.Street, a.City, a.Phone)
	return b.String()
}
