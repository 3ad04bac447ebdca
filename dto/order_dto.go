package dto

import "gin-fooddelivery/models"

type CartItemInput struct {
	ItemID string `json:"itemId"`
}

// PlaceOrderInput の amount はクライアントで計算された合計金額。
type PlaceOrderInput struct {
	Items   []models.OrderItem `json:"items"`
	Amount  float64            `json:"amount"`
	Address models.Address     `json:"address"`
}

type VerifyOrderInput struct {
	OrderID string `json:"orderId"`
	Success string `json:"success"`
}

type UpdateStatusInput struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}
