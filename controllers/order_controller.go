package controllers

import (
	"gin-fooddelivery/constants"
	"gin-fooddelivery/dto"
	"gin-fooddelivery/logging"
	"gin-fooddelivery/services"

	"github.com/gin-gonic/gin"
)

type IOrderController interface {
	Place(ctx *gin.Context)
	PlaceCOD(ctx *gin.Context)
	Verify(ctx *gin.Context)
	UserOrders(ctx *gin.Context)
	List(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
}

type OrderController struct {
	service services.IOrderService
	logger  logging.Logger
}

func NewOrderController(service services.IOrderService, logger logging.Logger) IOrderController {
	return &OrderController{service: service, logger: logger}
}

func (c *OrderController) Place(ctx *gin.Context) {
	c.place(ctx, false)
}

func (c *OrderController) PlaceCOD(ctx *gin.Context) {
	c.place(ctx, true)
}

func (c *OrderController) place(ctx *gin.Context, cashOnDelivery bool) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	var input dto.PlaceOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondFail(ctx, constants.ErrInvalidInput)
		return
	}

	order, err := c.service.Place(ctx.Request.Context(), id.SubjectID, input, cashOnDelivery)
	if err != nil {
		respondError(ctx, c.logger, err, constants.ErrUnexpected)
		return
	}
	respondOK(ctx, "Order Placed", order)
}

// Verify は決済結果を受け取る。success が "true" 以外の場合は注文を取り消す。
func (c *OrderController) Verify(ctx *gin.Context) {
	var input dto.VerifyOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondFail(ctx, constants.ErrInvalidInput)
		return
	}

	paid := input.Success == "true"
	if err := c.service.Verify(ctx.Request.Context(), input.OrderID, paid); err != nil {
		respondError(ctx, c.logger, err, constants.ErrUnexpected)
		return
	}
	if paid {
		respondOK(ctx, "Paid", nil)
		return
	}
	respondFail(ctx, "Not Paid")
}

func (c *OrderController) UserOrders(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	orders, err := c.service.UserOrders(ctx.Request.Context(), id.SubjectID)
	if err != nil {
		respondError(ctx, c.logger, err, constants.ErrUnexpected)
		return
	}
	respondOK(ctx, "", orders)
}

func (c *OrderController) List(ctx *gin.Context) {
	orders, err := c.service.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, err, constants.ErrUnexpected)
		return
	}
	respondOK(ctx, "", orders)
}

func (c *OrderController) UpdateStatus(ctx *gin.Context) {
	var input dto.UpdateStatusInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondFail(ctx, constants.ErrInvalidInput)
		return
	}

	if err := c.service.UpdateStatus(ctx.Request.Context(), input.OrderID, input.Status); err != nil {
		respondError(ctx, c.logger, err, constants.ErrUnexpected)
		return
	}
	respondOK(ctx, "Status Updated", nil)
}
