package controllers

import (
	"gin-fooddelivery/constants"
	"gin-fooddelivery/dto"
	"gin-fooddelivery/logging"
	"gin-fooddelivery/services"

	"github.com/gin-gonic/gin"
)

type ICartController interface {
	Add(ctx *gin.Context)
	Remove(ctx *gin.Context)
	Get(ctx *gin.Context)
}

type CartController struct {
	service services.ICartService
	logger  logging.Logger
}

func NewCartController(service services.ICartService, logger logging.Logger) ICartController {
	return &CartController{service: service, logger: logger}
}

func (c *CartController) Add(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	var input dto.CartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondFail(ctx, constants.ErrInvalidInput)
		return
	}

	if err := c.service.Add(ctx.Request.Context(), id.SubjectID, input.ItemID); err != nil {
		respondError(ctx, c.logger, err, constants.ErrUnexpected)
		return
	}
	respondOK(ctx, "Added To Cart", nil)
}

func (c *CartController) Remove(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	var input dto.CartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondFail(ctx, constants.ErrInvalidInput)
		return
	}

	if err := c.service.Remove(ctx.Request.Context(), id.SubjectID, input.ItemID); err != nil {
		respondError(ctx, c.logger, err, constants.ErrUnexpected)
		return
	}
	respondOK(ctx, "Removed From Cart", nil)
}

func (c *CartController) Get(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	cart, err := c.service.Get(ctx.Request.Context(), id.SubjectID)
	if err != nil {
		respondError(ctx, c.logger, err, constants.ErrUnexpected)
		return
	}
	respondOK(ctx, "", cart)
}
