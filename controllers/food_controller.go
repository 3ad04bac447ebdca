package controllers

import (
	"gin-fooddelivery/constants"
	"gin-fooddelivery/dto"
	"gin-fooddelivery/logging"
	"gin-fooddelivery/services"

	"github.com/gin-gonic/gin"
)

type IFoodController interface {
	List(ctx *gin.Context)
	Categories(ctx *gin.Context)
	Add(ctx *gin.Context)
	Remove(ctx *gin.Context)
	UpdateCategory(ctx *gin.Context)
}

type FoodController struct {
	service services.IFoodService
	logger  logging.Logger
}

func NewFoodController(service services.IFoodService, logger logging.Logger) IFoodController {
	return &FoodController{service: service, logger: logger}
}

func (c *FoodController) List(ctx *gin.Context) {
	foods, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, err, constants.ErrUnexpected)
		return
	}
	respondOK(ctx, "", foods)
}

func (c *FoodController) Categories(ctx *gin.Context) {
	names, err := c.service.Categories(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, err, constants.ErrFetchCategories)
		return
	}
	respondOK(ctx, "", names)
}

func (c *FoodController) Add(ctx *gin.Context) {
	var input dto.CreateFoodInput
	if err := ctx.ShouldBind(&input); err != nil {
		respondFail(ctx, constants.ErrInvalidInput)
		return
	}

	image, closeImage, err := formImage(ctx)
	if err != nil {
		respondError(ctx, c.logger, err, constants.ErrUnexpected)
		return
	}
	defer closeImage()

	food, err := c.service.Create(ctx.Request.Context(), input, image)
	if err != nil {
		respondError(ctx, c.logger, err, constants.ErrUnexpected)
		return
	}
	respondOK(ctx, "Food Added", food)
}

func (c *FoodController) Remove(ctx *gin.Context) {
	var input dto.RemoveFoodInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondFail(ctx, constants.ErrInvalidInput)
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), input.ID); err != nil {
		respondError(ctx, c.logger, err, constants.ErrUnexpected)
		return
	}
	respondOK(ctx, "Food Removed", nil)
}

func (c *FoodController) UpdateCategory(ctx *gin.Context) {
	var input dto.UpdateFoodCategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondFail(ctx, constants.ErrInvalidInput)
		return
	}

	if err := c.service.UpdateCategory(ctx.Request.Context(), input.ID, input.Category); err != nil {
		respondError(ctx, c.logger, err, constants.ErrUnexpected)
		return
	}
	respondOK(ctx, "Food category updated", nil)
}
