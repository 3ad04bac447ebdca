package controllers

import (
	"gin-fooddelivery/constants"
	"gin-fooddelivery/dto"
	"gin-fooddelivery/logging"
	"gin-fooddelivery/services"

	"github.com/gin-gonic/gin"
)

type ICategoryController interface {
	List(ctx *gin.Context)
	Add(ctx *gin.Context)
	UpdateImage(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type CategoryController struct {
	service services.ICategoryService
	logger  logging.Logger
}

func NewCategoryController(service services.ICategoryService, logger logging.Logger) ICategoryController {
	return &CategoryController{service: service, logger: logger}
}

func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, err, constants.ErrFetchCategories)
		return
	}
	respondOK(ctx, "", categories)
}

func (c *CategoryController) Add(ctx *gin.Context) {
	var input dto.CreateCategoryInput
	if err := ctx.ShouldBind(&input); err != nil {
		respondFail(ctx, constants.ErrInvalidInput)
		return
	}

	image, closeImage, err := formImage(ctx)
	if err != nil {
		respondError(ctx, c.logger, err, constants.ErrAddCategory)
		return
	}
	defer closeImage()

	category, err := c.service.Create(ctx.Request.Context(), input.Name, image)
	if err != nil {
		respondError(ctx, c.logger, err, constants.ErrAddCategory)
		return
	}
	respondOK(ctx, "Category added successfully", category)
}

func (c *CategoryController) UpdateImage(ctx *gin.Context) {
	var input dto.CategoryIDInput
	if err := ctx.ShouldBind(&input); err != nil {
		respondFail(ctx, constants.ErrInvalidInput)
		return
	}

	image, closeImage, err := formImage(ctx)
	if err != nil {
		respondError(ctx, c.logger, err, constants.ErrUpdateCategoryImage)
		return
	}
	defer closeImage()

	category, err := c.service.UpdateImage(ctx.Request.Context(), input.CategoryID, image)
	if err != nil {
		respondError(ctx, c.logger, err, constants.ErrUpdateCategoryImage)
		return
	}
	respondOK(ctx, "Category image updated", category)
}

func (c *CategoryController) Delete(ctx *gin.Context) {
	var input dto.CategoryIDInput
	if err := ctx.ShouldBind(&input); err != nil {
		respondFail(ctx, constants.ErrInvalidInput)
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), input.CategoryID); err != nil {
		respondError(ctx, c.logger, err, constants.ErrDeleteCategory)
		return
	}
	respondOK(ctx, "Category deleted successfully", nil)
}
