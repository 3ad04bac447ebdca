package controllers

import (
	"crypto/subtle"
	"gin-fooddelivery/constants"
	"gin-fooddelivery/dto"
	"gin-fooddelivery/logging"
	"gin-fooddelivery/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Get(ctx *gin.Context)
	CreateAdmin(ctx *gin.Context)
}

type AuthController struct {
	service  services.IAuthService
	setupKey string
	logger   logging.Logger
}

// NewAuthController の setupKey が空の場合、管理者作成エンドポイントは無効になる。
func NewAuthController(service services.IAuthService, setupKey string, logger logging.Logger) IAuthController {
	return &AuthController{service: service, setupKey: setupKey, logger: logger}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var input dto.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondFail(ctx, constants.ErrInvalidInput)
		return
	}

	result, err := c.service.Register(ctx.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		respondError(ctx, c.logger, err, constants.ErrUnexpected)
		return
	}
	ctx.JSON(http.StatusOK, dto.AuthResponse{Success: true, Token: result.Token, Role: result.Role})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondFail(ctx, constants.ErrInvalidInput)
		return
	}

	result, err := c.service.Login(ctx.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(ctx, c.logger, err, constants.ErrUnexpected)
		return
	}
	ctx.JSON(http.StatusOK, dto.AuthResponse{Success: true, Token: result.Token, Role: result.Role})
}

func (c *AuthController) Get(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	user, err := c.service.GetUser(ctx.Request.Context(), id.SubjectID)
	if err != nil {
		respondError(ctx, c.logger, err, constants.ErrUnexpected)
		return
	}
	respondOK(ctx, "", user)
}

func (c *AuthController) CreateAdmin(ctx *gin.Context) {
	key := ctx.GetHeader(constants.SetupKeyHeader)
	if c.setupKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(c.setupKey)) != 1 {
		ctx.JSON(http.StatusOK, dto.Response{
			Success: false,
			Message: constants.ErrInvalidSetupKey,
			Code:    constants.CodeUnauthorized,
		})
		return
	}

	var input dto.CreateAdminInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondFail(ctx, constants.ErrInvalidInput)
		return
	}

	created, err := c.service.CreateAdmin(ctx.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		respondError(ctx, c.logger, err, constants.ErrCreateAdmin)
		return
	}
	if created {
		respondOK(ctx, "Admin user created successfully", nil)
		return
	}
	respondOK(ctx, "User updated to admin successfully", nil)
}
