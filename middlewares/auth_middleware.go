package middlewares

import (
	"gin-fooddelivery/constants"
	"gin-fooddelivery/dto"
	"gin-fooddelivery/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthMiddleware は "token" ヘッダーのトークンを検証し、利用者情報をコンテキストに設定する。
// 失敗時は HTTP 200 + success:false を返し、後続のハンドラは呼ばない。
func AuthMiddleware(tokenService services.ITokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := strings.TrimSpace(ctx.GetHeader(constants.TokenHeader))
		if token == "" {
			ctx.AbortWithStatusJSON(http.StatusOK, dto.Response{
				Success: false,
				Message: constants.ErrNotAuthorized,
				Code:    constants.CodeUnauthorized,
			})
			return
		}

		identity, err := tokenService.Verify(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusOK, dto.Response{
				Success: false,
				Message: err.Error(),
				Code:    constants.CodeInvalidToken,
			})
			return
		}

		ctx.Set(identityKey, identity)

		ctx.Next()
	}
}

// CurrentIdentity はAuthMiddlewareが設定した利用者情報を返す。
func CurrentIdentity(ctx *gin.Context) (*services.Identity, bool) {
	v, exists := ctx.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*services.Identity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}
