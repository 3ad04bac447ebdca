package middlewares

import (
	"gin-fooddelivery/apperrors"
	"gin-fooddelivery/constants"
	"gin-fooddelivery/dto"
	"gin-fooddelivery/models"
	"gin-fooddelivery/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RoleSet はルートごとに許可するロールの集合。
type RoleSet map[models.Role]struct{}

func NewRoleSet(roles ...models.Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, role := range roles {
		set[NormalizeRole(string(role))] = struct{}{}
	}
	return set
}

func NormalizeRole(role string) models.Role {
	return models.Role(strings.ToLower(strings.TrimSpace(role)))
}

// Allows は正規化したロールが集合に含まれるかを返す。空のロールは常に拒否。
func (s RoleSet) Allows(role models.Role) bool {
	normalized := NormalizeRole(string(role))
	if normalized == "" {
		return false
	}
	_, ok := s[normalized]
	return ok
}

// checkRole は利用者情報が許可されたロールを持つかを判定する。拒否の場合は ErrForbidden 分類のエラーを返す。
func checkRole(identity *services.Identity, allowed RoleSet) error {
	if identity == nil || NormalizeRole(string(identity.Role)) == "" {
		return apperrors.Forbidden(constants.ErrLoginAgain)
	}
	if !allowed.Allows(identity.Role) {
		return apperrors.Forbidden(constants.ErrNoPermission)
	}
	return nil
}

// RoleBasedAccessControl 指定されたロールのみアクセスを許可するミドルウェア
// AuthMiddlewareの後に使用すること。利用者情報が無い場合も拒否する。
func RoleBasedAccessControl(allowed RoleSet) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, _ := CurrentIdentity(ctx)
		if err := checkRole(identity, allowed); err != nil {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.Response{
				Success: false,
				Message: err.Error(),
				Code:    constants.CodeForbidden,
			})
			return
		}

		ctx.Next()
	}
}
