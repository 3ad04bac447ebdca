package controllers

import (
	"gin-fooddelivery/apperrors"
	"gin-fooddelivery/constants"
	"gin-fooddelivery/dto"
	"gin-fooddelivery/logging"
	"gin-fooddelivery/middlewares"
	"gin-fooddelivery/services"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

func respondOK(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{Success: true, Message: message, Data: data})
}

func respondFail(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusOK, dto.Response{Success: false, Message: message})
}

// respondError は分類済みのエラーはそのメッセージを返し、
// それ以外は詳細をログに残してfallbackのメッセージだけを返す。
func respondError(ctx *gin.Context, logger logging.Logger, err error, fallback string) {
	if msg, ok := apperrors.ClientMessage(err); ok {
		respondFail(ctx, msg)
		return
	}
	logger.Error(ctx.Request.Context(), fallback, "path", ctx.FullPath(), "err", err)
	respondFail(ctx, fallback)
}

// identity はAuthMiddlewareが設定した利用者情報を取り出す。無い場合はレスポンスを書いてfalseを返す。
func identity(ctx *gin.Context) (*services.Identity, bool) {
	id, ok := middlewares.CurrentIdentity(ctx)
	if !ok {
		ctx.JSON(http.StatusOK, dto.Response{
			Success: false,
			Message: constants.ErrNotAuthorized,
			Code:    constants.CodeUnauthorized,
		})
		return nil, false
	}
	return id, true
}

// formImage は multipart の "image" フィールドを読み出す。無い場合は nil。
// 返されたcloseは呼び出し側で必ず呼ぶこと。
func formImage(ctx *gin.Context) (*services.ImageUpload, func(), error) {
	header, err := ctx.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile || err == http.ErrNotMultipart {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}
	var file multipart.File
	file, err = header.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &services.ImageUpload{Filename: header.Filename, Body: file}, func() { file.Close() }, nil
}
