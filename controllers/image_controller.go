package controllers

import (
	"errors"
	"gin-fooddelivery/logging"
	"gin-fooddelivery/storage"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ImageController はオブジェクトストレージ上の画像を署名付きURLへリダイレクトする。
// ディスク保存の場合はルーターの Static で配信するため使わない。
type ImageController struct {
	signer storage.URLSigner
	logger logging.Logger
}

func NewImageController(signer storage.URLSigner, logger logging.Logger) *ImageController {
	return &ImageController{signer: signer, logger: logger}
}

func (c *ImageController) Redirect(ctx *gin.Context) {
	url, err := c.signer.URL(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		if !errors.Is(err, storage.ErrInvalidName) {
			c.logger.Error(ctx.Request.Context(), "failed to presign image", "image", ctx.Param("name"), "err", err)
		}
		ctx.Status(http.StatusNotFound)
		return
	}
	ctx.Redirect(http.StatusTemporaryRedirect, url)
}
