package handler

import (
	"Tourism-App/internal/domain/model"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError はエラーの種類からステータスコードを決めてレスポンスを返す
func respondError(c *gin.Context, err error, message string) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"field":   validationErr.Field,
			"details": validationErr.Message,
		})
	case errors.Is(err, model.ErrSessionNotFound), errors.Is(err, model.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   message,
			"details": err.Error(),
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusRequestTimeout, gin.H{
			"error":   message,
			"details": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   message,
			"details": err.Error(),
		})
	}
}

// respondBindError はリクエストボディの解析失敗を返す
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "リクエストの形式が正しくありません",
		"details": err.Error(),
	})
}
