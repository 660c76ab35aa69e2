package handler

import (
	"Tourism-App/internal/domain/model"
	"Tourism-App/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler はフィードバックAPIのハンドラー
type FeedbackHandler struct {
	feedbackUseCase usecase.FeedbackUseCase
}

func NewFeedbackHandler(feedbackUseCase usecase.FeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUseCase: feedbackUseCase,
	}
}

// PostFeedback POST /api/feedback - フィードバック送信
func (h *FeedbackHandler) PostFeedback(c *gin.Context) {
	var req model.FeedbackRequest

	// emailが指定されている場合は形式もここで検証される
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	response, err := h.feedbackUseCase.SubmitFeedback(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "フィードバックの送信に失敗しました")
		return
	}
	c.JSON(http.StatusCreated, response)
}
