package handler

import (
	"Tourism-App/internal/domain/model"
	"Tourism-App/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ChatHandler はチャットボットAPIのハンドラー
type ChatHandler struct {
	chatUseCase usecase.ChatUseCase
}

func NewChatHandler(chatUseCase usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

// CreateSession POST /api/chat/sessions - セッション開始
func (h *ChatHandler) CreateSession(c *gin.Context) {
	response, err := h.chatUseCase.StartSession(c.Request.Context())
	if err != nil {
		respondError(c, err, "チャットセッションの作成に失敗しました")
		return
	}
	c.JSON(http.StatusCreated, response)
}

// PostMessage POST /api/chat/sessions/:id/messages - 発言を送信して応答を受け取る
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	response, err := h.chatUseCase.SendMessage(c.Request.Context(), c.Param("id"), req.Message)
	if err != nil {
		respondError(c, err, "チャット応答の生成に失敗しました")
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetSession GET /api/chat/sessions/:id - 会話状態の取得
func (h *ChatHandler) GetSession(c *gin.Context) {
	response, err := h.chatUseCase.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "チャットセッションが見つかりません")
		return
	}
	c.JSON(http.StatusOK, response)
}

// ClearMessages DELETE /api/chat/sessions/:id/messages - 会話のクリア
func (h *ChatHandler) ClearMessages(c *gin.Context) {
	response, err := h.chatUseCase.ClearSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "チャットセッションが見つかりません")
		return
	}
	c.JSON(http.StatusOK, response)
}
