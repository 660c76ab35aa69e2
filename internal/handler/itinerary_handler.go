package handler

import (
	"Tourism-App/internal/domain/model"
	"Tourism-App/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ItineraryHandler は旅行プランAPIのハンドラー
type ItineraryHandler struct {
	itineraryUseCase usecase.ItineraryUseCase
}

// NewItineraryHandler は新しいItineraryHandlerインスタンスを作成
func NewItineraryHandler(itineraryUseCase usecase.ItineraryUseCase) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryUseCase: itineraryUseCase,
	}
}

// PostItinerary は旅行プランを生成するエンドポイント
// POST /api/itineraries
func (h *ItineraryHandler) PostItinerary(c *gin.Context) {
	var req model.TripRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	response, err := h.itineraryUseCase.GenerateItinerary(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "旅行プランの生成に失敗しました")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetCatalog はプラン作成フォームの選択肢を返すエンドポイント
// GET /api/catalog
func (h *ItineraryHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.itineraryUseCase.GetCatalog())
}
