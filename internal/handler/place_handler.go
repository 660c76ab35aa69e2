package handler

import (
	"Tourism-App/internal/domain/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PlaceHandler は観光地詳細APIのハンドラー
type PlaceHandler struct {
	placeService service.PlaceService
}

func NewPlaceHandler(placeService service.PlaceService) *PlaceHandler {
	return &PlaceHandler{
		placeService: placeService,
	}
}

// GetPlace GET /api/places/:id - 観光地詳細（未知のIDはNetarhat）
func (h *PlaceHandler) GetPlace(c *gin.Context) {
	c.JSON(http.StatusOK, h.placeService.GetPlaceDetailResponse(c.Request.Context(), c.Param("id")))
}

// GetNearbyPlaces GET /api/places/:id/nearby?radius_km= - 近隣の観光地
func (h *PlaceHandler) GetNearbyPlaces(c *gin.Context) {
	radiusKm := service.DefaultNearbyRadiusKm
	if raw := c.Query("radius_km"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"details": "Invalid radius_km value",
			})
			return
		}
		radiusKm = v
	}

	response, err := h.placeService.FindNearby(c.Request.Context(), c.Param("id"), radiusKm)
	if err != nil {
		respondError(c, err, "近隣の観光地の取得に失敗しました")
		return
	}
	c.JSON(http.StatusOK, response)
}
