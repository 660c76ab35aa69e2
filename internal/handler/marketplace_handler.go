package handler

import (
	"Tourism-App/internal/domain/model"
	"Tourism-App/internal/usecase"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MarketplaceHandler はマーケットプレイスAPIのハンドラー
type MarketplaceHandler struct {
	marketplaceUseCase usecase.MarketplaceUseCase
}

func NewMarketplaceHandler(marketplaceUseCase usecase.MarketplaceUseCase) *MarketplaceHandler {
	return &MarketplaceHandler{
		marketplaceUseCase: marketplaceUseCase,
	}
}

// GetProducts GET /api/marketplace/products?category= - カテゴリで絞り込んだ商品一覧
func (h *MarketplaceHandler) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.marketplaceUseCase.GetProducts(c.Request.Context(), c.Query("category")))
}

// ToggleWishlist POST /api/marketplace/wishlist/:product_id - ウィッシュリストの追加・削除
func (h *MarketplaceHandler) ToggleWishlist(c *gin.Context) {
	var req model.WishlistToggleRequest
	// ボディなしは新規訪問者として扱う
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, err)
		return
	}

	response, err := h.marketplaceUseCase.ToggleWishlist(c.Request.Context(), req.VisitorID, c.Param("product_id"))
	if err != nil {
		respondError(c, err, "商品が見つかりません")
		return
	}
	c.JSON(http.StatusOK, response)
}
