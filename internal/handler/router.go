package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers はルーターに登録する全ハンドラー
type Handlers struct {
	Itinerary   *ItineraryHandler
	Chat        *ChatHandler
	Place       *PlaceHandler
	Marketplace *MarketplaceHandler
	Feedback    *FeedbackHandler
}

// NewRouter はgin.Engineを作成し、全エンドポイントを登録する
func NewRouter(h *Handlers, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(corsConfig(allowedOrigins)))

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler)
		api.GET("/catalog", h.Itinerary.GetCatalog)
		api.POST("/itineraries", h.Itinerary.PostItinerary)

		api.GET("/places/:id", h.Place.GetPlace)
		api.GET("/places/:id/nearby", h.Place.GetNearbyPlaces)

		api.POST("/chat/sessions", h.Chat.CreateSession)
		api.GET("/chat/sessions/:id", h.Chat.GetSession)
		api.POST("/chat/sessions/:id/messages", h.Chat.PostMessage)
		api.DELETE("/chat/sessions/:id/messages", h.Chat.ClearMessages)

		api.GET("/marketplace/products", h.Marketplace.GetProducts)
		api.POST("/marketplace/wishlist/:product_id", h.Marketplace.ToggleWishlist)

		api.POST("/feedback", h.Feedback.PostFeedback)
	}

	return r
}

// corsConfig は静的サイトからの呼び出しを許可するCORS設定
// 未指定または "*" を含む場合は全オリジンを許可する
func corsConfig(allowedOrigins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	allowAll := len(allowedOrigins) == 0
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	return config
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Tourism-App"})
}
