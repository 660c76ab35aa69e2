package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"Tourism-App/internal/config"
	"Tourism-App/internal/domain/service"
	"Tourism-App/internal/domain/strategy"
	"Tourism-App/internal/handler"
	"Tourism-App/internal/repository"
	"Tourism-App/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// リポジトリ（すべてプロセス内、永続化なし）
	placesRepo := repository.NewStaticPlacesRepository()
	sessionsRepo := repository.NewMemorySessionsRepository(cfg.SessionTTL)
	productsRepo := repository.NewStaticProductsRepository()
	wishlistsRepo := repository.NewMemoryWishlistsRepository(cfg.SessionTTL)

	// ドメインサービス
	itineraryService := service.NewItineraryService(strategy.NewRegistry(), placesRepo)
	placeService := service.NewPlaceService(placesRepo)
	renderer := service.NewResponseRenderer(placeService.HighlightTerms(context.Background()))

	// ユースケース
	itineraryUseCase := usecase.NewItineraryUseCase(itineraryService, cfg.PlanDelay)
	chatUseCase := usecase.NewChatUseCase(sessionsRepo, service.NewResponseEngine(), renderer,
		usecase.DelayRange{Min: cfg.ChatMinDelay, Max: cfg.ChatMaxDelay})
	marketplaceUseCase := usecase.NewMarketplaceUseCase(productsRepo, wishlistsRepo)
	feedbackUseCase := usecase.NewFeedbackUseCase()

	router := handler.NewRouter(&handler.Handlers{
		Itinerary:   handler.NewItineraryHandler(itineraryUseCase),
		Chat:        handler.NewChatHandler(chatUseCase),
		Place:       handler.NewPlaceHandler(placeService),
		Marketplace: handler.NewMarketplaceHandler(marketplaceUseCase),
		Feedback:    handler.NewFeedbackHandler(feedbackUseCase),
	}, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("🚀 Tourism-App server starting on %s...", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("サーバーの起動に失敗: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("🛑 シャットダウン中...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ シャットダウンに失敗: %v", err)
	}
	log.Printf("✅ サーバーを停止しました")
}
