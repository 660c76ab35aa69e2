package usecase

import (
	"Tourism-App/internal/domain/model"
	"Tourism-App/internal/domain/repository"
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
)

type MarketplaceUseCase interface {
	// GetProducts はカテゴリで商品を絞り込む。"all" または空文字の場合は全件
	GetProducts(ctx context.Context, category string) *model.GetProductsResponse

	// ToggleWishlist は商品をウィッシュリストに追加・削除する
	// visitorIDが空の場合は新しく発行する
	ToggleWishlist(ctx context.Context, visitorID, productID string) (*model.WishlistToggleResponse, error)
}

type marketplaceUseCaseImpl struct {
	productsRepo  repository.ProductsRepository
	wishlistsRepo repository.WishlistsRepository
}

func NewMarketplaceUseCase(productsRepo repository.ProductsRepository, wishlistsRepo repository.WishlistsRepository) MarketplaceUseCase {
	return &marketplaceUseCaseImpl{
		productsRepo:  productsRepo,
		wishlistsRepo: wishlistsRepo,
	}
}

func (u *marketplaceUseCaseImpl) GetProducts(ctx context.Context, category string) *model.GetProductsResponse {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = model.ProductCategoryAll
	}

	products := []model.Product{}
	for _, p := range u.productsRepo.GetAll(ctx) {
		if category == model.ProductCategoryAll || p.Category == category {
			products = append(products, p)
		}
	}

	return &model.GetProductsResponse{
		Category: category,
		Products: products,
	}
}

func (u *marketplaceUseCaseImpl) ToggleWishlist(ctx context.Context, visitorID, productID string) (*model.WishlistToggleResponse, error) {
	if _, err := u.productsRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	if visitorID == "" {
		visitorID = uuid.New().String()
	}

	added, wishlist, err := u.wishlistsRepo.Toggle(ctx, visitorID, productID)
	if err != nil {
		return nil, err
	}

	notification := model.Notification{Message: "Removed from wishlist!", Type: model.NotificationInfo}
	if added {
		notification = model.Notification{Message: "Added to wishlist!", Type: model.NotificationSuccess}
	}
	log.Printf("❤️ ウィッシュリスト更新 (visitor: %s, product: %s, added: %t)", visitorID, productID, added)

	return &model.WishlistToggleResponse{
		VisitorID:    visitorID,
		ProductID:    productID,
		InWishlist:   added,
		Wishlist:     wishlist,
		Notification: notification,
	}, nil
}
