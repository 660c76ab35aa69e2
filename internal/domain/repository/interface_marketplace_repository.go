package repository

import (
	"context"

	"Tourism-App/internal/domain/model"
)

type ProductsRepository interface {
	GetAll(ctx context.Context) []model.Product
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// WishlistsRepository は訪問者ごとのウィッシュリストを保持する
type WishlistsRepository interface {
	// Toggle は商品を追加または削除し、追加後の状態と一覧を返す
	Toggle(ctx context.Context, visitorID, productID string) (added bool, wishlist []string, err error)
	Get(ctx context.Context, visitorID string) []string
}
