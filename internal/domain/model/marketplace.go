package model

// Product マーケットプレイスの商品
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Artisan     string `json:"artisan"`
	Description string `json:"description"`
	PriceINR    int    `json:"price_inr"`
}

// GetProductsResponse は商品一覧APIのレスポンス
type GetProductsResponse struct {
	Category string    `json:"category"`
	Products []Product `json:"products"`
}

// WishlistToggleRequest はウィッシュリスト切り替えAPIのリクエスト
type WishlistToggleRequest struct {
	VisitorID string `json:"visitor_id"` // 空の場合は新規発行
}

// WishlistToggleResponse はウィッシュリスト切り替えAPIのレスポンス
type WishlistToggleResponse struct {
	VisitorID    string       `json:"visitor_id"`
	ProductID    string       `json:"product_id"`
	InWishlist   bool         `json:"in_wishlist"`
	Wishlist     []string     `json:"wishlist"`
	Notification Notification `json:"notification"`
}

// Notification 画面右上に表示する通知
type Notification struct {
	Message string `json:"message"`
	Type    string `json:"type"` // "success" or "info"
}
