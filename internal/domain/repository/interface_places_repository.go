package repository

import (
	"context"

	"Tourism-App/internal/domain/model"
)

type PlacesRepository interface {
	GetByID(ctx context.Context, id string) (*model.PlaceDetail, bool)
	GetDefault(ctx context.Context) *model.PlaceDetail
	GetAll(ctx context.Context) []*model.PlaceDetail
	// 訪問先名（"Hundru Falls" など）から観光地を引く。大文字小文字は区別しない
	FindByKeyword(ctx context.Context, keyword string) (*model.PlaceDetail, bool)
}
