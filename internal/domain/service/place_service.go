package service

import (
	"Tourism-App/internal/domain/helper"
	"Tourism-App/internal/domain/model"
	"Tourism-App/internal/domain/repository"
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"
)

const (
	mapSearchBaseURL = "https://www.google.com/maps/search/"
	// DefaultNearbyRadiusKm は近隣検索の既定半径
	DefaultNearbyRadiusKm = 100.0
)

// PlaceService は観光地詳細の参照を行うサービス
type PlaceService interface {
	// GetPlaceDetails は観光地の詳細を返す。未知のIDの場合はNetarhatを返す
	GetPlaceDetails(ctx context.Context, id string) *model.PlaceDetail
	GetPlaceDetailResponse(ctx context.Context, id string) *model.PlaceDetailResponse
	FindNearby(ctx context.Context, id string, radiusKm float64) (*model.NearbyPlacesResponse, error)
	// HighlightTerms はチャット応答内でリンク化する表記から観光地IDへの対応
	HighlightTerms(ctx context.Context) map[string]string
}

type placeService struct {
	placesRepo repository.PlacesRepository
}

func NewPlaceService(placesRepo repository.PlacesRepository) PlaceService {
	return &placeService{placesRepo: placesRepo}
}

func (s *placeService) GetPlaceDetails(ctx context.Context, id string) *model.PlaceDetail {
	if place, ok := s.placesRepo.GetByID(ctx, strings.ToLower(id)); ok {
		return place
	}
	return s.placesRepo.GetDefault(ctx)
}

func (s *placeService) GetPlaceDetailResponse(ctx context.Context, id string) *model.PlaceDetailResponse {
	place := s.GetPlaceDetails(ctx, id)
	return &model.PlaceDetailResponse{
		PlaceDetail: place,
		MapURL:      MapSearchURL(place.Name),
	}
}

func (s *placeService) FindNearby(ctx context.Context, id string, radiusKm float64) (*model.NearbyPlacesResponse, error) {
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return nil, model.NewValidationError("radius_km", "radius_km must be a finite number greater than 0")
	}
	origin := s.GetPlaceDetails(ctx, id)
	nearby := helper.PlacesWithinRadius(origin, s.placesRepo.GetAll(ctx), radiusKm)
	if nearby == nil {
		nearby = []model.NearbyPlace{}
	}
	return &model.NearbyPlacesResponse{
		Origin:   origin.ID,
		RadiusKm: radiusKm,
		Places:   nearby,
	}, nil
}

func (s *placeService) HighlightTerms(ctx context.Context) map[string]string {
	terms := make(map[string]string)
	for _, p := range s.placesRepo.GetAll(ctx) {
		for _, k := range p.Keywords {
			terms[k] = p.ID
		}
	}
	return terms
}

// MapSearchURL は観光地名でGoogle Mapsを検索するURLを作る
func MapSearchURL(placeName string) string {
	query := fmt.Sprintf("%s Jharkhand India", strings.ToLower(placeName))
	return mapSearchBaseURL + url.PathEscape(query)
}
