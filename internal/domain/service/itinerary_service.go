package service

import (
	"Tourism-App/internal/domain/helper"
	"Tourism-App/internal/domain/model"
	"Tourism-App/internal/domain/repository"
	"Tourism-App/internal/domain/strategy"
	"context"
	"fmt"
)

// 1つの興味タグから採用する訪問先の数
const destinationsPerInterest = 2

// MaxTripDuration は受け付ける日数の上限（費用計算が桁あふれしない範囲）
const MaxTripDuration = 365

// accommodationCatalog は予算帯ごとの宿泊タイプ
var accommodationCatalog = map[string][]string{
	model.BudgetLow:  {"Budget Hotels", "Tribal Homestays", "Government Rest Houses"},
	model.BudgetMid:  {"Eco Lodges", "Forest Resorts", "Heritage Hotels"},
	model.BudgetHigh: {"Luxury Resorts", "Premium Forest Lodges", "Boutique Hotels"},
}

// dailyCostTable は予算帯ごとの1日あたりの費用 (INR)
var dailyCostTable = map[string]int{
	model.BudgetLow:  2000,
	model.BudgetMid:  4500,
	model.BudgetHigh: 8000,
}

// ItineraryService は旅行プラン（Recommendation Engine）を生成するサービス
type ItineraryService interface {
	GeneratePlan(ctx context.Context, req *model.TripRequest) (*model.TripPlan, error)
	GetCatalog() *model.CatalogResponse
}

type itineraryService struct {
	strategies *strategy.Registry
	placesRepo repository.PlacesRepository
}

func NewItineraryService(strategies *strategy.Registry, placesRepo repository.PlacesRepository) ItineraryService {
	return &itineraryService{
		strategies: strategies,
		placesRepo: placesRepo,
	}
}

// GeneratePlan は日数・興味タグ・予算帯から旅行プランを生成する
// 同じ入力には常に同じプランを返す
func (s *itineraryService) GeneratePlan(ctx context.Context, req *model.TripRequest) (*model.TripPlan, error) {
	if err := ValidateTripRequest(req); err != nil {
		return nil, err
	}

	// Step 1: 興味タグの指定順に、各タグの先頭2件を連結
	var candidates []string
	for _, interest := range req.Interests {
		st, err := s.strategies.Get(interest)
		if err != nil {
			return nil, model.NewValidationError("interests", err.Error())
		}
		candidates = append(candidates, st.PickDestinations(destinationsPerInterest)...)
	}

	// Step 2: 最初の出現順を保って重複除去し、日数に応じた上限で切り詰め
	destinations := helper.TakeFirst(helper.UniqueStrings(candidates), MaxDestinations(req.Duration))

	plan := &model.TripPlan{
		Duration:         req.Duration,
		Budget:           req.Budget,
		Interests:        append([]string{}, req.Interests...),
		Destinations:     destinations,
		Accommodations:   helper.TakeFirst(accommodationCatalog[req.Budget], len(accommodationCatalog[req.Budget])),
		EstimatedCost:    EstimateCost(req.Budget, req.Duration),
		TravelDistanceKm: s.travelDistance(ctx, destinations),
	}
	return plan, nil
}

// GetCatalog はプラン作成フォームの選択肢を返す
func (s *itineraryService) GetCatalog() *model.CatalogResponse {
	catalog := &model.CatalogResponse{
		DailyCost: make(map[string]int, len(dailyCostTable)),
	}
	for _, interest := range model.GetAllInterests() {
		catalog.Interests = append(catalog.Interests, model.CatalogOption{ID: interest, Label: model.GetInterestLabel(interest)})
	}
	for _, budget := range model.GetAllBudgets() {
		catalog.Budgets = append(catalog.Budgets, model.CatalogOption{ID: budget, Label: model.GetBudgetLabel(budget)})
		catalog.DailyCost[budget] = dailyCostTable[budget]
	}
	return catalog
}

// travelDistance は座標が分かる訪問先だけをプラン順に結んだ概算距離
func (s *itineraryService) travelDistance(ctx context.Context, destinations []string) float64 {
	var stops []model.LatLng
	for _, name := range destinations {
		place, ok := s.placesRepo.FindByKeyword(ctx, name)
		if !ok {
			continue
		}
		// 同じ観光地が続く場合（Betla National Park と Betla Safari など）は1地点として扱う
		if len(stops) > 0 && stops[len(stops)-1] == place.Location {
			continue
		}
		stops = append(stops, place.Location)
	}
	return helper.RouteDistanceKm(stops)
}

// ValidateTripRequest は旅行プラン生成の前提条件を確認する
// 興味タグが空の場合は他のどの項目よりも先にエラーとする
func ValidateTripRequest(req *model.TripRequest) error {
	if req == nil || !req.HasInterests() {
		return model.NewValidationError("interests", "Please select at least one interest to generate your itinerary.")
	}
	if req.Duration <= 0 {
		return model.NewValidationError("duration", "duration must be a positive number of days")
	}
	if req.Duration > MaxTripDuration {
		return model.NewValidationError("duration", fmt.Sprintf("duration must be at most %d days", MaxTripDuration))
	}
	if !model.IsValidBudget(req.Budget) {
		return model.NewValidationError("budget", fmt.Sprintf("unknown budget tier %q (use low, mid or high)", req.Budget))
	}
	for _, interest := range req.Interests {
		if !model.IsValidInterest(interest) {
			return model.NewValidationError("interests", fmt.Sprintf("unknown interest %q", interest))
		}
	}
	return nil
}

// MaxDestinations は日数に応じた訪問先数の上限
func MaxDestinations(duration int) int {
	switch {
	case duration <= 3:
		return 3
	case duration <= 5:
		return 5
	default:
		return 7
	}
}

// EstimateCost は予算帯の日額 × 日数
func EstimateCost(budget string, duration int) int {
	return dailyCostTable[budget] * duration
}
