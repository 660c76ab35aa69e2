package usecase

import (
	"Tourism-App/internal/domain/model"
	"Tourism-App/internal/domain/service"
	"context"
	"fmt"
	"log"
	"strconv"
	"time"
)

type ItineraryUseCase interface {
	// GenerateItinerary は入力を検証し、生成遅延の後に旅行プランを返す
	GenerateItinerary(ctx context.Context, req *model.TripRequest) (*model.ItineraryResponse, error)

	// StartGeneration は入力を検証し、プランを受け取るチャネルを返す
	// 検証エラーはチャネルを作らずに即座に返す
	StartGeneration(ctx context.Context, req *model.TripRequest) (<-chan TaskResult[*model.TripPlan], error)

	GetCatalog() *model.CatalogResponse
}

// itineraryUseCaseImpl はItineraryUseCaseの実装
type itineraryUseCaseImpl struct {
	itineraryService service.ItineraryService
	delay            time.Duration
}

// NewItineraryUseCase は新しいItineraryUseCaseインスタンスを作成
func NewItineraryUseCase(itineraryService service.ItineraryService, delay time.Duration) ItineraryUseCase {
	return &itineraryUseCaseImpl{
		itineraryService: itineraryService,
		delay:            delay,
	}
}

func (u *itineraryUseCaseImpl) StartGeneration(ctx context.Context, req *model.TripRequest) (<-chan TaskResult[*model.TripPlan], error) {
	if err := service.ValidateTripRequest(req); err != nil {
		return nil, err
	}

	log.Printf("🚀 旅行プラン生成開始 (日数: %d, 興味: %v, 予算: %s)", req.Duration, req.Interests, req.Budget)
	return StartDeferred(ctx, u.delay, func() (*model.TripPlan, error) {
		return u.itineraryService.GeneratePlan(ctx, req)
	}), nil
}

func (u *itineraryUseCaseImpl) GenerateItinerary(ctx context.Context, req *model.TripRequest) (*model.ItineraryResponse, error) {
	task, err := u.StartGeneration(ctx, req)
	if err != nil {
		return nil, err
	}

	plan, err := Await(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("旅行プランの生成に失敗: %w", err)
	}

	log.Printf("✅ 旅行プラン生成完了 (%d箇所, ₹%d)", plan.PlaceCount(), plan.EstimatedCost)
	return &model.ItineraryResponse{
		Plan:    plan,
		Summary: SummarizePlan(plan),
	}, nil
}

func (u *itineraryUseCaseImpl) GetCatalog() *model.CatalogResponse {
	return u.itineraryService.GetCatalog()
}

// SummarizePlan はプランの概要を1行で表す（例: "3 Days · ₹6,000 · 2 Places"）
func SummarizePlan(plan *model.TripPlan) string {
	return fmt.Sprintf("%d Days · ₹%s · %d Places", plan.Duration, FormatINR(plan.EstimatedCost), plan.PlaceCount())
}

// FormatINR はインド式の桁区切り（下3桁、以降2桁ごと）で金額を整形する
func FormatINR(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.Itoa(amount)
	if len(digits) <= 3 {
		return sign + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	result := sign
	for _, g := range groups {
		result += g + ","
	}
	return result + tail
}
