package model

// TripRequest は旅行プラン生成の入力条件を保持する
type TripRequest struct {
	Duration  int      `json:"duration"`  // 日数（正の整数）
	Interests []string `json:"interests"` // 興味タグ（1件以上、指定順を保持）
	Budget    string   `json:"budget"`    // 予算帯 low / mid / high
}

// HasInterests は興味タグが1件以上指定されているかどうかを判定する
func (r *TripRequest) HasInterests() bool {
	return len(r.Interests) > 0
}

// TripPlan はRecommendation Engineが生成する旅行プラン
// 生成後は変更しない
type TripPlan struct {
	Duration         int      `json:"duration"`
	Budget           string   `json:"budget"`
	Interests        []string `json:"interests"`
	Destinations     []string `json:"destinations"`   // 重複なし、日数に応じた上限あり
	Accommodations   []string `json:"accommodations"` // 予算帯のカタログをそのまま
	EstimatedCost    int      `json:"estimated_cost"` // INR
	TravelDistanceKm float64  `json:"travel_distance_km"`
}

// PlaceCount は訪問先の数を返す
func (p *TripPlan) PlaceCount() int {
	return len(p.Destinations)
}

// ItineraryResponse は旅行プランAPIのレスポンス
type ItineraryResponse struct {
	Plan    *TripPlan `json:"plan"`
	Summary string    `json:"summary"`
}

// CatalogResponse はプラン作成フォームの選択肢
type CatalogResponse struct {
	Interests []CatalogOption `json:"interests"`
	Budgets   []CatalogOption `json:"budgets"`
	DailyCost map[string]int  `json:"daily_cost"`
}

// CatalogOption はフォームの選択肢1件
type CatalogOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
