package model

// InterestConstants は旅行プランで選択できる興味タグの定数
const (
	InterestNature    = "nature"
	InterestCulture   = "culture"
	InterestAdventure = "adventure"
	InterestSpiritual = "spiritual"
)

// BudgetConstants は予算帯の定数
const (
	BudgetLow  = "low"
	BudgetMid  = "mid"
	BudgetHigh = "high"
)

// チャットの発言者
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// 通知の種類（ウィッシュリストなど）
const (
	NotificationSuccess = "success"
	NotificationInfo    = "info"
)

// ProductCategoryAll はカテゴリ絞り込みを行わない指定
const ProductCategoryAll = "all"

// InterestLabelMap は興味タグから表示名へのマッピング
var InterestLabelMap = map[string]string{
	InterestNature:    "Nature & Wildlife",
	InterestCulture:   "Culture & Heritage",
	InterestAdventure: "Adventure",
	InterestSpiritual: "Spiritual",
}

// BudgetLabelMap は予算帯から表示名へのマッピング
var BudgetLabelMap = map[string]string{
	BudgetLow:  "Budget",
	BudgetMid:  "Mid-range",
	BudgetHigh: "Luxury",
}

// GetInterestLabel は興味タグの表示名を取得する
func GetInterestLabel(interest string) string {
	if label, ok := InterestLabelMap[interest]; ok {
		return label
	}
	return interest // デフォルトはそのまま返す
}

// GetBudgetLabel は予算帯の表示名を取得する
func GetBudgetLabel(budget string) string {
	if label, ok := BudgetLabelMap[budget]; ok {
		return label
	}
	return budget
}

// GetAllInterests は全興味タグの一覧を取得する（UIの表示順）
func GetAllInterests() []string {
	return []string{
		InterestNature,
		InterestCulture,
		InterestAdventure,
		InterestSpiritual,
	}
}

// GetAllBudgets は全予算帯の一覧を取得する
func GetAllBudgets() []string {
	return []string{
		BudgetLow,
		BudgetMid,
		BudgetHigh,
	}
}

// IsValidInterest は興味タグが定義済みかどうかを判定する
func IsValidInterest(interest string) bool {
	_, ok := InterestLabelMap[interest]
	return ok
}

// IsValidBudget は予算帯が定義済みかどうかを判定する
func IsValidBudget(budget string) bool {
	_, ok := BudgetLabelMap[budget]
	return ok
}
