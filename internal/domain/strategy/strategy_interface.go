package strategy

// StrategyInterface は、興味タグに合った訪問先候補を提供する戦略のインターフェース
type StrategyInterface interface {
	// 担当する興味タグ
	Interest() string

	// 候補となる訪問先一覧（おすすめ順）
	GetCandidateDestinations() []string

	// おすすめ順に先頭から最大n件を選ぶ
	PickDestinations(n int) []string
}
