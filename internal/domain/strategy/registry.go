package strategy

import "fmt"

// Registry は興味タグごとの戦略を保持する
type Registry struct {
	strategies map[string]StrategyInterface
}

// NewRegistry は4つの興味タグすべての戦略を登録したRegistryを作成
func NewRegistry() *Registry {
	r := &Registry{strategies: make(map[string]StrategyInterface)}
	for _, s := range []StrategyInterface{
		NewNatureStrategy(),
		NewCultureStrategy(),
		NewAdventureStrategy(),
		NewSpiritualStrategy(),
	} {
		r.strategies[s.Interest()] = s
	}
	return r
}

// Get は興味タグに対応する戦略を取得する
func (r *Registry) Get(interest string) (StrategyInterface, error) {
	s, ok := r.strategies[interest]
	if !ok {
		return nil, fmt.Errorf("不明な興味タグです: %s", interest)
	}
	return s, nil
}
