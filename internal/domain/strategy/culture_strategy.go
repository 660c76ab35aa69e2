package strategy

import (
	"Tourism-App/internal/domain/helper"
	"Tourism-App/internal/domain/model"
)

// CultureStrategy は寺院・部族の村・伝統芸術など文化系の訪問先を提案する
type CultureStrategy struct {
	destinations []string
}

func NewCultureStrategy() StrategyInterface {
	return &CultureStrategy{
		destinations: []string{"Deoghar", "Jagannath Temple", "Tribal Villages", "Sohrai Art Centers"},
	}
}

func (s *CultureStrategy) Interest() string {
	return model.InterestCulture
}

func (s *CultureStrategy) GetCandidateDestinations() []string {
	return helper.TakeFirst(s.destinations, len(s.destinations))
}

func (s *CultureStrategy) PickDestinations(n int) []string {
	return helper.TakeFirst(s.destinations, n)
}
