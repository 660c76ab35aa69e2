package strategy

import (
	"Tourism-App/internal/domain/helper"
	"Tourism-App/internal/domain/model"
)

// NatureStrategy は滝・高原・国立公園など自然系の訪問先を提案する
type NatureStrategy struct {
	destinations []string
}

func NewNatureStrategy() StrategyInterface {
	return &NatureStrategy{
		destinations: []string{"Netarhat", "Hundru Falls", "Patratu Valley", "Betla National Park"},
	}
}

func (s *NatureStrategy) Interest() string {
	return model.InterestNature
}

func (s *NatureStrategy) GetCandidateDestinations() []string {
	return helper.TakeFirst(s.destinations, len(s.destinations))
}

func (s *NatureStrategy) PickDestinations(n int) []string {
	return helper.TakeFirst(s.destinations, n)
}
