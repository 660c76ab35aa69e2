package strategy

import (
	"Tourism-App/internal/domain/helper"
	"Tourism-App/internal/domain/model"
)

// AdventureStrategy はサファリ・ロッククライミング・トレイルなどアクティビティ系の訪問先を提案する
type AdventureStrategy struct {
	destinations []string
}

func NewAdventureStrategy() StrategyInterface {
	return &AdventureStrategy{
		destinations: []string{"Patratu Valley", "Betla Safari", "Rock Climbing Sites", "Nature Trails"},
	}
}

func (s *AdventureStrategy) Interest() string {
	return model.InterestAdventure
}

func (s *AdventureStrategy) GetCandidateDestinations() []string {
	return helper.TakeFirst(s.destinations, len(s.destinations))
}

func (s *AdventureStrategy) PickDestinations(n int) []string {
	return helper.TakeFirst(s.destinations, n)
}
