package strategy

import (
	"Tourism-App/internal/domain/helper"
	"Tourism-App/internal/domain/model"
)

// SpiritualStrategy は巡礼地・瞑想センター・聖なる森を提案する
// 文化系と先頭2件が重複するため、組み合わせた場合は重複除去に依存する
type SpiritualStrategy struct {
	destinations []string
}

func NewSpiritualStrategy() StrategyInterface {
	return &SpiritualStrategy{
		destinations: []string{"Deoghar", "Jagannath Temple", "Meditation Centers", "Sacred Groves"},
	}
}

func (s *SpiritualStrategy) Interest() string {
	return model.InterestSpiritual
}

func (s *SpiritualStrategy) GetCandidateDestinations() []string {
	return helper.TakeFirst(s.destinations, len(s.destinations))
}

func (s *SpiritualStrategy) PickDestinations(n int) []string {
	return helper.TakeFirst(s.destinations, n)
}
