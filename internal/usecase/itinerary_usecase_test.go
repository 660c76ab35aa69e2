package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tourism-App/internal/domain/model"
	"Tourism-App/internal/domain/service"
	"Tourism-App/internal/domain/strategy"
	"Tourism-App/internal/repository"
)

func newTestItineraryUseCase() ItineraryUseCase {
	svc := service.NewItineraryService(strategy.NewRegistry(), repository.NewStaticPlacesRepository())
	return NewItineraryUseCase(svc, 0)
}

func TestGenerateItinerary(t *testing.T) {
	uc := newTestItineraryUseCase()

	resp, err := uc.GenerateItinerary(context.Background(), &model.TripRequest{
		Duration:  7,
		Interests: []string{model.InterestNature, model.InterestCulture},
		Budget:    model.BudgetHigh,
	})
	require.NoError(t, err)

	assert.Equal(t, 56000, resp.Plan.EstimatedCost)
	assert.Equal(t, "7 Days · ₹56,000 · 4 Places", resp.Summary)
}

func TestGenerateItinerary_ValidationIsSynchronous(t *testing.T) {
	uc := newTestItineraryUseCase()

	ch, err := uc.StartGeneration(context.Background(), &model.TripRequest{Duration: 3, Budget: model.BudgetLow})
	assert.Nil(t, ch)

	var validationErr *model.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "interests", validationErr.Field)
	assert.Equal(t, "Please select at least one interest to generate your itinerary.", validationErr.Message)
}

func TestGenerateItinerary_Cancelled(t *testing.T) {
	svc := service.NewItineraryService(strategy.NewRegistry(), repository.NewStaticPlacesRepository())
	uc := NewItineraryUseCase(svc, defaultTestLongDelay)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.GenerateItinerary(ctx, &model.TripRequest{Duration: 3, Interests: []string{model.InterestNature}, Budget: model.BudgetLow})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatINR(t *testing.T) {
	tests := map[int]string{
		0:        "0",
		999:      "999",
		6000:     "6,000",
		56000:    "56,000",
		120000:   "1,20,000",
		12345678: "1,23,45,678",
		-4500:    "-4,500",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatINR(in), "amount=%d", in)
	}
}
