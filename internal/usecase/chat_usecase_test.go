package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tourism-App/internal/domain/model"
	"Tourism-App/internal/domain/service"
	"Tourism-App/internal/repository"
)

const defaultTestLongDelay = time.Hour

func newTestChatUseCase(delay DelayRange) ChatUseCase {
	places := service.NewPlaceService(repository.NewStaticPlacesRepository())
	return NewChatUseCase(
		repository.NewMemorySessionsRepository(time.Minute),
		service.NewResponseEngine(),
		service.NewResponseRenderer(places.HighlightTerms(context.Background())),
		delay,
	)
}

func TestChatUseCase_Conversation(t *testing.T) {
	ctx := context.Background()
	uc := newTestChatUseCase(DelayRange{})

	started, err := uc.StartSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, started.SessionID)
	require.Len(t, started.State.Messages, 1)
	assert.Equal(t, model.SenderBot, started.State.Messages[0].Sender)
	assert.Equal(t, service.WelcomeMessage, started.State.Messages[0].Text)
	assert.True(t, started.State.FirstInteraction)

	resp, err := uc.SendMessage(ctx, started.SessionID, "  Tell me about Netarhat on a budget for 3 days  ")
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "Queen of Chotanagpur")
	assert.Contains(t, resp.HTML, `<span class="place-link" data-place-id="netarhat">Netarhat</span>`)
	assert.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, model.BudgetLow, resp.Preferences.Budget)
	assert.Equal(t, "3 days", resp.Preferences.Duration)

	state, err := uc.GetSession(ctx, started.SessionID)
	require.NoError(t, err)
	require.Len(t, state.State.Messages, 3)
	assert.Equal(t, "Tell me about Netarhat on a budget for 3 days", state.State.Messages[1].Text)
	assert.False(t, state.State.FirstInteraction)

	cleared, err := uc.ClearSession(ctx, started.SessionID)
	require.NoError(t, err)
	assert.Empty(t, cleared.State.Messages)
	assert.Empty(t, cleared.State.Preferences.Interests)
	assert.Equal(t, "", cleared.State.Preferences.Budget)
	assert.True(t, cleared.State.FirstInteraction)
}

func TestChatUseCase_PriceTagRendering(t *testing.T) {
	ctx := context.Background()
	uc := newTestChatUseCase(DelayRange{})

	started, err := uc.StartSession(ctx)
	require.NoError(t, err)

	resp, err := uc.SendMessage(ctx, started.SessionID, "where should I stay?")
	require.NoError(t, err)
	assert.Contains(t, resp.HTML, `<span class="price-tag">₹800</span>`)
}

func TestChatUseCase_EmptyMessage(t *testing.T) {
	ctx := context.Background()
	uc := newTestChatUseCase(DelayRange{})

	started, err := uc.StartSession(ctx)
	require.NoError(t, err)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := uc.SendMessage(ctx, started.SessionID, text)
		var validationErr *model.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "message", validationErr.Field)
	}

	// 拒否された発言はログに残らない
	state, err := uc.GetSession(ctx, started.SessionID)
	require.NoError(t, err)
	assert.Len(t, state.State.Messages, 1)
}

func TestChatUseCase_UnknownSession(t *testing.T) {
	ctx := context.Background()
	uc := newTestChatUseCase(DelayRange{})

	_, err := uc.SendMessage(ctx, "missing", "hello")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	_, err = uc.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	_, err = uc.ClearSession(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestChatUseCase_CancelledWhileWaiting(t *testing.T) {
	uc := newTestChatUseCase(DelayRange{Min: defaultTestLongDelay, Max: defaultTestLongDelay})

	started, err := uc.StartSession(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = uc.SendMessage(ctx, started.SessionID, "hello")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// 中断された発言は会話状態に反映されない
	state, err := uc.GetSession(context.Background(), started.SessionID)
	require.NoError(t, err)
	assert.Len(t, state.State.Messages, 1)
}

func TestChatUseCase_CancelledBeforeReply(t *testing.T) {
	// 遅延なしでも、中断済みのリクエストは会話状態を変更しない
	uc := newTestChatUseCase(DelayRange{})

	started, err := uc.StartSession(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = uc.SendMessage(ctx, started.SessionID, "hello")
	assert.ErrorIs(t, err, context.Canceled)

	state, err := uc.GetSession(context.Background(), started.SessionID)
	require.NoError(t, err)
	assert.Len(t, state.State.Messages, 1)
	assert.True(t, state.State.FirstInteraction)
}

func TestChatUseCase_ConcurrentMessages(t *testing.T) {
	ctx := context.Background()
	uc := newTestChatUseCase(DelayRange{Max: 5 * time.Millisecond})

	started, err := uc.StartSession(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.SendMessage(ctx, started.SessionID, "hello")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	state, err := uc.GetSession(ctx, started.SessionID)
	require.NoError(t, err)
	assert.Len(t, state.State.Messages, 21)
}
