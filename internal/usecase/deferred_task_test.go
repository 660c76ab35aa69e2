package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartDeferred(t *testing.T) {
	t.Run("遅延後に結果を返す", func(t *testing.T) {
		start := time.Now()
		ch := StartDeferred(context.Background(), 30*time.Millisecond, func() (int, error) { return 42, nil })

		v, err := Await(context.Background(), ch)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("関数のエラーをそのまま返す", func(t *testing.T) {
		boom := errors.New("boom")
		ch := StartDeferred(context.Background(), 0, func() (string, error) { return "", boom })

		_, err := Await(context.Background(), ch)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("遅延中のキャンセルでは関数を実行しない", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		called := make(chan struct{}, 1)
		ch := StartDeferred(ctx, time.Hour, func() (int, error) {
			called <- struct{}{}
			return 1, nil
		})
		cancel()

		r := <-ch
		assert.ErrorIs(t, r.Err, context.Canceled)
		assert.Empty(t, called)
	})
}

func TestAwait_ContextDone(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	ch := StartDeferred(context.Background(), time.Hour, func() (int, error) { return 1, nil })
	_, err := Await(ctx, ch)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAwait_PrefersDeliveredResult(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := make(chan TaskResult[int], 1)
	ch <- TaskResult[int]{Value: 7}

	v, err := Await(ctx, ch)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestDelayRange_Pick(t *testing.T) {
	r := DelayRange{Min: time.Second, Max: 3 * time.Second}
	for i := 0; i < 100; i++ {
		d := r.Pick()
		assert.GreaterOrEqual(t, d, time.Second)
		assert.LessOrEqual(t, d, 3*time.Second)
	}

	assert.Equal(t, time.Second, DelayRange{Min: time.Second, Max: time.Second}.Pick())
	assert.Equal(t, time.Duration(0), DelayRange{}.Pick())
}
