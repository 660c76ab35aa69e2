package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tourism-App/internal/domain/model"
)

func TestMemorySessionsRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionsRepository(time.Minute)

	session := &model.ChatSession{ID: "session-1", State: model.NewConversationState(), CreatedAt: time.Now()}
	require.NoError(t, repo.Save(ctx, session))

	t.Run("保存したセッションを取得できる", func(t *testing.T) {
		got, err := repo.Get(ctx, "session-1")
		require.NoError(t, err)
		assert.Same(t, session, got)
	})

	t.Run("存在しないセッション", func(t *testing.T) {
		_, err := repo.Get(ctx, "missing")
		assert.True(t, errors.Is(err, model.ErrSessionNotFound))
	})

	t.Run("IDが空のセッションは保存できない", func(t *testing.T) {
		assert.Error(t, repo.Save(ctx, &model.ChatSession{}))
	})

	t.Run("削除", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "session-1"))
		_, err := repo.Get(ctx, "session-1")
		assert.True(t, errors.Is(err, model.ErrSessionNotFound))
		assert.True(t, errors.Is(repo.Delete(ctx, "session-1"), model.ErrSessionNotFound))
	})
}

func TestMemorySessionsRepository_Expiration(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionsRepository(50 * time.Millisecond)

	require.NoError(t, repo.Save(ctx, &model.ChatSession{ID: "short", State: model.NewConversationState()}))
	time.Sleep(120 * time.Millisecond)

	_, err := repo.Get(ctx, "short")
	assert.True(t, errors.Is(err, model.ErrSessionNotFound))
}

func TestMemoryWishlistsRepository_Toggle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryWishlistsRepository(time.Minute)

	added, list, err := repo.Toggle(ctx, "visitor", "dokra-horse")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"dokra-horse"}, list)

	added, list, err = repo.Toggle(ctx, "visitor", "tussar-saree")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"dokra-horse", "tussar-saree"}, list)

	added, list, err = repo.Toggle(ctx, "visitor", "dokra-horse")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []string{"tussar-saree"}, list)

	assert.Equal(t, []string{"tussar-saree"}, repo.Get(ctx, "visitor"))
	assert.Empty(t, repo.Get(ctx, "someone-else"))
}

func TestMemoryWishlistsRepository_ConcurrentToggle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryWishlistsRepository(time.Minute)

	// 偶数回のトグルで元に戻る
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _ = repo.Toggle(ctx, "visitor", "tribal-necklace")
		}()
	}
	wg.Wait()

	assert.Empty(t, repo.Get(ctx, "visitor"))
}
