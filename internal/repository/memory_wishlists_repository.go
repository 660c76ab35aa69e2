package repository

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"Tourism-App/internal/domain/repository"
)

// MemoryWishlistsRepository go-cacheを使用した訪問者ごとのウィッシュリスト
type MemoryWishlistsRepository struct {
	cache *cache.Cache
	mu    sync.Mutex // Toggleの読み書きを直列化する
}

func NewMemoryWishlistsRepository(ttl time.Duration) repository.WishlistsRepository {
	return &MemoryWishlistsRepository{
		cache: cache.New(ttl, ttl*2),
	}
}

func (r *MemoryWishlistsRepository) Toggle(ctx context.Context, visitorID, productID string) (bool, []string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.get(visitorID)
	updated := make([]string, 0, len(current)+1)
	removed := false
	for _, id := range current {
		if id == productID {
			removed = true
			continue
		}
		updated = append(updated, id)
	}
	if !removed {
		updated = append(updated, productID)
	}

	r.cache.Set(visitorID, updated, cache.DefaultExpiration)
	return !removed, append([]string{}, updated...), nil
}

func (r *MemoryWishlistsRepository) Get(ctx context.Context, visitorID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.get(visitorID)...)
}

func (r *MemoryWishlistsRepository) get(visitorID string) []string {
	v, ok := r.cache.Get(visitorID)
	if !ok {
		return []string{}
	}
	ids, ok := v.([]string)
	if !ok {
		return []string{}
	}
	return ids
}
