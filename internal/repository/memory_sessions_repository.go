package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/patrickmn/go-cache"

	"Tourism-App/internal/domain/model"
	"Tourism-App/internal/domain/repository"
)

// MemorySessionsRepository go-cacheを使用したチャットセッションの保持
// 最終アクセスからttl経過したセッションは破棄される
type MemorySessionsRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewMemorySessionsRepository(ttl time.Duration) repository.SessionsRepository {
	return &MemorySessionsRepository{
		cache: cache.New(ttl, ttl*2),
		ttl:   ttl,
	}
}

func (r *MemorySessionsRepository) Save(ctx context.Context, session *model.ChatSession) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("セッションIDが空です")
	}
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
	log.Printf("💾 Chat session stored: %s (expires in %s)", session.ID, r.ttl)
	return nil
}

func (r *MemorySessionsRepository) Get(ctx context.Context, id string) (*model.ChatSession, error) {
	v, ok := r.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("セッション %s: %w", id, model.ErrSessionNotFound)
	}
	session, ok := v.(*model.ChatSession)
	if !ok {
		return nil, fmt.Errorf("セッション %s のデータ形式が不正です", id)
	}
	// アクセスごとに有効期限を延長する
	r.cache.Set(id, session, cache.DefaultExpiration)
	return session, nil
}

func (r *MemorySessionsRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.cache.Get(id); !ok {
		return fmt.Errorf("セッション %s: %w", id, model.ErrSessionNotFound)
	}
	r.cache.Delete(id)
	return nil
}
