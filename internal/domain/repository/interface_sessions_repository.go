package repository

import (
	"context"

	"Tourism-App/internal/domain/model"
)

// SessionsRepository はチャットセッションをプロセス内で保持するリポジトリ
type SessionsRepository interface {
	Save(ctx context.Context, session *model.ChatSession) error
	// 存在しない・期限切れの場合は model.ErrSessionNotFound を返す
	Get(ctx context.Context, id string) (*model.ChatSession, error)
	Delete(ctx context.Context, id string) error
}
