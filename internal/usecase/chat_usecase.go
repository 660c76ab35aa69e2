package usecase

import (
	"Tourism-App/internal/domain/model"
	"Tourism-App/internal/domain/repository"
	"Tourism-App/internal/domain/service"
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ChatUseCase interface {
	// StartSession は新しいチャットセッションを開始し、ボットの挨拶を記録する
	StartSession(ctx context.Context) (*model.ChatSessionResponse, error)

	// SendMessage は発言を受け取り、応答遅延の後にボットの応答を返す
	SendMessage(ctx context.Context, sessionID, text string) (*model.ChatResponse, error)

	// GetSession は会話ログと推定した好みを返す
	GetSession(ctx context.Context, sessionID string) (*model.ChatSessionResponse, error)

	// ClearSession は会話状態を空に戻す
	ClearSession(ctx context.Context, sessionID string) (*model.ChatSessionResponse, error)
}

// DelayRange は応答遅延の範囲（一様分布）
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

// Pick は範囲内の遅延を1つ選ぶ
func (d DelayRange) Pick() time.Duration {
	if d.Max <= d.Min {
		return d.Min
	}
	return d.Min + time.Duration(rand.Int64N(int64(d.Max-d.Min)+1))
}

// chatUseCaseImpl はChatUseCaseの実装
type chatUseCaseImpl struct {
	sessionsRepo repository.SessionsRepository
	engine       service.ResponseEngine
	renderer     *service.ResponseRenderer
	delay        DelayRange
	now          func() time.Time
}

// NewChatUseCase は新しいChatUseCaseインスタンスを作成
func NewChatUseCase(
	sessionsRepo repository.SessionsRepository,
	engine service.ResponseEngine,
	renderer *service.ResponseRenderer,
	delay DelayRange,
) ChatUseCase {
	return &chatUseCaseImpl{
		sessionsRepo: sessionsRepo,
		engine:       engine,
		renderer:     renderer,
		delay:        delay,
		now:          time.Now,
	}
}

func (u *chatUseCaseImpl) StartSession(ctx context.Context) (*model.ChatSessionResponse, error) {
	session := &model.ChatSession{
		ID:        uuid.New().String(),
		State:     model.NewConversationState(),
		CreatedAt: u.now(),
	}
	session.State.Append(model.SenderBot, service.WelcomeMessage, u.now())

	if err := u.sessionsRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("チャットセッションの作成に失敗: %w", err)
	}

	log.Printf("💬 チャットセッション開始 (ID: %s)", session.ID)
	return &model.ChatSessionResponse{
		SessionID: session.ID,
		State:     session.State.Clone(),
	}, nil
}

func (u *chatUseCaseImpl) SendMessage(ctx context.Context, sessionID, text string) (*model.ChatResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, model.NewValidationError("message", "message must not be empty")
	}

	session, err := u.sessionsRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	task := StartDeferred(ctx, u.delay.Pick(), func() (*model.ChatResponse, error) {
		session.Mutex.Lock()
		defer session.Mutex.Unlock()

		// 待機中に中断されたリクエストの発言は会話状態に反映しない
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("応答前に中断されました: %w", err)
		}
		reply := u.engine.Respond(text, session.State)
		return &model.ChatResponse{
			SessionID:   session.ID,
			Message:     reply.Message,
			HTML:        u.renderer.Render(reply.Message),
			Suggestions: reply.Suggestions,
			Preferences: session.State.Preferences.Clone(),
		}, nil
	})

	resp, err := Await(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("チャット応答の生成に失敗: %w", err)
	}

	log.Printf("🤖 チャット応答 (ID: %s, 候補: %d件)", sessionID, len(resp.Suggestions))
	return resp, nil
}

func (u *chatUseCaseImpl) GetSession(ctx context.Context, sessionID string) (*model.ChatSessionResponse, error) {
	session, err := u.sessionsRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Mutex.Lock()
	defer session.Mutex.Unlock()
	return &model.ChatSessionResponse{
		SessionID: session.ID,
		State:     session.State.Clone(),
	}, nil
}

func (u *chatUseCaseImpl) ClearSession(ctx context.Context, sessionID string) (*model.ChatSessionResponse, error) {
	session, err := u.sessionsRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Mutex.Lock()
	defer session.Mutex.Unlock()
	session.State.Reset()

	log.Printf("🧹 チャット履歴をクリア (ID: %s)", sessionID)
	return &model.ChatSessionResponse{
		SessionID: session.ID,
		State:     session.State.Clone(),
	}, nil
}
