package model

import (
	"sync"
	"time"
)

// ChatMessage 会話ログの1件
type ChatMessage struct {
	Sender    string    `json:"sender"` // "user" or "bot"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// UserPreferences 会話から推定したユーザーの好み
type UserPreferences struct {
	Budget    string   `json:"budget,omitempty"`   // 最後に検出した予算帯
	Interests []string `json:"interests"`          // 検出順、重複なし
	Duration  string   `json:"duration,omitempty"` // "3 days" のような表記をそのまま保持
}

// AddInterest 興味タグを重複なしで追加する
func (p *UserPreferences) AddInterest(interest string) {
	for _, existing := range p.Interests {
		if existing == interest {
			return
		}
	}
	p.Interests = append(p.Interests, interest)
}

// ConversationState 1セッション分の会話状態
// 明示的なクリア以外では単調に増加し、永続化はしない
type ConversationState struct {
	Messages         []ChatMessage   `json:"messages"`
	Preferences      UserPreferences `json:"preferences"`
	FirstInteraction bool            `json:"first_interaction"`
}

// NewConversationState 空の会話状態を作成する
func NewConversationState() *ConversationState {
	return &ConversationState{
		Messages:         []ChatMessage{},
		Preferences:      UserPreferences{Interests: []string{}},
		FirstInteraction: true,
	}
}

// Append 会話ログに1件追加する
func (s *ConversationState) Append(sender, text string, at time.Time) {
	s.Messages = append(s.Messages, ChatMessage{Sender: sender, Text: text, Timestamp: at})
}

// Reset 会話状態を初期状態に戻す
func (s *ConversationState) Reset() {
	*s = *NewConversationState()
}

// Clone ロック外で返せるように会話状態を複製する
func (s *ConversationState) Clone() *ConversationState {
	clone := &ConversationState{
		Messages:         append([]ChatMessage{}, s.Messages...),
		Preferences:      s.Preferences.Clone(),
		FirstInteraction: s.FirstInteraction,
	}
	return clone
}

// Clone 好みを複製する
func (p UserPreferences) Clone() UserPreferences {
	return UserPreferences{
		Budget:    p.Budget,
		Interests: append([]string{}, p.Interests...),
		Duration:  p.Duration,
	}
}

// SuggestionChip 応答後に表示するクイック返信
type SuggestionChip struct {
	Label string `json:"label"`
}

// BotReply Response Engineの出力
type BotReply struct {
	Message     string           `json:"message"`
	Suggestions []SuggestionChip `json:"suggestions"`
	RuleName    string           `json:"rule"`
}

// ChatSession セッションIDと会話状態の組
// 同一セッションへのHTTPリクエストが同時に届く可能性があるためロックを持つ
type ChatSession struct {
	ID        string
	State     *ConversationState
	CreatedAt time.Time
	Mutex     sync.Mutex
}

// ChatRequest はチャットAPIのリクエスト
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse はチャットAPIのレスポンス
type ChatResponse struct {
	SessionID   string           `json:"session_id"`
	Message     string           `json:"message"`
	HTML        string           `json:"html"`
	Suggestions []SuggestionChip `json:"suggestions"`
	Preferences UserPreferences  `json:"preferences"`
}

// ChatSessionResponse はセッション作成・取得APIのレスポンス
type ChatSessionResponse struct {
	SessionID string             `json:"session_id"`
	State     *ConversationState `json:"state"`
}
