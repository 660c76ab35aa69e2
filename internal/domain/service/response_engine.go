package service

import (
	"Tourism-App/internal/domain/model"
	"strings"
	"time"
)

// ResponseEngine はキーワード一致でボットの応答を選ぶ
type ResponseEngine interface {
	// Respond は発言に対する応答を返し、会話状態（ログと好み）を更新する
	Respond(text string, state *model.ConversationState) model.BotReply
	// Match は会話状態を変更せずに一致するルールを返す
	Match(text string) ResponseRule
}

type responseEngine struct {
	rules    []ResponseRule
	fallback ResponseRule
	now      func() time.Time
}

func NewResponseEngine() ResponseEngine {
	return NewResponseEngineWithRules(DefaultResponseRules(), time.Now)
}

// NewResponseEngineWithRules はルール表と時計を指定してResponseEngineを作成
func NewResponseEngineWithRules(rules []ResponseRule, now func() time.Time) ResponseEngine {
	return &responseEngine{
		rules:    rules,
		fallback: FallbackRule(),
		now:      now,
	}
}

// Match はルール表を先頭から走査し、最初に一致したルールを返す
func (e *responseEngine) Match(text string) ResponseRule {
	lower := strings.ToLower(text)
	for _, rule := range e.rules {
		if containsAny(lower, rule.Keywords) {
			return rule
		}
	}
	return e.fallback
}

func (e *responseEngine) Respond(text string, state *model.ConversationState) model.BotReply {
	state.Append(model.SenderUser, text, e.now())
	AnalyzeUserPreferences(text, &state.Preferences)

	rule := e.Match(text)

	state.Append(model.SenderBot, rule.Response, e.now())
	state.FirstInteraction = false

	return model.BotReply{
		Message:     rule.Response,
		Suggestions: toChips(rule.Suggestions),
		RuleName:    rule.Name,
	}
}
