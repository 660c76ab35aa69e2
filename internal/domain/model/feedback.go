package model

import "time"

// 評価の範囲
const (
	MinFeedbackRating = 1
	MaxFeedbackRating = 5
)

// FeedbackRequest はフィードバック送信APIのリクエスト
type FeedbackRequest struct {
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// Feedback 受け付けたフィードバック（保存はしない）
type Feedback struct {
	ID         string
	Rating     int
	Comments   string
	Email      string
	ReceivedAt time.Time
}

// FeedbackResponse はフィードバック送信APIのレスポンス
type FeedbackResponse struct {
	Status     string `json:"status"`
	FeedbackID string `json:"feedback_id"`
	Message    string `json:"message"`
}
