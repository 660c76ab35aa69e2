package usecase

import (
	"Tourism-App/internal/domain/model"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

const feedbackThanksMessage = "Thank you for your feedback! Your response helps us improve our services."

type FeedbackUseCase interface {
	// SubmitFeedback は評価を検証して受け付ける。保存はせずログにのみ残す
	SubmitFeedback(ctx context.Context, req *model.FeedbackRequest) (*model.FeedbackResponse, error)
}

type feedbackUseCaseImpl struct {
	now func() time.Time
}

func NewFeedbackUseCase() FeedbackUseCase {
	return &feedbackUseCaseImpl{now: time.Now}
}

func (u *feedbackUseCaseImpl) SubmitFeedback(ctx context.Context, req *model.FeedbackRequest) (*model.FeedbackResponse, error) {
	if req.Rating == 0 {
		return nil, model.NewValidationError("rating", "Please select a rating before submitting your feedback.")
	}
	if req.Rating < model.MinFeedbackRating || req.Rating > model.MaxFeedbackRating {
		return nil, model.NewValidationError("rating", fmt.Sprintf("rating must be between %d and %d", model.MinFeedbackRating, model.MaxFeedbackRating))
	}

	feedback := model.Feedback{
		ID:         uuid.New().String(),
		Rating:     req.Rating,
		Comments:   strings.TrimSpace(req.Comments),
		Email:      strings.TrimSpace(req.Email),
		ReceivedAt: u.now(),
	}
	log.Printf("📝 フィードバック受付 (ID: %s, 評価: %d, コメント: %d文字)", feedback.ID, feedback.Rating, len(feedback.Comments))

	return &model.FeedbackResponse{
		Status:     "ok",
		FeedbackID: feedback.ID,
		Message:    feedbackThanksMessage,
	}, nil
}
