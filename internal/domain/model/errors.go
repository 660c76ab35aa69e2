package model

import "errors"

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError は新しいValidationErrorを作成
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

var (
	// ErrSessionNotFound はチャットセッションが存在しない（期限切れを含む）
	ErrSessionNotFound = errors.New("chat session not found")
	// ErrProductNotFound は商品IDがカタログに存在しない
	ErrProductNotFound = errors.New("product not found")
)
