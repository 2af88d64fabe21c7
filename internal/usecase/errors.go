package usecase

import (
	"errors"
	"fmt"
)

// HTTPError はhandlerがレスポンスに変換するドメインエラー。
type HTTPError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

// NewValidationError は422用のフィールド別メッセージを運ぶ。
func NewValidationError(fields map[string]string) error {
	return &HTTPError{
		Status:  422,
		Message: "validation error",
		Fields:  fields,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
