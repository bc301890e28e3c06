package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/nursenote-api/internal/domain"
)

// Caller-facing messages.
const (
	MsgInvalidRequest   = "リクエスト形式が不正です。"
	MsgRequestTooLarge  = "リクエストが大きすぎます。"
	MsgInvalidField     = "入力値が不正です"
	MsgGenerationFailed = "AI生成中にエラーが発生しました。"
	MsgNotFound         = "指定されたURLは存在しません。"
	MsgMethodNotAllowed = "許可されていないメソッドです。"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error kind. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrProvider):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error kind. Validation messages are written for callers and
// returned as is; every other failure gets the generic generation message.
func GetSafeErrorMessage(err error) string {
	var de *domain.Error
	if errors.As(err, &de) && de.Kind == domain.KindValidation && de.Message != "" {
		return de.Message
	}
	return MsgGenerationFailed
}

// SanitizeValidationError turns struct validation failures into a message
// naming the offending JSON fields and nothing else.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return MsgInvalidRequest
	}

	msg := MsgInvalidField + ": "
	seen := make(map[string]bool, len(verrs))
	first := true
	for _, fe := range verrs {
		field := fe.Field()
		if seen[field] {
			continue
		}
		seen[field] = true
		if !first {
			msg += ", "
		}
		msg += field
		first = false
	}
	return msg
}
