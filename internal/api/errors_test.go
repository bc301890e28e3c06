package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/nursenote-api/internal/api/shared"
	"github.com/phrazzld/nursenote-api/internal/domain"
	"github.com/phrazzld/nursenote-api/internal/generation"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: domain.NewValidationError(domain.MsgSubjectiveOrObjectiveRequired), want: http.StatusBadRequest},
		{name: "provider", err: domain.NewProviderError("openai request failed", generation.ErrConnection), want: http.StatusBadGateway},
		{name: "wrapped provider", err: fmt.Errorf("generate: %w", domain.NewProviderError("x", nil)), want: http.StatusBadGateway},
		{name: "unexpected", err: domain.NewUnexpectedError("boom", nil), want: http.StatusInternalServerError},
		{name: "plain error", err: errors.New("plain"), want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.MsgSubjectiveOrObjectiveRequired,
		GetSafeErrorMessage(domain.NewValidationError(domain.MsgSubjectiveOrObjectiveRequired)))
	assert.Equal(t, MsgGenerationFailed,
		GetSafeErrorMessage(domain.NewProviderError("openai request failed: api_key=secret", errors.New("secret"))))
	assert.Equal(t, MsgGenerationFailed, GetSafeErrorMessage(errors.New("internal detail")))
	assert.Equal(t, MsgGenerationFailed, GetSafeErrorMessage(nil))
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := shared.ValidateRequest(GenerateV2Request{
		Nurses:    []string{"佐藤", string(make([]rune, 101))},
		VisitDate: "not-a-date",
	})

	msg := SanitizeValidationError(err)
	assert.Equal(t, MsgInvalidField+": nurses[1], visitDate", msg)
	assert.NotContains(t, msg, "not-a-date")

	assert.Equal(t, MsgInvalidRequest, SanitizeValidationError(errors.New("other")))
}
