package shared

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/nursenote-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	withTrace := SetTraceID(ctx)
	traceID := GetTraceID(withTrace)
	assert.Len(t, traceID, 32, "trace IDs are 32 hex characters")
	assert.NotContains(t, traceID, "-")
	assert.Empty(t, GetTraceID(ctx), "the parent context is unchanged")

	assert.NotEqual(t, traceID, NewTraceID())
	assert.Equal(t, "abc", GetTraceID(WithTraceID(ctx, "abc")))
	assert.Empty(t, GetTraceID(context.WithValue(ctx, TraceIDKey, 123)))
}

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	log := logger.New(&logs, slog.LevelDebug).With("trace_id", "trace-123")

	ctx := WithTraceID(context.Background(), "trace-123")
	ctx = logger.WithLogger(ctx, log)
	req := httptest.NewRequest(http.MethodPost, "/generate", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	cause := errors.New("dial tcp: api_key=sk-abcdefghijklmnopqrstuvwxyz123456 refused")
	RespondWithErrorAndLog(w, req, http.StatusBadGateway, "AI生成中にエラーが発生しました。", cause)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{
		"error":    "AI生成中にエラーが発生しました。",
		"trace_id": "trace-123",
	}, body, "only the safe message and trace ID are serialized")

	logged := logs.String()
	assert.Contains(t, logged, `"level":"ERROR"`)
	assert.Contains(t, logged, `"trace_id":"trace-123"`)
	assert.Contains(t, logged, `"status_code":502`)
	assert.NotContains(t, logged, "sk-abcdefghijklmnopqrstuvwxyz123456", "secrets are redacted in logs")
}

func TestRespondWithErrorOmitsMissingTraceID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/generate", nil)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "リクエスト形式が不正です。")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"リクエスト形式が不正です。"}`, w.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		S string `json:"s"`
	}

	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
		tooBig  bool
	}{
		{name: "valid", body: `{"s":"眠れない"}`, want: "眠れない"},
		{name: "unknown fields ignored", body: `{"s":"a","extra":1}`, want: "a"},
		{name: "empty", body: ``, wantErr: true},
		{name: "malformed", body: `{"s":`, wantErr: true},
		{name: "wrong type", body: `{"s":123}`, wantErr: true},
		{name: "trailing value", body: `{"s":"a"}{"s":"b"}`, wantErr: true},
		{name: "too large", body: `{"s":"` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`, wantErr: true, tooBig: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			var got payload
			err := DecodeJSON(w, req, &got)

			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, tc.tooBig, IsBodyTooLarge(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.S)
		})
	}
}

func TestValidateRequestUsesJSONNames(t *testing.T) {
	t.Parallel()

	type request struct {
		VisitDate string `json:"visitDate" validate:"omitempty,datetime=2006-01-02"`
	}

	assert.NoError(t, ValidateRequest(request{}))
	assert.NoError(t, ValidateRequest(request{VisitDate: "2025-01-10"}))

	err := ValidateRequest(request{VisitDate: "10/01/2025"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "visitDate")
}
