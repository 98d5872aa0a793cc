package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Rorical/LofiStudio/internal/config"
	"github.com/Rorical/LofiStudio/internal/core"
	"github.com/Rorical/LofiStudio/internal/metrics"
	"github.com/Rorical/LofiStudio/internal/models"
)

type stubGenerator struct {
	configured bool
	generateFn func(ctx context.Context, req core.PromptRequest) (string, error)
	calls      int
}

func (s *stubGenerator) CreateLofiMusicPrompt(ctx context.Context, req core.PromptRequest) (string, error) {
	s.calls++
	if s.generateFn == nil {
		return "", errors.New("unexpected call")
	}
	return s.generateFn(ctx, req)
}

func (s *stubGenerator) IsConfigured() bool {
	return s.configured
}

func newRouterUnderTest(t *testing.T, gen core.PromptGenerator) http.Handler {
	t.Helper()
	return New(gen, metrics.New(), zaptest.NewLogger(t), "").Router()
}

func performRequest(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, body []byte) map[string]map[string]string {
	t.Helper()
	var out map[string]map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestRouter_CreatePromptSuccess(t *testing.T) {
	gen := &stubGenerator{
		configured: true,
		generateFn: func(_ context.Context, req core.PromptRequest) (string, error) {
			require.Equal(t, "rainy", req.Weather)
			require.Equal(t, "calm", req.Mood)
			require.Empty(t, req.Model)
			return "70 BPM, soft rain, warm Rhodes", nil
		},
	}

	rec := performRequest(newRouterUnderTest(t, gen), http.MethodPost, "/v1/prompts", `{"weather":" rainy ","mood":"calm"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	var got promptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, promptResponse{
		Prompt:  "70 BPM, soft rain, warm Rhodes",
		Weather: "rainy",
		Mood:    "calm",
		Model:   core.DefaultModel,
	}, got)
}

func TestRouter_CreatePromptExplicitModel(t *testing.T) {
	gen := &stubGenerator{
		configured: true,
		generateFn: func(_ context.Context, req core.PromptRequest) (string, error) {
			return "prompt for " + req.Model, nil
		},
	}

	rec := performRequest(newRouterUnderTest(t, gen), http.MethodPost, "/v1/prompts", `{"weather":"snowy","mood":"dreamy","model":"llama-3.1-8b-instant"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got promptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "llama-3.1-8b-instant", got.Model)
	assert.Equal(t, "prompt for llama-3.1-8b-instant", got.Prompt)
}

func TestRouter_CreatePromptRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"invalid json", `{"weather":1}`, "invalid_request"},
		{"missing mood", `{"weather":"rainy"}`, "invalid_input"},
		{"blank weather", `{"weather":"  ","mood":"calm"}`, "invalid_input"},
		{"unknown weather", `{"weather":"hail","mood":"calm"}`, "unknown_weather"},
		{"unknown mood", `{"weather":"rainy","mood":"angry"}`, "unknown_mood"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{configured: true}

			rec := performRequest(newRouterUnderTest(t, gen), http.MethodPost, "/v1/prompts", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.code, decodeErrorBody(t, rec.Body.Bytes())["error"]["code"])
			assert.Zero(t, gen.calls)
		})
	}
}

func TestRouter_CreatePromptMapsErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"config", &core.ConfigError{Key: config.APIKeyEnv}, http.StatusServiceUnavailable, "not_configured", "Missing GROQ_API_KEY"},
		{"empty", core.ErrEmptyResult, http.StatusBadGateway, "empty_result", "no prompt was returned"},
		{"provider", errors.Join(core.ErrProvider, errors.New("429 rate limited")), http.StatusBadGateway, "provider_error", "429 rate limited"},
		{"unknown", errors.New(""), http.StatusInternalServerError, "internal_error", models.GenericFailureMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{
				generateFn: func(context.Context, core.PromptRequest) (string, error) {
					return "", tt.err
				},
			}

			rec := performRequest(newRouterUnderTest(t, gen), http.MethodPost, "/v1/prompts", `{"weather":"foggy","mood":"tired"}`)
			require.Equal(t, tt.status, rec.Code)

			body := decodeErrorBody(t, rec.Body.Bytes())
			assert.Equal(t, tt.code, body["error"]["code"])
			assert.Contains(t, body["error"]["message"], tt.message)
		})
	}
}

func TestRouter_KeepsIncomingRequestID(t *testing.T) {
	h := newRouterUnderTest(t, &stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRouter_Health(t *testing.T) {
	rec := performRequest(newRouterUnderTest(t, &stubGenerator{configured: false}), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, false, body["configured"])
}

func TestRouter_Options(t *testing.T) {
	rec := performRequest(newRouterUnderTest(t, &stubGenerator{}), http.MethodGet, "/v1/options", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body optionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Weather, len(models.WeatherOptions()))
	require.Len(t, body.Mood, len(models.MoodOptions()))
	assert.Equal(t, "rainy", body.Weather[0].Value)
	assert.Equal(t, "Clear Night", body.Weather[7].Label)
	assert.Equal(t, "focused", body.Mood[0].Value)
}

func TestRouter_Metrics(t *testing.T) {
	rec := metrics.New()
	rec.Observe(metrics.OutcomeSuccess, 0)
	h := New(&stubGenerator{}, rec, nil, "").Router()

	resp := performRequest(h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `lofistudio_prompt_requests_total{outcome="success"} 1`)
}
