package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/marcela981/Somos-Server/internal/models"
	"github.com/rs/zerolog"
)

type GatewaySource string

const (
	GatewaySourceModel    GatewaySource = "model"
	GatewaySourceFallback GatewaySource = "fallback"
)

// GatewayResult is what an advisory invocation always yields. Text is usable
// in every case; when Source is fallback, Cause records why the model call
// was abandoned so the orchestrator can log it.
type GatewayResult struct {
	Text   string
	Source GatewaySource
	Cause  error
}

type AdvisoryGateway interface {
	Invoke(ctx context.Context, intent models.AdvisoryIntent, prompt string) GatewayResult
}

const DefaultGatewayTimeout = 8 * time.Second

// GeminiGateway performs a single generateContent call per invocation.
// No retries: advisory content is best-effort and latency-sensitive, so a
// failed attempt degrades straight to the canned fallback.
type GeminiGateway struct {
	client *resty.Client
	model  string
	log    zerolog.Logger
}

func NewGeminiGateway(baseURL, apiKey, model string, timeout time.Duration, log zerolog.Logger) *GeminiGateway {
	if timeout <= 0 {
		timeout = DefaultGatewayTimeout
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(apiKey).
		SetTimeout(timeout)

	return &GeminiGateway{client: client, model: model, log: log}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiGateway) Invoke(ctx context.Context, intent models.AdvisoryIntent, prompt string) GatewayResult {
	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(&body).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", g.model))
	if err != nil {
		return g.fallback(intent, fmt.Errorf("gemini request: %w", err))
	}
	if resp.StatusCode() != http.StatusOK {
		return g.fallback(intent, fmt.Errorf("gemini status %d: %s", resp.StatusCode(), resp.String()))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return g.fallback(intent, fmt.Errorf("decode gemini response: %w", err))
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return g.fallback(intent, fmt.Errorf("gemini response has no candidates"))
	}
	text := parsed.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return g.fallback(intent, fmt.Errorf("gemini response has empty text"))
	}

	return GatewayResult{Text: text, Source: GatewaySourceModel}
}

func (g *GeminiGateway) fallback(intent models.AdvisoryIntent, cause error) GatewayResult {
	g.log.Warn().
		Err(cause).
		Str("intent", string(intent)).
		Msg("generative model call failed, serving fallback")
	return GatewayResult{
		Text:   FallbackText(intent),
		Source: GatewaySourceFallback,
		Cause:  cause,
	}
}
