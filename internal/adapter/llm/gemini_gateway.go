package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"media-quiz/internal/domain"
	"media-quiz/internal/logger"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultGeminiModel is the Gemini model used when none is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiGateway serves the GoogleBard provider key through the Gemini API. The
// response is returned as free text.
type GeminiGateway struct {
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiGateway creates a GeminiGateway. An empty baseURL uses the public API.
func NewGeminiGateway(model, baseURL string, httpClient *http.Client) *GeminiGateway {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiGateway{
		model:      model,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Call constructs a client from the credential and sends the prompt once.
func (g *GeminiGateway) Call(ctx context.Context, credential string, prompt string) (domain.GeneratedQuiz, error) {
	if credential == "" {
		return nil, errors.New("Gemini API key cannot be empty")
	}

	cc := &genai.ClientConfig{
		APIKey:     credential,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.httpClient,
	}
	if g.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	l := logger.Get()
	l.Debug("Calling Gemini", zap.String("model", g.model), zap.Int("prompt_length", len(prompt)))

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("Gemini content generation failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return nil, errors.New("Gemini returned an empty response")
	}

	l.Info("Gemini quiz generated", zap.Int("length", len(text)))
	return domain.TextQuiz{Text: text}, nil
}

var _ domain.LLMGateway = (*GeminiGateway)(nil)
