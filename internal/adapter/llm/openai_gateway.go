package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"media-quiz/internal/domain"
	"media-quiz/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// DefaultOpenAIModel is the chat model used when none is configured.
const DefaultOpenAIModel = "gpt-4o-mini-2024-07-18"

// quizResponseFormat constrains the completion to the domain.QuizResponse shape.
var quizResponseFormat = &openai.ResponseFormat{
	Type: "json_schema",
	JSONSchema: &openai.ResponseFormatJSONSchema{
		Name:   "QuizResponse",
		Strict: true,
		Schema: &openai.ResponseFormatJSONSchemaProperty{
			Type: "object",
			Properties: map[string]*openai.ResponseFormatJSONSchemaProperty{
				"questions": {
					Type: "array",
					Items: &openai.ResponseFormatJSONSchemaProperty{
						Type: "object",
						Properties: map[string]*openai.ResponseFormatJSONSchemaProperty{
							"question_name": {Type: "string"},
							"options": {
								Type: "array",
								Items: &openai.ResponseFormatJSONSchemaProperty{
									Type: "object",
									Properties: map[string]*openai.ResponseFormatJSONSchemaProperty{
										"option_name": {Type: "string"},
									},
									Required: []string{"option_name"},
								},
							},
							"correct_answer": {Type: "string"},
						},
						Required: []string{"question_name", "options", "correct_answer"},
					},
				},
			},
			Required: []string{"questions"},
		},
	},
}

// OpenAIGateway calls the OpenAI chat completion API and returns a StructuredQuiz.
type OpenAIGateway struct {
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewOpenAIGateway creates an OpenAIGateway. An empty baseURL uses the public API.
func NewOpenAIGateway(model, baseURL string, httpClient *http.Client) *OpenAIGateway {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIGateway{
		model:      model,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Call issues a single chat completion with the credential as API key.
func (g *OpenAIGateway) Call(ctx context.Context, credential string, prompt string) (domain.GeneratedQuiz, error) {
	if credential == "" {
		return nil, errors.New("OpenAI API key cannot be empty")
	}

	opts := []openai.Option{
		openai.WithToken(credential),
		openai.WithModel(g.model),
		openai.WithResponseFormat(quizResponseFormat),
	}
	if g.baseURL != "" {
		opts = append(opts, openai.WithBaseURL(g.baseURL))
	}
	if g.httpClient != nil {
		opts = append(opts, openai.WithHTTPClient(g.httpClient))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	l := logger.Get()
	l.Debug("Calling OpenAI", zap.String("model", g.model), zap.Int("prompt_length", len(prompt)))

	resp, err := client.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("OpenAI returned no choices")
	}

	raw := resp.Choices[0].Content
	var quiz domain.QuizResponse
	if err := json.Unmarshal([]byte(raw), &quiz); err != nil {
		l.Error("Failed to parse structured OpenAI response", zap.Error(err), zap.String("content", raw))
		return nil, fmt.Errorf("failed to parse OpenAI response: %w", err)
	}

	l.Info("OpenAI quiz generated", zap.Int("questions", len(quiz.Questions)))
	return domain.StructuredQuiz{Quiz: quiz}, nil
}

var _ domain.LLMGateway = (*OpenAIGateway)(nil)
