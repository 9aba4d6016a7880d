// Package llm holds the LLM provider gateways and the registry that selects one
// per request.
package llm

import (
	"context"

	"media-quiz/internal/domain"
)

// Registry routes a ServiceInfo to the gateway of its provider. A provider without
// a gateway is treated as unsupported.
type Registry struct {
	openAI domain.LLMGateway
	gemini domain.LLMGateway
}

// NewRegistry creates a Registry. Either gateway may be nil.
func NewRegistry(openAI, gemini domain.LLMGateway) *Registry {
	return &Registry{openAI: openAI, gemini: gemini}
}

// Call dispatches prompt to the provider selected by info.
func (r *Registry) Call(ctx context.Context, info domain.ServiceInfo, prompt string) (domain.GeneratedQuiz, error) {
	gateway, err := r.gateway(info.Provider)
	if err != nil {
		return nil, err
	}
	return gateway.Call(ctx, info.Key, prompt)
}

func (r *Registry) gateway(provider domain.Provider) (domain.LLMGateway, error) {
	var gateway domain.LLMGateway
	switch provider {
	case domain.ProviderOpenAIGPT:
		gateway = r.openAI
	case domain.ProviderGoogleBard:
		gateway = r.gemini
	}
	if gateway == nil {
		return nil, domain.NewUnsupportedProviderError(provider)
	}
	return gateway, nil
}

var _ domain.LLMDispatcher = (*Registry)(nil)
