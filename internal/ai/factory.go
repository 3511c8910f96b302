package ai

import (
	"SkinToneAdvisor/internal/config"
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"google.golang.org/genai"
)

// NewAnalyzerClient создаёт мультимодальный клиент согласно cfg.Analyzer.Provider.
func NewAnalyzerClient(ctx context.Context, cfg *config.Config) (Client, error) {
	switch cfg.Analyzer.Provider {
	case config.ProviderGemini:
		gClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Analyzer.GoogleAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("gemini: create client: %w", err)
		}
		return NewGeminiClient(gClient, cfg), nil
	case config.ProviderOpenAI:
		oClient := openai.NewClient(option.WithAPIKey(cfg.Analyzer.OpenAIAPIKey))
		return NewVisionClient(&oClient, cfg), nil
	case config.ProviderStub:
		return NewStubClient(cfg.Analyzer.StubReply), nil
	default:
		return nil, fmt.Errorf("unknown analyzer provider %q", cfg.Analyzer.Provider)
	}
}

// NewChatClient создаёт текстовый клиент согласно cfg.Chat.Provider.
func NewChatClient(cfg *config.Config) (Client, error) {
	switch cfg.Chat.Provider {
	case config.ProviderOpenAI:
		oClient := openai.NewClient(option.WithAPIKey(cfg.Chat.OpenAIAPIKey))
		return NewTextClient(&oClient, cfg), nil
	case config.ProviderStub:
		return NewStubClient(cfg.Chat.StubReply), nil
	default:
		return nil, fmt.Errorf("unknown chat provider %q", cfg.Chat.Provider)
	}
}
