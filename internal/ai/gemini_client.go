package ai

import (
	"SkinToneAdvisor/internal/config"
	"context"
	"errors"

	"google.golang.org/genai"
)

// GeminiClient отправляет текст и картинку (inline data) в Gemini с детерминированным декодированием
type GeminiClient struct {
	client *genai.Client
	model  string
	gen    *genai.GenerateContentConfig
}

func NewGeminiClient(client *genai.Client, cfg *config.Config) *GeminiClient {
	return &GeminiClient{
		client: client,
		model:  cfg.Analyzer.GeminiModel,
		// temperature=0 и topK=1: всегда самый вероятный токен
		gen: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](0),
			TopP:            genai.Ptr[float32](1),
			TopK:            genai.Ptr[float32](1),
			MaxOutputTokens: cfg.Analyzer.MaxOutputTokens,
		},
	}
}

func (c *GeminiClient) SendRequest(ctx context.Context, text string, media *Media) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(text)}
	if media != nil {
		parts = append(parts, genai.NewPartFromBytes(media.Data, media.MimeType))
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}, c.gen)
	if err != nil {
		return "", err
	}
	out := resp.Text()
	if out == "" {
		return "", errors.New("gemini: empty response text")
	}
	return out, nil
}
