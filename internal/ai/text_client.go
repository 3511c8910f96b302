package ai

import (
	"SkinToneAdvisor/internal/config"
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
)

// TextClient отправляет только текст в OpenAI (Chat Completions) с фиксированной температурой
type TextClient struct {
	client      *openai.Client
	model       string
	temperature float64
}

func NewTextClient(client *openai.Client, cfg *config.Config) *TextClient {
	return &TextClient{
		client:      client,
		model:       cfg.Chat.Model,
		temperature: cfg.Chat.Temperature,
	}
}

// SendRequest возвращает текст первого варианта как есть; media игнорируется.
func (c *TextClient) SendRequest(ctx context.Context, text string, _ *Media) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Temperature: openai.Float(c.temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(text),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai chat: no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
