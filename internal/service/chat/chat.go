package chat

import (
	"SkinToneAdvisor/internal/ai"
	"SkinToneAdvisor/internal/apperr"
	"context"
	"strings"
)

// Placeholder в шаблоне промпта, вместо которого подставляется сообщение пользователя.
const Placeholder = "{question}"

// Chat — однократный запрос к текстовой модели по фиксированному шаблону.
type Chat struct {
	model    ai.Client
	template string
}

func New(model ai.Client, template string) *Chat {
	return &Chat{model: model, template: template}
}

// Prompt подставляет сообщение в шаблон.
func (c *Chat) Prompt(message string) string {
	return strings.ReplaceAll(c.template, Placeholder, message)
}

// Reply возвращает ответ модели без изменений.
func (c *Chat) Reply(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", apperr.Validation("message", "Message is required")
	}
	reply, err := c.model.SendRequest(ctx, c.Prompt(message), nil)
	if err != nil {
		return "", apperr.Upstream("chat completion", err)
	}
	return reply, nil
}
