package ai

import "context"

// Client интерфейс для взаимодействия с AI. Все реализации должны быть взаимозаменяемыми.
// При media == nil отправляется только текст.
type Client interface {
	SendRequest(ctx context.Context, text string, media *Media) (string, error)
}
