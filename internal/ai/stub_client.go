package ai

import "context"

// StubClient заглушка, которая не делает реальных запросов и всегда отвечает reply
type StubClient struct {
	reply string
}

func NewStubClient(reply string) *StubClient { return &StubClient{reply: reply} }

func (c *StubClient) SendRequest(_ context.Context, _ string, _ *Media) (string, error) {
	return c.reply, nil
}
