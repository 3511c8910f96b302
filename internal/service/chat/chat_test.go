package chat_test

import (
	"SkinToneAdvisor/internal/ai"
	"SkinToneAdvisor/internal/apperr"
	"SkinToneAdvisor/internal/config"
	"SkinToneAdvisor/internal/service/chat"
	"context"
	"errors"
	"testing"
)

type fakeModel struct {
	reply  string
	err    error
	calls  int
	prompt string
	media  *ai.Media
}

func (m *fakeModel) SendRequest(_ context.Context, text string, media *ai.Media) (string, error) {
	m.calls++
	m.prompt = text
	m.media = media
	return m.reply, m.err
}

func TestPrompt(t *testing.T) {
	c := chat.New(&fakeModel{}, "Q: {question} / again: {question}")
	if got, want := c.Prompt("why?"), "Q: why? / again: why?"; got != want {
		t.Errorf("Prompt() = %q, want %q", got, want)
	}

	def := chat.New(&fakeModel{}, config.DefaultChatPromptTemplate)
	if got, want := def.Prompt("hello"), "คุณเป็นผู้ช่วยที่เป็นมิตร ตอบคำถามต่อไปนี้: hello"; got != want {
		t.Errorf("default Prompt() = %q, want %q", got, want)
	}
}

func TestReplyVerbatim(t *testing.T) {
	m := &fakeModel{reply: "  Hello!\n\n"}
	c := chat.New(m, config.DefaultChatPromptTemplate)

	got, err := c.Reply(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if got != "  Hello!\n\n" {
		t.Errorf("Reply() = %q, want verbatim completion", got)
	}
	if m.media != nil {
		t.Errorf("chat must not send media")
	}
	if m.prompt != c.Prompt("hi") {
		t.Errorf("model prompt = %q", m.prompt)
	}
}

func TestReplyErrors(t *testing.T) {
	m := &fakeModel{}
	c := chat.New(m, config.DefaultChatPromptTemplate)

	_, err := c.Reply(context.Background(), "")
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Reply(\"\") error = %v, want ValidationError", err)
	}
	if m.calls != 0 {
		t.Errorf("model called on empty message")
	}

	m.err = errors.New("rate limited")
	_, err = c.Reply(context.Background(), "hi")
	var ue *apperr.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("Reply() error = %v, want UpstreamError", err)
	}
}
