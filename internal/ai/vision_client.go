package ai

import (
	"SkinToneAdvisor/internal/config"
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/responses"
)

// VisionClient отправляет текст и картинку в OpenAI (Responses API). Картинка передаётся как data URL.
type VisionClient struct {
	client    *openai.Client
	model     string
	maxTokens int64
}

func NewVisionClient(client *openai.Client, cfg *config.Config) *VisionClient {
	return &VisionClient{
		client:    client,
		model:     cfg.Analyzer.VisionModel,
		maxTokens: int64(cfg.Analyzer.MaxOutputTokens),
	}
}

func (c *VisionClient) SendRequest(ctx context.Context, text string, media *Media) (string, error) {
	content := responses.ResponseInputMessageContentListParam{
		{
			OfInputText: &responses.ResponseInputTextParam{
				Text: text,
			},
		},
	}
	if media != nil {
		content = append(content, responses.ResponseInputContentUnionParam{
			OfInputImage: &responses.ResponseInputImageParam{
				Detail:   responses.ResponseInputImageDetailAuto,
				ImageURL: openai.String(media.DataURL()),
			},
		})
	}

	resp, err := c.client.Responses.New(ctx, responses.ResponseNewParams{
		Model:           c.model,
		Temperature:     openai.Float(0),
		TopP:            openai.Float(1),
		MaxOutputTokens: openai.Int(c.maxTokens),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(content, responses.EasyInputMessageRoleUser),
			},
		},
	})
	if err != nil {
		return "", err
	}
	out := resp.OutputText()
	if out == "" {
		return "", errors.New("openai vision: empty output text")
	}
	return out, nil
}
