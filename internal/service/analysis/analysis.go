package analysis

import (
	"SkinToneAdvisor/internal/ai"
	"SkinToneAdvisor/internal/apperr"
	"context"
	"errors"

	"go.uber.org/zap"
)

// Fetcher загружает изображение по URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (ai.Media, error)
}

// Service выполняет сценарий «картинка → модель → структурированная рекомендация».
type Service struct {
	fetcher Fetcher
	model   ai.Client
	logger  *zap.SugaredLogger
}

func NewService(fetcher Fetcher, model ai.Client, logger *zap.SugaredLogger) *Service {
	return &Service{fetcher: fetcher, model: model, logger: logger}
}

// Analyze скачивает изображение, отправляет его в модель вместе с Prompt и нормализует ответ.
func (s *Service) Analyze(ctx context.Context, imageURL string) (Recommendation, error) {
	if imageURL == "" {
		return Recommendation{}, apperr.Validation("imageUrl", "imageUrl is required")
	}

	media, err := s.fetcher.Fetch(ctx, imageURL)
	if err != nil {
		return Recommendation{}, upstream("fetch image", err)
	}

	reply, err := s.model.SendRequest(ctx, Prompt, &media)
	if err != nil {
		return Recommendation{}, upstream("analyze image", err)
	}

	rec, err := Normalize(reply)
	if err != nil {
		s.logger.Warnw("Model reply rejected", "imageUrl", imageURL, "reply", reply, "error", err)
		return Recommendation{}, err
	}
	return rec, nil
}

func upstream(op string, err error) error {
	var ue *apperr.UpstreamError
	if errors.As(err, &ue) {
		return err
	}
	return apperr.Upstream(op, err)
}
