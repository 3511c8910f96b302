package image

import (
	"SkinToneAdvisor/internal/ai"
	"SkinToneAdvisor/internal/apperr"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Fetcher скачивает изображение по URL для отправки в модель.
type Fetcher struct {
	http   *resty.Client
	logger *zap.SugaredLogger
}

// NewFetcher создаёт загрузчик. При timeout <= 0 используется таймаут транспорта по умолчанию.
func NewFetcher(timeout time.Duration, logger *zap.SugaredLogger) *Fetcher {
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &Fetcher{http: c, logger: logger}
}

// Fetch возвращает тело ответа и Content-Type источника. Любой сбой возвращается как UpstreamError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (ai.Media, error) {
	started := time.Now()
	resp, err := f.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return ai.Media{}, apperr.Upstream("fetch image", err)
	}
	if resp.IsError() {
		return ai.Media{}, apperr.Upstream("fetch image", fmt.Errorf("unexpected status %s", resp.Status()))
	}

	body := resp.Body()
	if len(body) == 0 {
		return ai.Media{}, apperr.Upstream("fetch image", errors.New("empty body"))
	}

	mimeType := resp.Header().Get("Content-Type")
	if mimeType == "" {
		// Источник не сообщил тип, определяем по сигнатуре
		mimeType = http.DetectContentType(body)
	}

	f.logger.Debugw("Image fetched",
		"url", url,
		"bytes", len(body),
		"mime", mimeType,
		"took", time.Since(started).String(),
	)
	return ai.Media{Data: body, MimeType: mimeType}, nil
}
