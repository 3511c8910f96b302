package upload

import (
	"SkinToneAdvisor/internal/apperr"
	"SkinToneAdvisor/internal/config"
	"context"
	"time"
)

// Presigner выдаёт ограниченный по времени URL на запись одного объекта.
type Presigner interface {
	PresignPut(ctx context.Context, bucket, key string, ttl time.Duration) (string, error)
}

// URL — ответ на запрос ссылки для загрузки.
type URL struct {
	UploadURL string `json:"uploadUrl"`
	FileName  string `json:"fileName"`
	ImageURL  string `json:"image_url"`
}

type Service struct {
	presigner Presigner
	bucket    string
	bucketURL string
	ttl       time.Duration
}

func NewService(presigner Presigner, cfg *config.Config) *Service {
	return &Service{
		presigner: presigner,
		bucket:    cfg.Storage.Bucket,
		bucketURL: cfg.Storage.BucketURL,
		ttl:       config.UploadURLTTL,
	}
}

// IssueURL подписывает PUT для ключа fileName. Имя файла используется как есть:
// без проверки существования, очистки и экранирования.
func (s *Service) IssueURL(ctx context.Context, fileName string) (URL, error) {
	if fileName == "" {
		return URL{}, apperr.Validation("fileName", "file name is required")
	}

	signed, err := s.presigner.PresignPut(ctx, s.bucket, fileName, s.ttl)
	if err != nil {
		return URL{}, apperr.Upstream("presign upload url", err)
	}

	return URL{
		UploadURL: signed,
		FileName:  fileName,
		ImageURL:  s.bucketURL + "/" + fileName,
	}, nil
}
