package s3

import (
	"SkinToneAdvisor/internal/config"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Presigner подписывает PUT-запросы к S3 локально, без сетевых вызовов.
type Presigner struct {
	client *s3.PresignClient
}

// New создаёт Presigner из конфигурации хранилища. Если ключи не заданы,
// используется стандартная цепочка учётных данных AWS.
func New(ctx context.Context, cfg config.StorageConfig) (*Presigner, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewFromClient(client), nil
}

func NewFromClient(client *s3.Client) *Presigner {
	return &Presigner{client: s3.NewPresignClient(client)}
}

func (p *Presigner) PresignPut(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	req, err := p.client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("s3: presign put %s/%s: %w", bucket, key, err)
	}
	return req.URL, nil
}
