package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Провайдеры моделей
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderStub   = "stub"
)

// UploadURLTTL — время жизни presigned URL на загрузку. Не настраивается.
const UploadURLTTL = 300 * time.Second

type Config struct {
	DebugMode bool   `env:"DEBUG_MODE"` // Режим дебага: development-логгер
	Port      string `env:"PORT"`       // Порт HTTP-сервера

	Analyzer AnalyzerConfig // Анализ изображений
	Storage  StorageConfig  // Объектное хранилище для загрузки картинок
	Chat     ChatConfig     // Текстовый чат
}

// AnalyzerConfig конфигурация мультимодальной модели для анализа тона кожи.
type AnalyzerConfig struct {
	Provider        string        `env:"ANALYZER_PROVIDER"`   // gemini|openai|stub, по умолчанию gemini
	GoogleAPIKey    string        `env:"GOOGLE_API_KEY"`      // Ключ Gemini API
	GeminiModel     string        `env:"GEMINI_MODEL"`        // Модель Gemini
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`      // Ключ OpenAI, нужен только для provider=openai
	VisionModel     string        `env:"VISION_MODEL"`        // Модель OpenAI с поддержкой картинок
	MaxOutputTokens int32         `env:"MAX_OUTPUT_TOKENS"`   // Лимит токенов ответа
	FetchTimeout    time.Duration `env:"IMAGE_FETCH_TIMEOUT"` // Таймаут загрузки картинки; 0 без таймаута
	StubReply       string        `env:"ANALYZER_STUB_REPLY"` // Ответ заглушки для provider=stub
}

// StorageConfig конфигурация S3 (или совместимого) хранилища.
type StorageConfig struct {
	Region          string `env:"AWS_REGION"`
	Bucket          string `env:"AWS_BUCKET_NAME"`
	BucketURL       string `env:"AWS_BUCKET_URL"` // Публичный адрес бакета, к нему дописывается имя файла
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	Endpoint        string `env:"AWS_S3_ENDPOINT"` // Необязательный endpoint для S3-совместимых хранилищ
}

// ChatConfig конфигурация текстовой модели чата.
type ChatConfig struct {
	Provider       string  `env:"CHAT_PROVIDER"` // openai|stub
	OpenAIAPIKey   string  `env:"OPENAI_API_KEY"`
	Model          string  `env:"CHAT_MODEL"`
	Temperature    float64 `env:"CHAT_TEMPERATURE"`
	PromptTemplate string  `env:"CHAT_PROMPT_TEMPLATE"` // Шаблон с одним плейсхолдером {question}
	StubReply      string  `env:"CHAT_STUB_REPLY"`
}

// DefaultChatPromptTemplate — «Ты дружелюбный помощник, ответь на следующий вопрос».
const DefaultChatPromptTemplate = "คุณเป็นผู้ช่วยที่เป็นมิตร ตอบคำถามต่อไปนี้: {question}"

// Defaults возвращает конфигурацию с предустановленными значениями по умолчанию.
// Эти значения перекрываются .env, переменными окружения и флагами CLI.
func Defaults() *Config {
	return &Config{
		DebugMode: false,
		Port:      "3005",
		Analyzer: AnalyzerConfig{
			Provider:        ProviderGemini,
			GeminiModel:     "gemini-1.5-flash",
			VisionModel:     "gpt-4o",
			MaxOutputTokens: 1024,
			StubReply:       `{"skinTone":{"type":"Fitzpatrick Type III","hexCode":"#C68642"},"recommendedColors":[{"name":"Navy","hexCode":"#000080"},{"name":"Olive","hexCode":"#808000"},{"name":"Coral","hexCode":"#FF7F50"},{"name":"Teal","hexCode":"#008080"},{"name":"Ivory","hexCode":"#FFFFF0"}]}`,
		},
		Chat: ChatConfig{
			Provider:       ProviderOpenAI,
			Model:          "gpt-3.5-turbo",
			Temperature:    0.7,
			PromptTemplate: DefaultChatPromptTemplate,
			StubReply:      "запрос получен",
		},
	}
}

// NewConfig загружает конфигурацию приложения из .env, окружения и флагов командной строки.
func NewConfig() (*Config, error) {
	return Load(flag.CommandLine, os.Args[1:])
}

// Load делает то же, что NewConfig, но с явным набором флагов. Флаги, которые main
// регистрирует сам, нужно объявить в fs до вызова.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	_ = godotenv.Load()

	// Стартуем с дефолтов, затем перекрываем окружением и флагами
	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	fs.BoolVar(&cfg.DebugMode, "debug-mode", cfg.DebugMode, "включить режим дебага (development-логгер)")
	fs.StringVar(&cfg.Port, "port", cfg.Port, "порт HTTP-сервера")
	// Анализ изображений
	fs.StringVar(&cfg.Analyzer.Provider, "analyzer-provider", cfg.Analyzer.Provider, "провайдер анализа изображений: gemini|openai|stub")
	fs.StringVar(&cfg.Analyzer.GeminiModel, "gemini-model", cfg.Analyzer.GeminiModel, "модель Gemini для анализа изображений")
	fs.StringVar(&cfg.Analyzer.VisionModel, "vision-model", cfg.Analyzer.VisionModel, "модель OpenAI для анализа изображений")
	fs.DurationVar(&cfg.Analyzer.FetchTimeout, "image-fetch-timeout", cfg.Analyzer.FetchTimeout, "таймаут загрузки изображения, напр. 10s; 0 без таймаута")
	// Хранилище
	fs.StringVar(&cfg.Storage.Region, "aws-region", cfg.Storage.Region, "регион S3")
	fs.StringVar(&cfg.Storage.Bucket, "aws-bucket-name", cfg.Storage.Bucket, "бакет для загрузки изображений")
	fs.StringVar(&cfg.Storage.BucketURL, "aws-bucket-url", cfg.Storage.BucketURL, "публичный адрес бакета")
	fs.StringVar(&cfg.Storage.Endpoint, "aws-s3-endpoint", cfg.Storage.Endpoint, "endpoint S3-совместимого хранилища (опционально)")
	// Чат
	fs.StringVar(&cfg.Chat.Provider, "chat-provider", cfg.Chat.Provider, "провайдер чата: openai|stub")
	fs.StringVar(&cfg.Chat.Model, "chat-model", cfg.Chat.Model, "модель OpenAI для чата")
	fs.Float64Var(&cfg.Chat.Temperature, "chat-temperature", cfg.Chat.Temperature, "температура сэмплирования чата")
	fs.StringVar(&cfg.Chat.PromptTemplate, "chat-prompt-template", cfg.Chat.PromptTemplate, "шаблон промпта с плейсхолдером {question}")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: parse flags: %w", err)
	}

	cfg.Analyzer.Provider = strings.ToLower(strings.TrimSpace(cfg.Analyzer.Provider))
	cfg.Chat.Provider = strings.ToLower(strings.TrimSpace(cfg.Chat.Provider))
	return cfg, nil
}

// Addr возвращает адрес для прослушивания по всем интерфейсам.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// ValidateAnalyzer проверяет, что для сервиса анализа заданы ключи выбранного провайдера и хранилища.
func (c *Config) ValidateAnalyzer() error {
	var errs []error
	switch c.Analyzer.Provider {
	case ProviderGemini:
		if c.Analyzer.GoogleAPIKey == "" {
			errs = append(errs, errors.New("GOOGLE_API_KEY is not set"))
		}
	case ProviderOpenAI:
		if c.Analyzer.OpenAIAPIKey == "" {
			errs = append(errs, errors.New("OPENAI_API_KEY is not set"))
		}
	case ProviderStub:
	default:
		errs = append(errs, fmt.Errorf("unknown analyzer provider %q", c.Analyzer.Provider))
	}
	if c.Storage.Region == "" {
		errs = append(errs, errors.New("AWS_REGION is not set"))
	}
	if c.Storage.Bucket == "" {
		errs = append(errs, errors.New("AWS_BUCKET_NAME is not set"))
	}
	// Ключи задаются парой; обе пустые означают стандартную цепочку AWS
	if (c.Storage.AccessKeyID == "") != (c.Storage.SecretAccessKey == "") {
		errs = append(errs, errors.New("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set together"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ValidateChat проверяет конфигурацию сервиса чата.
func (c *Config) ValidateChat() error {
	var errs []error
	switch c.Chat.Provider {
	case ProviderOpenAI:
		if c.Chat.OpenAIAPIKey == "" {
			errs = append(errs, errors.New("OPENAI_API_KEY is not set"))
		}
	case ProviderStub:
	default:
		errs = append(errs, fmt.Errorf("unknown chat provider %q", c.Chat.Provider))
	}
	if !strings.Contains(c.Chat.PromptTemplate, "{question}") {
		errs = append(errs, errors.New("chat prompt template has no {question} placeholder"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
