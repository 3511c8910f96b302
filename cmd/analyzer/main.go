package main

import (
	"SkinToneAdvisor/internal/ai"
	"SkinToneAdvisor/internal/config"
	"SkinToneAdvisor/internal/logging"
	"SkinToneAdvisor/internal/server"
	"SkinToneAdvisor/internal/service/analysis"
	"SkinToneAdvisor/internal/service/image"
	"SkinToneAdvisor/internal/service/upload"
	"SkinToneAdvisor/internal/storage/s3"
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.ValidateAnalyzer(); err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.DebugMode)
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	//сброс буфера логгера
	defer func() { _ = logger.Sync() }()

	// Graceful shutdown on Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model, err := ai.NewAnalyzerClient(ctx, cfg)
	if err != nil {
		sugar.Errorw("Failed to create analyzer client", "error", err)
		return
	}
	presigner, err := s3.New(ctx, cfg.Storage)
	if err != nil {
		sugar.Errorw("Failed to create S3 presigner", "error", err)
		return
	}

	analyzer := analysis.NewService(image.NewFetcher(cfg.Analyzer.FetchTimeout, sugar), model, sugar)
	uploader := upload.NewService(presigner, cfg)

	sugar.Infow(
		"Starting analyzer",
		"DebugMode", cfg.DebugMode,
		"Provider", cfg.Analyzer.Provider,
		"Bucket", cfg.Storage.Bucket,
	)

	srv := server.New("analyzer", cfg.Addr(), server.NewAnalyzerRouter(analyzer, uploader, sugar), sugar)
	if err := srv.Start(ctx); err != nil {
		sugar.Errorw("Failed to start server", "addr", cfg.Addr(), "error", err)
		return
	}
	sugar.Infow("Server is running", "url", "http://localhost:"+cfg.Port)

	<-ctx.Done()
	_ = srv.Stop(context.Background())
	sugar.Infow("server stopped")
}
