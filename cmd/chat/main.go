package main

import (
	"SkinToneAdvisor/internal/ai"
	"SkinToneAdvisor/internal/config"
	"SkinToneAdvisor/internal/logging"
	"SkinToneAdvisor/internal/server"
	"SkinToneAdvisor/internal/service/chat"
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
	if err := cfg.ValidateChat(); err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.DebugMode)
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model, err := ai.NewChatClient(cfg)
	if err != nil {
		sugar.Errorw("Failed to create chat client", "error", err)
		return
	}

	sugar.Infow(
		"Starting chat",
		"DebugMode", cfg.DebugMode,
		"Provider", cfg.Chat.Provider,
		"Model", cfg.Chat.Model,
	)

	srv := server.New("chat", cfg.Addr(), server.NewChatRouter(chat.New(model, cfg.Chat.PromptTemplate), sugar), sugar)
	if err := srv.Start(ctx); err != nil {
		sugar.Errorw("Failed to start server", "addr", cfg.Addr(), "error", err)
		return
	}
	sugar.Infow("Server is running", "url", "http://localhost:"+cfg.Port)

	<-ctx.Done()
	_ = srv.Stop(context.Background())
	sugar.Infow("server stopped")
}
