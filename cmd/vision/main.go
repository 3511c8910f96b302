package main

import (
	"SkinToneAdvisor/internal/ai"
	"SkinToneAdvisor/internal/config"
	"SkinToneAdvisor/internal/logging"
	"SkinToneAdvisor/internal/service/analysis"
	"SkinToneAdvisor/internal/service/image"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
)

// Разовый анализ изображения из командной строки: тот же конвейер, что у POST /api/analyze-image.
func main() {
	imageURL := flag.String("image-url", "", "URL изображения для анализа")
	raw := flag.Bool("raw", false, "печатать сырой ответ модели без нормализации")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(err)
	}
	if *imageURL == "" {
		fmt.Fprintln(os.Stderr, "usage: vision -image-url <url> [-analyzer-provider gemini|openai|stub] [-raw]")
		os.Exit(2)
	}

	logger, err := logging.New(cfg.DebugMode)
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	model, err := ai.NewAnalyzerClient(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	fetcher := image.NewFetcher(cfg.Analyzer.FetchTimeout, sugar)

	sugar.Infow("Analyzing image", "url", *imageURL, "Provider", cfg.Analyzer.Provider)

	if *raw {
		media, err := fetcher.Fetch(ctx, *imageURL)
		if err != nil {
			log.Fatal(err)
		}
		reply, err := model.SendRequest(ctx, analysis.Prompt, &media)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(reply)
		return
	}

	rec, err := analysis.NewService(fetcher, model, sugar).Analyze(ctx, *imageURL)
	if err != nil {
		log.Fatal(err)
	}
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
