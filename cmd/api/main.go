package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/config"
	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/handler"
	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/pipeline"
	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/scheduler"
	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/store"
	"github.com/kimminjae413/Hair-Trend-Analyzer/pkg/llm"
	"github.com/kimminjae413/Hair-Trend-Analyzer/pkg/social"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	ctx := context.Background()

	sheetStore, err := store.NewSheetStore(ctx, cfg.SheetID, cfg.ServiceAccountEmail, cfg.ServiceAccountKey, cfg.SheetTimeout)
	if err != nil {
		log.Fatalf("error connecting to Google Sheets: %v", err)
	}

	if err := sheetStore.Ensure(ctx); err != nil {
		log.Fatalf("error preparing trend sheet: %v", err)
	}

	var cache *store.TrendCache
	if cfg.RedisURL != "" {
		cache, err = store.NewTrendCache(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			slog.Warn("redis cache unavailable, continuing without cache", "error", err)
			cache = nil
		} else {
			defer cache.Close()
		}
	}
	trendLog := store.NewTrendLog(sheetStore, cache)

	completions := newCompletionClient(cfg)

	pipe := pipeline.New(
		social.NewApifyClient(cfg.ApifyAPIKey),
		social.NewYouTubeClient(cfg.YouTubeAPIKey),
		completions,
		trendLog,
		cfg.ProviderTimeout,
	)

	sched, err := scheduler.New(cfg.CronSpec, cfg.Timezone, func() error {
		_, _, err := pipe.Run(context.Background())
		if errors.Is(err, pipeline.ErrRunInProgress) {
			slog.Info("previous trend analysis still running, skipping this cycle")
			return nil
		}
		return err
	})
	if err != nil {
		log.Fatalf("error setting up scheduler: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	h := handler.NewTrendHandler(cfg, pipe, trendLog, completions)
	r := handler.NewRouter(cfg, h)

	slog.Info("hair trend analysis server starting",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"cron", cfg.CronSpec,
		"timezone", cfg.Timezone,
	)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func newCompletionClient(cfg *config.Config) llm.CompletionClient {
	if cfg.AnthropicAPIKey != "" {
		return llm.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.OpenAITemperature, cfg.OpenAIMaxTokens, cfg.CompletionTimeout)
	}
	return llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAITemperature, cfg.OpenAIMaxTokens, cfg.CompletionTimeout)
}
