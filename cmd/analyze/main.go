package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/config"
	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/pipeline"
	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/store"
	"github.com/kimminjae413/Hair-Trend-Analyzer/pkg/llm"
	"github.com/kimminjae413/Hair-Trend-Analyzer/pkg/social"
)

// One-shot trend analysis run, for manual triggering without the HTTP surface.
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

	var completions llm.CompletionClient
	if cfg.AnthropicAPIKey != "" {
		completions = llm.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.OpenAITemperature, cfg.OpenAIMaxTokens, cfg.CompletionTimeout)
	} else {
		completions = llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAITemperature, cfg.OpenAIMaxTokens, cfg.CompletionTimeout)
	}

	pipe := pipeline.New(
		social.NewApifyClient(cfg.ApifyAPIKey),
		social.NewYouTubeClient(cfg.YouTubeAPIKey),
		completions,
		store.NewTrendLog(sheetStore, nil),
		cfg.ProviderTimeout,
	)

	report, _, err := pipe.Run(ctx)
	if err != nil {
		log.Fatalf("trend analysis failed: %v", err)
	}

	slog.Info("trend analysis saved", "top_trend", report.TopTrends[0].TrendName)
}
