package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/model"
	"github.com/kimminjae413/Hair-Trend-Analyzer/pkg/llm"
	"github.com/kimminjae413/Hair-Trend-Analyzer/pkg/social"
)

// ErrRunInProgress is returned when a run is requested while another is still
// executing. HTTP callers map it to 409; the scheduler skips the cycle.
var ErrRunInProgress = errors.New("trend analysis already in progress")

type RowAppender interface {
	Append(ctx context.Context, row model.TrendRow) error
}

// Pipeline executes one collect → analyze → plan → store cycle. Provider
// failures degrade to empty input; everything after the fan-out fails fast
// with no retry, since nothing upstream of the final append has side effects.
type Pipeline struct {
	instagram       social.Collector
	youtube         social.Collector
	completions     llm.CompletionClient
	store           RowAppender
	providerTimeout time.Duration
	running         atomic.Bool
}

func New(instagram, youtube social.Collector, completions llm.CompletionClient, store RowAppender, providerTimeout time.Duration) *Pipeline {
	return &Pipeline{
		instagram:       instagram,
		youtube:         youtube,
		completions:     completions,
		store:           store,
		providerTimeout: providerTimeout,
	}
}

func (p *Pipeline) Run(ctx context.Context) (*model.TrendReport, model.ContentPlan, error) {
	if !p.running.CompareAndSwap(false, true) {
		return nil, nil, ErrRunInProgress
	}
	defer p.running.Store(false)

	started := time.Now()
	instagramData, youtubeData := p.collect(ctx)

	report, err := p.completions.AnalyzeTrends(ctx, llm.AnalysisInput{
		Instagram: instagramData,
		YouTube:   youtubeData,
		Now:       time.Now(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("trend analysis: %w", err)
	}

	// Validated reports always carry at least one top trend.
	plan, err := p.completions.PlanContent(ctx, report.TopTrends[0])
	if err != nil {
		return nil, nil, fmt.Errorf("content planning: %w", err)
	}

	if err := p.store.Append(ctx, model.NewTrendRow(report, time.Now())); err != nil {
		return nil, nil, fmt.Errorf("saving trend row: %w", err)
	}

	slog.Info("trend analysis complete",
		"top_trend", report.TopTrends[0].TrendName,
		"instagram_records", len(instagramData),
		"youtube_records", len(youtubeData),
		"duration", time.Since(started).Round(time.Millisecond).String(),
	)

	return report, plan, nil
}

// collect fans out to both providers concurrently. Each provider fails open:
// an error is logged and its slice stays empty.
func (p *Pipeline) collect(ctx context.Context) (instagramData, youtubeData []social.Record) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		instagramData = p.collectFrom(ctx, p.instagram)
	}()
	go func() {
		defer wg.Done()
		youtubeData = p.collectFrom(ctx, p.youtube)
	}()

	wg.Wait()
	return instagramData, youtubeData
}

func (p *Pipeline) collectFrom(ctx context.Context, collector social.Collector) []social.Record {
	ctx, cancel := context.WithTimeout(ctx, p.providerTimeout)
	defer cancel()

	records, err := collector.Collect(ctx)
	if err != nil {
		slog.Error("provider fetch failed, continuing with empty data", "provider", collector.Name(), "error", err)
		return nil
	}

	slog.Info("provider fetch complete", "provider", collector.Name(), "records", len(records))
	return records
}
