package store

import (
	"context"

	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/model"
)

type RowStore interface {
	Append(ctx context.Context, row model.TrendRow) error
	Recent(ctx context.Context, limit int) ([]model.TrendSummary, error)
}

// RecentCache memoizes Recent results. *TrendCache satisfies it; a nil cache
// disables caching.
type RecentCache interface {
	Get(ctx context.Context) ([]model.TrendSummary, bool)
	Set(ctx context.Context, summaries []model.TrendSummary)
	Invalidate(ctx context.Context)
}

// TrendLog is the append-only trend store seen by the rest of the system:
// a RowStore fronted by an optional read cache. Every append invalidates the
// cache so reads never serve rows from before the latest run.
type TrendLog struct {
	store RowStore
	cache RecentCache
}

func NewTrendLog(store RowStore, cache RecentCache) *TrendLog {
	return &TrendLog{store: store, cache: cache}
}

func (l *TrendLog) Append(ctx context.Context, row model.TrendRow) error {
	if err := l.store.Append(ctx, row); err != nil {
		return err
	}
	if l.cache != nil {
		l.cache.Invalidate(ctx)
	}
	return nil
}

func (l *TrendLog) Recent(ctx context.Context, limit int) ([]model.TrendSummary, error) {
	if l.cache != nil {
		if summaries, ok := l.cache.Get(ctx); ok {
			return summaries, nil
		}
	}

	summaries, err := l.store.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		l.cache.Set(ctx, summaries)
	}
	return summaries, nil
}
