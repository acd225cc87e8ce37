package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/model"
)

const recentTrendsKey = "hairtrend:cache:recent-trends"

// TrendCache memoizes the read path against the spreadsheet. It is optional;
// all methods are safe on a nil receiver.
type TrendCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTrendCache(redisURL string, ttl time.Duration) (*TrendCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &TrendCache{client: client, ttl: ttl}, nil
}

func (c *TrendCache) Get(ctx context.Context) ([]model.TrendSummary, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, recentTrendsKey).Bytes()
	if err != nil {
		return nil, false
	}

	var summaries []model.TrendSummary
	if err := json.Unmarshal(raw, &summaries); err != nil {
		return nil, false
	}
	return summaries, true
}

func (c *TrendCache) Set(ctx context.Context, summaries []model.TrendSummary) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(summaries)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, recentTrendsKey, raw, c.ttl).Err(); err != nil {
		slog.Warn("failed to cache trend summaries", "error", err)
	}
}

func (c *TrendCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, recentTrendsKey).Err(); err != nil {
		slog.Warn("failed to invalidate trend cache", "error", err)
	}
}

func (c *TrendCache) Close() {
	if c != nil {
		c.client.Close()
	}
}
