package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/model"
)

func TestSummariesFromValues(t *testing.T) {
	values := make([][]interface{}, 30)
	for i := range values {
		row := make([]interface{}, 20)
		row[0] = fmt.Sprintf("2026-08-%02d 09:00:00", i+1)
		row[4] = fmt.Sprintf("트렌드 %d", i+1)
		row[5] = 90
		row[6] = "20-30대"
		row[10] = "50만-200만"
		row[12] = "허쉬컷, 레이어드"
		row[14] = "월 500만원"
		values[i] = row
	}

	summaries := summariesFromValues(values, 20)

	assert.Equal(t, 20, len(summaries))
	// Newest (last appended) row comes first.
	assert.Equal(t, "트렌드 30", summaries[0].TrendName)
	assert.Equal(t, "트렌드 11", summaries[19].TrendName)
	assert.Equal(t, "90", summaries[0].PopularityScore)
	assert.Equal(t, "월 500만원", summaries[0].RevenuePotential)
}

func TestSummariesFromValues_ShortRows(t *testing.T) {
	// Rows may be ragged when trailing cells are empty on the sheet.
	values := [][]interface{}{
		{"2026-08-29 09:00:00", "높음", "빠름", "긍정적", "허쉬컷"},
	}

	summaries := summariesFromValues(values, 20)

	assert.Equal(t, 1, len(summaries))
	assert.Equal(t, "허쉬컷", summaries[0].TrendName)
	assert.Equal(t, "", summaries[0].Keywords)
}

func TestSummariesFromValues_Empty(t *testing.T) {
	assert.Equal(t, 0, len(summariesFromValues(nil, 20)))
}

type fakeRowStore struct {
	rows        []model.TrendRow
	summaries   []model.TrendSummary
	appendErr   error
	recentErr   error
	recentCalls int
}

func (f *fakeRowStore) Append(ctx context.Context, row model.TrendRow) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeRowStore) Recent(ctx context.Context, limit int) ([]model.TrendSummary, error) {
	f.recentCalls++
	return f.summaries, f.recentErr
}

type fakeCache struct {
	summaries       []model.TrendSummary
	hit             bool
	setCalls        int
	lastSet         []model.TrendSummary
	invalidateCalls int
}

func (f *fakeCache) Get(ctx context.Context) ([]model.TrendSummary, bool) {
	return f.summaries, f.hit
}

func (f *fakeCache) Set(ctx context.Context, summaries []model.TrendSummary) {
	f.setCalls++
	f.lastSet = summaries
}

func (f *fakeCache) Invalidate(ctx context.Context) {
	f.invalidateCalls++
}

func TestTrendLog_CacheHitSkipsStore(t *testing.T) {
	inner := &fakeRowStore{summaries: []model.TrendSummary{{TrendName: "허쉬컷"}}}
	cache := &fakeCache{summaries: []model.TrendSummary{{TrendName: "레이어드컷"}}, hit: true}
	log := NewTrendLog(inner, cache)

	summaries, err := log.Recent(context.Background(), 20)

	assert.Equal(t, nil, err)
	assert.Equal(t, "레이어드컷", summaries[0].TrendName)
	assert.Equal(t, 0, inner.recentCalls)
	assert.Equal(t, 0, cache.setCalls)
}

func TestTrendLog_CacheMissPopulates(t *testing.T) {
	inner := &fakeRowStore{summaries: []model.TrendSummary{{TrendName: "허쉬컷"}}}
	cache := &fakeCache{}
	log := NewTrendLog(inner, cache)

	summaries, err := log.Recent(context.Background(), 20)

	assert.Equal(t, nil, err)
	assert.Equal(t, "허쉬컷", summaries[0].TrendName)
	assert.Equal(t, 1, inner.recentCalls)
	assert.Equal(t, 1, cache.setCalls)
	assert.Equal(t, "허쉬컷", cache.lastSet[0].TrendName)
}

func TestTrendLog_AppendInvalidatesCache(t *testing.T) {
	inner := &fakeRowStore{}
	cache := &fakeCache{}
	log := NewTrendLog(inner, cache)

	err := log.Append(context.Background(), model.TrendRow{TrendName: "허쉬컷"})

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, cache.invalidateCalls)
}

func TestTrendLog_FailedAppendKeepsCache(t *testing.T) {
	inner := &fakeRowStore{appendErr: errors.New("append failed")}
	cache := &fakeCache{}
	log := NewTrendLog(inner, cache)

	err := log.Append(context.Background(), model.TrendRow{})

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, cache.invalidateCalls)
}

func TestTrendLog_ReadErrorSkipsCacheSet(t *testing.T) {
	inner := &fakeRowStore{recentErr: errors.New("sheet unavailable")}
	cache := &fakeCache{}
	log := NewTrendLog(inner, cache)

	_, err := log.Recent(context.Background(), 20)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, cache.setCalls)
}

func TestTrendLog_NoCachePassthrough(t *testing.T) {
	inner := &fakeRowStore{summaries: []model.TrendSummary{{TrendName: "허쉬컷"}}}
	log := NewTrendLog(inner, nil)

	err := log.Append(context.Background(), model.TrendRow{TrendName: "허쉬컷"})
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(inner.rows))

	summaries, err := log.Recent(context.Background(), 20)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(summaries))
	assert.Equal(t, 1, inner.recentCalls)
}

func TestTrendLog_ReadErrorPropagates(t *testing.T) {
	inner := &fakeRowStore{recentErr: errors.New("sheet unavailable")}
	log := NewTrendLog(inner, nil)

	_, err := log.Recent(context.Background(), 20)
	assert.NotEqual(t, nil, err)
}

func TestTrendLog_AppendErrorPropagates(t *testing.T) {
	inner := &fakeRowStore{appendErr: errors.New("append failed")}
	log := NewTrendLog(inner, nil)

	err := log.Append(context.Background(), model.TrendRow{})
	assert.NotEqual(t, nil, err)
}
