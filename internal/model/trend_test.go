package model

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func sampleReport() *TrendReport {
	return &TrendReport{
		AnalysisSummary: AnalysisSummary{
			DataQuality:     "높음",
			TrendVelocity:   "빠름",
			MarketSentiment: "긍정적",
		},
		TopTrends: []TopTrend{
			{
				TrendName:           "허쉬컷",
				PopularityScore:     95,
				TargetAudience:      "20-30대 직장 여성",
				CommercialViability: "매우 높음",
				MonetizationScore:   88,
				DifficultyLevel:     "중급",
				ExpectedViews:       "50만-200만",
				BestUploadTime:      "토요일 오전",
				Keywords:            []string{"허쉬컷", "레이어드컷", "여자 단발"},
				WhyTrending:         "아이돌 스타일 확산",
				RevenuePotential:    "월 500-1000만원",
				CompetitionLevel:    "중간",
				SeasonalFactor:      "가을 수요 증가",
			},
			{TrendName: "울프컷"},
		},
		ContentOpportunities: []ContentOpportunity{
			{TitleSuggestion: "허쉬컷 셀프 스타일링"},
			{TitleSuggestion: "허쉬컷 실패 예방법"},
		},
	}
}

func TestNewTrendRow(t *testing.T) {
	collectedAt := time.Date(2026, time.August, 29, 9, 0, 0, 0, time.UTC)

	row := NewTrendRow(sampleReport(), collectedAt)

	assert.Equal(t, "2026-08-29 09:00:00", row.CollectedAt)
	assert.Equal(t, "허쉬컷", row.TrendName)
	assert.Equal(t, 95, row.PopularityScore)
	assert.Equal(t, "허쉬컷, 레이어드컷, 여자 단발", row.Keywords)
	assert.Equal(t, "허쉬컷 셀프 스타일링", row.ContentTitles[0])
	assert.Equal(t, "허쉬컷 실패 예방법", row.ContentTitles[1])
	assert.Equal(t, "", row.ContentTitles[2])
}

func TestTrendRowValues_MatchesHeader(t *testing.T) {
	row := NewTrendRow(sampleReport(), time.Now())

	values := row.Values()
	assert.Equal(t, len(SheetColumns), len(values))

	// Spot-check the column order against the header.
	assert.Equal(t, row.CollectedAt, values[0])
	assert.Equal(t, row.TrendName, values[4])
	assert.Equal(t, row.PopularityScore, values[5])
	assert.Equal(t, row.Keywords, values[12])
	assert.Equal(t, row.RevenuePotential, values[14])
	assert.Equal(t, row.ContentTitles[2], values[19])
}
