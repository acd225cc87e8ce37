package model

import (
	"encoding/json"
	"strings"
	"time"
)

// AnalysisSummary describes one collection cycle as labeled by the model.
type AnalysisSummary struct {
	CollectionTime  string `json:"collection_time"`
	DataQuality     string `json:"data_quality"`
	TrendVelocity   string `json:"trend_velocity"`
	MarketSentiment string `json:"market_sentiment"`
}

type TopTrend struct {
	TrendName           string   `json:"trend_name"`
	PopularityScore     int      `json:"popularity_score"`
	TargetAudience      string   `json:"target_audience"`
	CommercialViability string   `json:"commercial_viability"`
	MonetizationScore   int      `json:"monetization_score"`
	DifficultyLevel     string   `json:"difficulty_level"`
	EquipmentNeeded     []string `json:"equipment_needed"`
	ExpectedViews       string   `json:"expected_views"`
	BestUploadTime      string   `json:"best_upload_time"`
	Keywords            []string `json:"keywords"`
	WhyTrending         string   `json:"why_trending"`
	RevenuePotential    string   `json:"revenue_potential"`
	CompetitionLevel    string   `json:"competition_level"`
	SeasonalFactor      string   `json:"seasonal_factor"`
}

type EmergingTrend struct {
	TrendName      string `json:"trend_name"`
	GrowthRate     string `json:"growth_rate"`
	PotentialScore int    `json:"potential_score"`
	TimeToPeak     string `json:"time_to_peak"`
}

type ContentOpportunity struct {
	TitleSuggestion      string `json:"title_suggestion"`
	ContentType          string `json:"content_type"`
	EstimatedPerformance string `json:"estimated_performance"`
	HookAngle            string `json:"hook_angle"`
	MonetizationAngle    string `json:"monetization_angle"`
}

// TrendReport is the parsed output of the trend analysis completion.
// A report is only usable after validation: TopTrends must be non-empty.
type TrendReport struct {
	AnalysisSummary      AnalysisSummary      `json:"analysis_summary"`
	TopTrends            []TopTrend           `json:"top_trends"`
	EmergingTrends       []EmergingTrend      `json:"emerging_trends"`
	ContentOpportunities []ContentOpportunity `json:"content_opportunities"`
}

// ContentPlan is the content-planning completion output. No schema is imposed
// on it beyond being valid JSON, so it stays opaque.
type ContentPlan = json.RawMessage

// SheetColumns is the fixed header row of the "트렌드 분석" sheet.
var SheetColumns = []string{
	"수집일시", "데이터품질", "트렌드속도", "시장감정", "1위트렌드",
	"인기점수", "타겟고객", "상업성", "수익점수", "난이도",
	"예상조회수", "최적업로드", "키워드", "트렌드이유", "수익예상",
	"경쟁정도", "계절요인", "콘텐츠제안1", "콘텐츠제안2", "콘텐츠제안3",
}

// TrendRow is the flattened spreadsheet projection of one pipeline run:
// the top trend plus up to three content-opportunity titles.
type TrendRow struct {
	CollectedAt         string
	DataQuality         string
	TrendVelocity       string
	MarketSentiment     string
	TrendName           string
	PopularityScore     int
	TargetAudience      string
	CommercialViability string
	MonetizationScore   int
	DifficultyLevel     string
	ExpectedViews       string
	BestUploadTime      string
	Keywords            string
	WhyTrending         string
	RevenuePotential    string
	CompetitionLevel    string
	SeasonalFactor      string
	ContentTitles       [3]string
}

// NewTrendRow flattens a validated report. The caller guarantees that
// report.TopTrends is non-empty.
func NewTrendRow(report *TrendReport, collectedAt time.Time) TrendRow {
	top := report.TopTrends[0]

	row := TrendRow{
		CollectedAt:         collectedAt.Format("2006-01-02 15:04:05"),
		DataQuality:         report.AnalysisSummary.DataQuality,
		TrendVelocity:       report.AnalysisSummary.TrendVelocity,
		MarketSentiment:     report.AnalysisSummary.MarketSentiment,
		TrendName:           top.TrendName,
		PopularityScore:     top.PopularityScore,
		TargetAudience:      top.TargetAudience,
		CommercialViability: top.CommercialViability,
		MonetizationScore:   top.MonetizationScore,
		DifficultyLevel:     top.DifficultyLevel,
		ExpectedViews:       top.ExpectedViews,
		BestUploadTime:      top.BestUploadTime,
		Keywords:            strings.Join(top.Keywords, ", "),
		WhyTrending:         top.WhyTrending,
		RevenuePotential:    top.RevenuePotential,
		CompetitionLevel:    top.CompetitionLevel,
		SeasonalFactor:      top.SeasonalFactor,
	}

	for i := 0; i < len(row.ContentTitles) && i < len(report.ContentOpportunities); i++ {
		row.ContentTitles[i] = report.ContentOpportunities[i].TitleSuggestion
	}

	return row
}

// Values returns the row cells in SheetColumns order.
func (r TrendRow) Values() []interface{} {
	return []interface{}{
		r.CollectedAt, r.DataQuality, r.TrendVelocity, r.MarketSentiment, r.TrendName,
		r.PopularityScore, r.TargetAudience, r.CommercialViability, r.MonetizationScore, r.DifficultyLevel,
		r.ExpectedViews, r.BestUploadTime, r.Keywords, r.WhyTrending, r.RevenuePotential,
		r.CompetitionLevel, r.SeasonalFactor, r.ContentTitles[0], r.ContentTitles[1], r.ContentTitles[2],
	}
}

// TrendSummary is the read-path projection served by GET /api/trends.
// Field keys follow the sheet's column names.
type TrendSummary struct {
	CollectedAt      string `json:"수집일시"`
	TrendName        string `json:"트렌드명"`
	PopularityScore  string `json:"인기점수"`
	TargetAudience   string `json:"타겟고객"`
	ExpectedViews    string `json:"예상조회수"`
	RevenuePotential string `json:"수익예상"`
	Keywords         string `json:"키워드"`
}
