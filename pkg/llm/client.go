package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/model"
)

// AnalysisInput carries the raw provider records for one analysis run. Only the
// first few records of each slice end up in the prompt; see prompts.go.
type AnalysisInput struct {
	Instagram []json.RawMessage
	YouTube   []json.RawMessage
	Now       time.Time
}

type ScriptInput struct {
	Title          string
	TargetAudience string
	Keywords       []string
}

type CompletionClient interface {
	AnalyzeTrends(ctx context.Context, input AnalysisInput) (*model.TrendReport, error)
	PlanContent(ctx context.Context, trend model.TopTrend) (model.ContentPlan, error)
	GenerateScript(ctx context.Context, input ScriptInput) (string, error)
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON. The payload may be
	// an object or an array; prefer whichever opens first, but never replace
	// the content with a span that does not parse.
	objStart := strings.Index(content, "{")
	arrStart := strings.Index(content, "[")
	if arrStart >= 0 && (objStart < 0 || arrStart < objStart) {
		if span, ok := extractSpan(content, "[", "]"); ok {
			return span
		}
	}
	if span, ok := extractSpan(content, "{", "}"); ok {
		return span
	}
	if span, ok := extractSpan(content, "[", "]"); ok {
		return span
	}
	return content
}

func extractSpan(content, open, close string) (string, bool) {
	start := strings.Index(content, open)
	end := strings.LastIndex(content, close)
	if start < 0 || end <= start {
		return "", false
	}
	span := content[start : end+1]
	return span, json.Valid([]byte(span))
}

func parseTrendReport(content string) (*model.TrendReport, error) {
	content = cleanJSONResponse(content)

	var report model.TrendReport
	if err := json.Unmarshal([]byte(content), &report); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w, content: %s", err, content)
	}

	if err := validateTrendReport(&report); err != nil {
		return nil, fmt.Errorf("analysis response has unexpected shape: %w", err)
	}

	return &report, nil
}

// validateTrendReport rejects well-formed JSON that does not carry a usable
// report, so a malformed object never travels further down the pipeline.
func validateTrendReport(r *model.TrendReport) error {
	if r.AnalysisSummary == (model.AnalysisSummary{}) {
		return errors.New("missing analysis_summary")
	}
	if len(r.TopTrends) == 0 {
		return errors.New("top_trends is empty")
	}
	for i, t := range r.TopTrends {
		if t.TrendName == "" {
			return fmt.Errorf("top_trends[%d] has no trend_name", i)
		}
	}
	return nil
}

func parseContentPlan(content string) (model.ContentPlan, error) {
	content = cleanJSONResponse(content)
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("content plan response is not valid JSON, content: %s", content)
	}
	return model.ContentPlan(content), nil
}
