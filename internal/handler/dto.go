package handler

import (
	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/model"
)

type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type AnalyzeResponse struct {
	Success bool        `json:"success"`
	Data    AnalyzeData `json:"data"`
}

type AnalyzeData struct {
	Trends       *model.TrendReport `json:"trends"`
	ContentPlans model.ContentPlan  `json:"content_plans"`
	Timestamp    string             `json:"timestamp"`
}

type TrendsResponse struct {
	Success bool                 `json:"success"`
	Data    []model.TrendSummary `json:"data"`
}

type ScriptRequest struct {
	Title          string   `json:"title"`
	TargetAudience string   `json:"target_audience"`
	Keywords       []string `json:"keywords"`
}

type ScriptResponse struct {
	Success bool   `json:"success"`
	Script  string `json:"script"`
}

type ErrorResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	Path       string `json:"path,omitempty"`
	RetryAfter int    `json:"retryAfter,omitempty"`
}
