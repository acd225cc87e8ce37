package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/config"
	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/model"
	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/pipeline"
	"github.com/kimminjae413/Hair-Trend-Analyzer/pkg/llm"
)

const version = "1.0.0"

// recentTrendLimit caps how many stored rows the read endpoint serves.
const recentTrendLimit = 20

type TrendRunner interface {
	Run(ctx context.Context) (*model.TrendReport, model.ContentPlan, error)
}

type TrendReader interface {
	Recent(ctx context.Context, limit int) ([]model.TrendSummary, error)
}

type ScriptGenerator interface {
	GenerateScript(ctx context.Context, input llm.ScriptInput) (string, error)
}

type TrendHandler struct {
	cfg     *config.Config
	runner  TrendRunner
	reader  TrendReader
	scripts ScriptGenerator
}

func NewTrendHandler(cfg *config.Config, runner TrendRunner, reader TrendReader, scripts ScriptGenerator) *TrendHandler {
	return &TrendHandler{cfg: cfg, runner: runner, reader: reader, scripts: scripts}
}

func (h *TrendHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Version:     version,
		Environment: h.cfg.Environment,
	})
}

func (h *TrendHandler) AnalyzeTrends(c *gin.Context) {
	report, plan, err := h.runner.Run(c.Request.Context())
	if errors.Is(err, pipeline.ErrRunInProgress) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "이미 트렌드 분석이 진행 중입니다. 잠시 후 다시 시도해주세요."})
		return
	}
	if err != nil {
		slog.Error("trend analysis failed", "error", err)
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, AnalyzeResponse{
		Success: true,
		Data: AnalyzeData{
			Trends:       report,
			ContentPlans: plan,
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func (h *TrendHandler) GetTrends(c *gin.Context) {
	trends, err := h.reader.Recent(c.Request.Context(), recentTrendLimit)
	if err != nil {
		slog.Error("error fetching stored trends", "error", err)
		h.fail(c, err)
		return
	}

	if trends == nil {
		trends = []model.TrendSummary{}
	}

	c.JSON(http.StatusOK, TrendsResponse{Success: true, Data: trends})
}

func (h *TrendHandler) GenerateScript(c *gin.Context) {
	var req ScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "잘못된 요청 형식입니다."})
		return
	}

	if req.Title == "" || req.TargetAudience == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "제목과 타겟 고객은 필수 입력 항목입니다."})
		return
	}

	script, err := h.scripts.GenerateScript(c.Request.Context(), llm.ScriptInput{
		Title:          req.Title,
		TargetAudience: req.TargetAudience,
		Keywords:       req.Keywords,
	})
	if err != nil {
		slog.Error("script generation failed", "error", err)
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ScriptResponse{Success: true, Script: script})
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error: "요청하신 리소스를 찾을 수 없습니다.",
		Path:  c.Request.URL.Path,
	})
}

// fail renders the uniform error envelope. Production hides the underlying
// message; everything else echoes it to aid debugging.
func (h *TrendHandler) fail(c *gin.Context, err error) {
	msg := err.Error()
	if h.cfg.IsProduction() {
		msg = "서버 내부 오류가 발생했습니다."
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
}
