package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/secure"
	"github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/config"
)

const (
	maxBodyBytes    = 10 << 20 // 10 MB, any endpoint
	rateLimitWindow = 15 * time.Minute
	rateLimitMax    = 100
)

// NewRouter assembles the HTTP facade: security headers, compression, body
// size ceiling, CORS, and a fixed-window rate limit on the /api prefix.
func NewRouter(cfg *config.Config, h *TrendHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(secure.New(secure.Config{
		ContentSecurityPolicy: "default-src 'self'; style-src 'self' 'unsafe-inline'; script-src 'self'; img-src 'self' data: https:",
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(limits.RequestSizeLimiter(maxBodyBytes))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	rate := limiter.Rate{Period: rateLimitWindow, Limit: rateLimitMax}
	rateLimit := mgin.NewMiddleware(
		limiter.New(memory.NewStore(), rate),
		mgin.WithLimitReachedHandler(limitReached),
	)

	api := r.Group("/api", rateLimit)
	api.GET("/health", h.GetHealth)
	api.POST("/analyze-trends", h.AnalyzeTrends)
	api.GET("/trends", h.GetTrends)
	api.POST("/generate-script", h.GenerateScript)

	r.NoRoute(NotFound)

	return r
}

func limitReached(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
		Error:      "너무 많은 요청입니다. 잠시 후 다시 시도해주세요.",
		RetryAfter: int(rateLimitWindow.Seconds()),
	})
}
