package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config collects every environment-driven option. It is loaded once in the
// entrypoint and passed down explicitly; nothing reads the environment after Load.
type Config struct {
	Port        string
	Environment string

	AllowedOrigins []string

	ApifyAPIKey   string
	YouTubeAPIKey string

	OpenAIAPIKey      string
	AnthropicAPIKey   string
	OpenAIModel       string
	OpenAITemperature float64
	OpenAIMaxTokens   int

	SheetID             string
	ServiceAccountEmail string
	ServiceAccountKey   string

	CronSpec string
	Timezone string

	RedisURL string
	CacheTTL time.Duration

	ProviderTimeout   time.Duration
	CompletionTimeout time.Duration
	SheetTimeout      time.Duration
}

const (
	defaultCronSpec = "0 9,15,21 * * *"
	defaultTimezone = "Asia/Seoul"
)

func Load() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "3001"),
		Environment: getEnv("NODE_ENV", "development"),

		ApifyAPIKey:   os.Getenv("APIFY_API_KEY"),
		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),

		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4"),
		OpenAITemperature: getEnvFloat("OPENAI_TEMPERATURE", 0.7),
		OpenAIMaxTokens:   getEnvInt("OPENAI_MAX_TOKENS", 4000),

		SheetID:             os.Getenv("HAIR_TREND_SHEET_ID"),
		ServiceAccountEmail: os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL"),
		ServiceAccountKey:   strings.ReplaceAll(os.Getenv("GOOGLE_PRIVATE_KEY"), `\n`, "\n"),

		CronSpec: getEnv("CRON_TREND_ANALYSIS", defaultCronSpec),
		Timezone: getEnv("CRON_TIMEZONE", defaultTimezone),

		RedisURL: os.Getenv("REDIS_URL"),
		CacheTTL: getEnvDuration("TREND_CACHE_TTL", time.Minute),

		ProviderTimeout:   getEnvDuration("PROVIDER_TIMEOUT", 30*time.Second),
		CompletionTimeout: getEnvDuration("COMPLETION_TIMEOUT", 120*time.Second),
		SheetTimeout:      getEnvDuration("SHEET_TIMEOUT", 30*time.Second),
	}

	if cfg.IsProduction() {
		cfg.AllowedOrigins = []string{"https://hairtrend.ai", "https://www.hairtrend.ai"}
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, frontendURL)
	}

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}
