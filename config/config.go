package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr         string
	DatabaseURL        string
	TranscribeProvider string
	TranscribeTimeout  time.Duration
	UpliftBaseURL      string
	UpliftAPIKey       string
	GeminiAPIKey       string
	GeminiModel        string
	MetricsNamespace   string
}

// Load returns configuration populated from environment variables with fallbacks.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:         getenvDefault("LISTEN_ADDR", ":8000"),
		DatabaseURL:        trimmedEnv("DATABASE_URL"),
		TranscribeProvider: strings.ToLower(getenvDefault("TRANSCRIBE_PROVIDER", "uplift")),
		UpliftBaseURL:      getenvDefault("UPLIFT_BASE_URL", "https://api.upliftai.org"),
		UpliftAPIKey:       trimmedEnv("UPLIFT_API_KEY"),
		GeminiAPIKey:       trimmedEnv("GEMINI_API_KEY"),
		GeminiModel:        getenvDefault("GEMINI_MODEL", "gemini-2.5-flash-lite"),
		MetricsNamespace:   getenvDefault("METRICS_NAMESPACE", "voicepos"),
	}

	timeoutStr := getenvDefault("TRANSCRIBE_TIMEOUT", "20s")
	dur, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TRANSCRIBE_TIMEOUT duration: %w", err)
	}
	cfg.TranscribeTimeout = dur

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	switch cfg.TranscribeProvider {
	case "uplift":
		if cfg.UpliftAPIKey == "" {
			return nil, fmt.Errorf("UPLIFT_API_KEY is required for the uplift provider")
		}
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
	default:
		return nil, fmt.Errorf("unknown TRANSCRIBE_PROVIDER %q", cfg.TranscribeProvider)
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		if trimmed := strings.TrimSpace(val); trimmed != "" {
			return trimmed
		}
	}
	return fallback
}

func trimmedEnv(key string) string {
	if val, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(val)
	}
	return ""
}
