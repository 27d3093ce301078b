package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	DatabaseURL      string
	YouTubeAPIKey    string
	YouTubeCookies   string
	GeminiAPIKey     string
	DiscordClientID  string
	QdrantURL        string
	QdrantCollection string
	EmbeddingDim     int
	APIPort          string
	LogLevel         slog.Level
	LogFormat        string
}

// YouTubeEnabled reports whether playlist ingestion is configured.
func (c *Config) YouTubeEnabled() bool { return c.YouTubeAPIKey != "" }

// GeminiEnabled reports whether the AI features (summaries, companion, exams,
// embeddings) are configured.
func (c *Config) GeminiEnabled() bool { return c.GeminiAPIKey != "" }

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields. The API keys are optional: a missing
// YOUTUBE_API_KEY disables playlist ingestion and a missing GEMINI_API_KEY disables
// the AI features; neither is an error.
// If a .env file exists in the current directory or project root, it will be loaded
// automatically. Environment variables already set take precedence over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load() // Try current directory

	// Walk up towards the project root looking for a .env file
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		DatabaseURL:      getEnv("DATABASE_URL", "course_pilot.db"),
		YouTubeAPIKey:    getEnv("YOUTUBE_API_KEY", ""),
		YouTubeCookies:   getEnv("YOUTUBE_COOKIES", ""),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		DiscordClientID:  getEnv("DISCORD_CLIENT_ID", ""),
		QdrantURL:        getEnv("QDRANT_URL", ""),
		QdrantCollection: getEnv("QDRANT_COLLECTION", "video_titles"),
		APIPort:          getEnv("API_PORT", "9000"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
	}

	dimStr := getEnv("EMBEDDING_DIM", "768")
	dim, err := strconv.Atoi(dimStr)
	if err != nil {
		return nil, fmt.Errorf("EMBEDDING_DIM must be a valid integer: %w", err)
	}
	if dim <= 0 {
		return nil, fmt.Errorf("EMBEDDING_DIM must be greater than 0")
	}
	cfg.EmbeddingDim = dim

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	// Create the database directory if it doesn't exist
	dataDir := filepath.Dir(cfg.DatabaseURL)
	if dataDir != "." && dataDir != "" {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
