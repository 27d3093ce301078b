package config

import (
	"log/slog"
	"os"
	"testing"
)

// setEnv sets an environment variable, ignoring errors (for test setup)
func setEnv(key, value string) {
	_ = os.Setenv(key, value)
}

// unsetEnv unsets an environment variable, ignoring errors (for test cleanup)
func unsetEnv(key string) {
	_ = os.Unsetenv(key)
}

func TestLoad(t *testing.T) {
	// Save original env vars
	originalEnv := make(map[string]string)
	envVars := []string{
		"DATABASE_URL", "YOUTUBE_API_KEY", "YOUTUBE_COOKIES", "GEMINI_API_KEY",
		"DISCORD_CLIENT_ID", "QDRANT_URL", "QDRANT_COLLECTION", "EMBEDDING_DIM",
		"API_PORT", "LOG_LEVEL", "LOG_FORMAT",
	}
	for _, key := range envVars {
		originalEnv[key] = os.Getenv(key)
		unsetEnv(key)
	}
	defer func() {
		for key, value := range originalEnv {
			if value != "" {
				setEnv(key, value)
			} else {
				unsetEnv(key)
			}
		}
	}()

	tests := []struct {
		name        string
		setupEnv    func(*testing.T)
		wantErr     bool
		checkConfig func(*Config) bool
	}{
		{
			name:     "defaults with no environment",
			setupEnv: func(t *testing.T) {},
			wantErr:  false,
			checkConfig: func(cfg *Config) bool {
				return cfg.DatabaseURL == "course_pilot.db" &&
					cfg.APIPort == "9000" &&
					cfg.EmbeddingDim == 768 &&
					cfg.QdrantCollection == "video_titles" &&
					cfg.LogLevel == slog.LevelInfo &&
					!cfg.YouTubeEnabled() &&
					!cfg.GeminiEnabled()
			},
		},
		{
			name: "api keys enable features",
			setupEnv: func(t *testing.T) {
				setEnv("YOUTUBE_API_KEY", "yt-key")
				setEnv("GEMINI_API_KEY", "gm-key")
			},
			wantErr: false,
			checkConfig: func(cfg *Config) bool {
				return cfg.YouTubeEnabled() && cfg.GeminiEnabled()
			},
		},
		{
			name: "custom port and log level",
			setupEnv: func(t *testing.T) {
				setEnv("API_PORT", "9999")
				setEnv("LOG_LEVEL", "debug")
			},
			wantErr: false,
			checkConfig: func(cfg *Config) bool {
				return cfg.APIPort == "9999" && cfg.LogLevel == slog.LevelDebug
			},
		},
		{
			name: "invalid EMBEDDING_DIM",
			setupEnv: func(t *testing.T) {
				setEnv("EMBEDDING_DIM", "not-a-number")
			},
			wantErr: true,
		},
		{
			name: "zero EMBEDDING_DIM",
			setupEnv: func(t *testing.T) {
				setEnv("EMBEDDING_DIM", "0")
			},
			wantErr: true,
		},
		{
			name: "invalid LOG_LEVEL",
			setupEnv: func(t *testing.T) {
				setEnv("LOG_LEVEL", "verbose")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envVars {
				unsetEnv(key)
			}
			tt.setupEnv(t)

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Load() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if tt.checkConfig != nil && !tt.checkConfig(cfg) {
				t.Errorf("Load() config check failed: %+v", cfg)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "WARN", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "trace", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseLogLevel(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseLogLevel(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
