package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursepilot/internal/config"
	"coursepilot/internal/http"
	"coursepilot/internal/keystore"
	"coursepilot/internal/llm"
	"coursepilot/internal/media"
	"coursepilot/internal/presence"
	"coursepilot/internal/relay"
	"coursepilot/internal/service"
	"coursepilot/internal/storage"
	"coursepilot/internal/vectorstore"
	"coursepilot/internal/youtube"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// The OS keystore backs env config for the API keys
	secrets := keystore.New()
	if cfg.YouTubeAPIKey == "" {
		if key, ok, err := secrets.Retrieve(keystore.KeyYouTubeAPIKey); err == nil && ok {
			cfg.YouTubeAPIKey = key
		}
	}
	if cfg.GeminiAPIKey == "" {
		if key, ok, err := secrets.Retrieve(keystore.KeyGeminiAPIKey); err == nil && ok {
			cfg.GeminiAPIKey = key
		}
	}

	// Initialize database
	db, err := storage.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DatabaseURL)

	// Create repository instances
	courseRepo := storage.NewCourseRepo(db)
	moduleRepo := storage.NewModuleRepo(db)
	videoRepo := storage.NewVideoRepo(db)
	examRepo := storage.NewExamRepo(db)
	noteRepo := storage.NewNoteRepo(db)
	tagRepo := storage.NewTagRepo(db)
	prefsRepo := storage.NewPreferencesRepo(db)
	searchRepo := storage.NewSearchRepo(db)

	ctx := context.Background()

	// Optional adapters: each one is disabled, not fatal, when unconfigured
	var fetcher service.PlaylistFetcher
	var transcripts service.TranscriptProvider
	if cfg.YouTubeEnabled() {
		apiFetcher, err := youtube.NewAPIFetcher(ctx, cfg.YouTubeAPIKey)
		if err != nil {
			log.Fatalf("Failed to create YouTube client: %v", err)
		}
		fetcher = apiFetcher
		transcripts = youtube.NewTranscriptClient(cfg.YouTubeCookies)
		slog.Info("YouTube ingestion enabled")
	} else {
		slog.Info("YOUTUBE_API_KEY not set, playlist ingestion disabled")
	}

	var gemini *llm.GeminiClient
	var summarizer service.SummarizerAI
	var companion service.CompanionAI
	var examiner service.ExaminerAI
	var embedder service.TextEmbedder
	if cfg.GeminiEnabled() {
		gemini = llm.NewGeminiClient(cfg.GeminiAPIKey)
		summarizer = gemini
		companion = gemini
		examiner = gemini
		embedder = gemini
		slog.Info("Gemini AI features enabled")
	} else {
		slog.Info("GEMINI_API_KEY not set, AI features disabled")
	}

	var embIndex service.EmbeddingIndex
	if cfg.QdrantURL != "" && gemini != nil {
		qdrantIndex, err := vectorstore.NewQdrantIndex(cfg.QdrantURL, cfg.QdrantCollection)
		if err != nil {
			log.Fatalf("Failed to create Qdrant client: %v", err)
		}
		if err := qdrantIndex.EnsureCollection(ctx, cfg.EmbeddingDim); err != nil {
			log.Fatalf("Failed to ensure Qdrant collection: %v", err)
		}
		embIndex = qdrantIndex
		slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.EmbeddingDim)
	} else {
		slog.Info("Embedding index disabled")
	}

	var presenceProvider service.PresenceProvider
	if cfg.DiscordClientID != "" {
		discord, err := presence.NewDiscordProvider(cfg.DiscordClientID, logger)
		if err != nil {
			slog.Warn("Discord presence disabled", "error", err)
		} else {
			presenceProvider = discord
			defer discord.Close()
			slog.Info("Discord presence enabled")
		}
	}

	// Wire use cases
	ingestService := service.NewIngestService(
		fetcher, media.NewScanner(), embedder, embIndex,
		courseRepo, moduleRepo, videoRepo, searchRepo, prefsRepo,
	)
	courseService := service.NewCourseService(courseRepo, moduleRepo, videoRepo, noteRepo, searchRepo)
	planService := service.NewPlanService(courseRepo, videoRepo, prefsRepo)
	transcriptService := service.NewTranscriptService(videoRepo, transcripts, summarizer)
	examService := service.NewExamService(videoRepo, examRepo, examiner)
	companionService := service.NewCompanionService(videoRepo, moduleRepo, courseRepo, companion)
	notesService := service.NewNotesService(videoRepo, moduleRepo, courseRepo, tagRepo, noteRepo, searchRepo)
	exportService := service.NewExportService(courseRepo, moduleRepo, videoRepo, noteRepo, tagRepo)
	searchService := service.NewSearchService(searchRepo)
	dashboardService := service.NewDashboardService(courseRepo, moduleRepo, videoRepo)
	prefsService := service.NewPreferencesService(prefsRepo)
	tagService := service.NewTagService(tagRepo, courseRepo)
	relatedService := service.NewRelatedService(videoRepo, embedder, embIndex)
	presenceService := service.NewPresenceService(presenceProvider, videoRepo, moduleRepo, courseRepo)

	// Media relay for local playback, loopback only
	relayServer := relay.New(logger)
	if err := relayServer.Start(); err != nil {
		log.Fatalf("Failed to start media relay: %v", err)
	}

	router := http.NewRouter(&http.Deps{
		DB:          db,
		Ingest:      ingestService,
		Courses:     courseService,
		Plan:        planService,
		Transcripts: transcriptService,
		Exams:       examService,
		Companion:   companionService,
		Notes:       notesService,
		Export:      exportService,
		Search:      searchService,
		Dashboard:   dashboardService,
		Preferences: prefsService,
		Tags:        tagService,
		Related:     relatedService,
		Presence:    presenceService,
	})

	addr := ":" + cfg.APIPort
	server := &nethttp.Server{Addr: addr, Handler: router}

	go func() {
		slog.Info("Starting API server", "addr", addr, "relay", relayServer.Addr())
		if err := server.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
			log.Fatalf("API server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("API server shutdown failed", "error", err)
	}
	if err := relayServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Relay shutdown failed", "error", err)
	}
}
