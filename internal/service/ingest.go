package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"coursepilot/internal/contextutil"
	"coursepilot/internal/domain"
	"coursepilot/internal/nlp"
	"coursepilot/internal/storage"

	"github.com/google/uuid"
)

// IngestService turns a YouTube playlist or a local media folder into a
// structured course: fetch → sanitize → group into modules → persist → index.
type IngestService struct {
	fetcher  PlaylistFetcher
	scanner  LocalMediaScanner
	embedder TextEmbedder   // nil when embeddings are disabled
	embIndex EmbeddingIndex // nil when the vector store is disabled
	courses  storage.CourseStore
	modules  storage.ModuleStore
	videos   storage.VideoStore
	search   storage.SearchStore
	prefs    storage.PreferencesStore
	detector *nlp.BoundaryDetector
}

// NewIngestService wires the ingest pipeline. embedder and embIndex may be nil;
// ingestion then falls back to count-based module grouping.
func NewIngestService(
	fetcher PlaylistFetcher,
	scanner LocalMediaScanner,
	embedder TextEmbedder,
	embIndex EmbeddingIndex,
	courses storage.CourseStore,
	modules storage.ModuleStore,
	videos storage.VideoStore,
	search storage.SearchStore,
	prefs storage.PreferencesStore,
) *IngestService {
	return &IngestService{
		fetcher:  fetcher,
		scanner:  scanner,
		embedder: embedder,
		embIndex: embIndex,
		courses:  courses,
		modules:  modules,
		videos:   videos,
		search:   search,
		prefs:    prefs,
		detector: nlp.NewBoundaryDetector(),
	}
}

// IngestPlaylistInput carries the playlist URL and an optional course name;
// when the name is empty the first sanitized title is used.
type IngestPlaylistInput struct {
	PlaylistURL string
	CourseName  string
}

// IngestOutput reports what an ingest run created.
type IngestOutput struct {
	CourseID     domain.CourseID `json:"course_id"`
	ModulesCount int             `json:"modules_count"`
	VideosCount  int             `json:"videos_count"`
}

// IngestPlaylist runs the playlist pipeline. Persistence is at-most-once per
// run with no partial-course cleanup on failure; ids are fresh each attempt.
func (s *IngestService) IngestPlaylist(ctx context.Context, input IngestPlaylistInput) (*IngestOutput, error) {
	logger := contextutil.LoggerFromContext(ctx)

	playlistURL, err := domain.NewPlaylistURL(input.PlaylistURL)
	if err != nil {
		return nil, &ValidationError{Field: "playlist_url", Message: err.Error()}
	}
	if s.fetcher == nil {
		return nil, WrapError(ErrInvalidState, "playlist ingestion is not configured")
	}

	rawVideos, err := s.fetcher.FetchPlaylist(ctx, playlistURL)
	if err != nil {
		return nil, WrapError(err, "failed to fetch playlist")
	}
	if len(rawVideos) == 0 {
		return nil, fmt.Errorf("playlist is empty: %w", ErrExternalService)
	}

	sanitized := make([]string, len(rawVideos))
	for i, raw := range rawVideos {
		sanitized[i] = nlp.SanitizeTitle(raw.Title)
	}

	groups, embeddings := s.groupTitles(ctx, logger, sanitized)

	courseName := input.CourseName
	if courseName == "" {
		courseName = sanitized[0]
	}
	courseID := domain.NewCourseID()
	course := domain.NewCourse(courseID, courseName, playlistURL, playlistURL.PlaylistID(), "")
	if err := s.courses.Save(ctx, course); err != nil {
		return nil, WrapError(err, "failed to persist course")
	}
	if err := s.search.IndexCourse(ctx, courseID, course.Name, course.Description); err != nil {
		return nil, WrapError(err, "failed to index course")
	}

	videosCount := 0
	for moduleIdx, indices := range groups {
		moduleID := domain.NewModuleID()
		moduleTitle := fmt.Sprintf("Module %d", moduleIdx+1)
		if len(indices) > 0 && sanitized[indices[0]] != "" {
			moduleTitle = sanitized[indices[0]]
		}
		module := domain.NewModule(moduleID, courseID, moduleTitle, uint32(moduleIdx))
		if err := s.modules.Save(ctx, module); err != nil {
			return nil, WrapError(err, "failed to persist module")
		}

		for sortOrder, i := range indices {
			raw := rawVideos[i]
			ytID, err := domain.NewYouTubeVideoID(raw.YouTubeID)
			if err != nil {
				return nil, WrapError(err, "failed to persist video")
			}
			video := domain.NewVideoWithDescription(
				domain.NewVideoID(), moduleID, domain.YouTubeSource(ytID),
				sanitized[i], raw.Description, raw.DurationSecs, uint32(sortOrder),
			)
			if err := s.videos.Save(ctx, video); err != nil {
				return nil, WrapError(err, "failed to persist video")
			}
			if err := s.search.IndexVideo(ctx, video.ID, courseID, video.Title, video.Description); err != nil {
				return nil, WrapError(err, "failed to index video")
			}
			if s.embIndex != nil && embeddings != nil {
				if err := s.embIndex.Upsert(ctx, video.ID.String(), courseID.String(), embeddings[i]); err != nil {
					logger.WarnContext(ctx, "failed to index embedding", "video_id", video.ID, "error", err)
				}
			}
			videosCount++
		}
	}

	logger.InfoContext(ctx, "playlist ingested",
		"course_id", courseID, "modules", len(groups), "videos", videosCount)
	return &IngestOutput{CourseID: courseID, ModulesCount: len(groups), VideosCount: videosCount}, nil
}

// groupTitles picks the grouping strategy: embedding boundaries when the
// embedder is available and ML boundary detection is enabled, otherwise the
// count-based fallback.
func (s *IngestService) groupTitles(ctx context.Context, logger *slog.Logger, titles []string) ([][]int, []domain.Embedding) {
	useML := s.embedder != nil
	if useML {
		prefs, err := s.prefs.Load(ctx)
		if err != nil {
			logger.WarnContext(ctx, "failed to load preferences, using batch grouping", "error", err)
			useML = false
		} else if !prefs.MLBoundaryEnabled {
			useML = false
		}
	}
	if useML {
		embeddings, err := s.embedder.EmbedBatch(ctx, titles)
		if err != nil || len(embeddings) != len(titles) {
			logger.WarnContext(ctx, "embedding failed, using batch grouping", "error", err)
		} else {
			return s.detector.GroupIntoModules(embeddings), embeddings
		}
	}
	return nlp.GroupByCount(len(titles)), nil
}

// IngestLocalInput carries the folder root and an optional course name; when
// the name is empty the root's basename is used.
type IngestLocalInput struct {
	RootPath   string
	CourseName string
}

// IngestLocal scans a directory tree for media files and builds a course from
// it, one module per directory.
func (s *IngestService) IngestLocal(ctx context.Context, input IngestLocalInput) (*IngestOutput, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if input.RootPath == "" {
		return nil, &ValidationError{Field: "root_path", Message: "cannot be empty"}
	}
	if s.scanner == nil {
		return nil, WrapError(ErrInvalidState, "local ingestion is not configured")
	}

	items, err := s.scanner.Scan(ctx, input.RootPath)
	if err != nil {
		return nil, WrapError(err, "failed to scan media folder")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no media files under %s: %w", input.RootPath, ErrExternalService)
	}

	// Deterministic grouping regardless of filesystem iteration order
	sort.Slice(items, func(i, j int) bool { return items[i].Path < items[j].Path })

	grouped := make(map[string][]ScannedMedia)
	var dirKeys []string
	for _, item := range items {
		dir := filepath.Dir(item.Path)
		if _, seen := grouped[dir]; !seen {
			dirKeys = append(dirKeys, dir)
		}
		grouped[dir] = append(grouped[dir], item)
	}
	sort.Strings(dirKeys)

	courseName := input.CourseName
	if courseName == "" {
		courseName = filepath.Base(input.RootPath)
	}

	// Local courses carry a synthetic playlist URL so the course shape stays
	// uniform across sources
	courseUUID := uuid.New().String()
	syntheticURL, err := domain.NewPlaylistURL(
		"https://www.youtube.com/playlist?list=local-" + courseUUID,
	)
	if err != nil {
		return nil, WrapError(err, "failed to build synthetic playlist URL")
	}

	courseID := domain.CourseID(courseUUID)
	course := domain.NewCourse(courseID, courseName, syntheticURL, syntheticURL.PlaylistID(), "")
	if err := s.courses.Save(ctx, course); err != nil {
		return nil, WrapError(err, "failed to persist course")
	}
	if err := s.search.IndexCourse(ctx, courseID, course.Name, course.Description); err != nil {
		return nil, WrapError(err, "failed to index course")
	}

	videosCount := 0
	for moduleIdx, dir := range dirKeys {
		moduleTitle := localModuleTitle(input.RootPath, dir)
		moduleID := domain.NewModuleID()
		module := domain.NewModule(moduleID, courseID, moduleTitle, uint32(moduleIdx))
		if err := s.modules.Save(ctx, module); err != nil {
			return nil, WrapError(err, "failed to persist module")
		}

		for sortOrder, item := range grouped[dir] {
			source, err := domain.LocalSource(item.Path)
			if err != nil {
				return nil, WrapError(err, "failed to persist video")
			}
			video := domain.NewVideo(
				domain.NewVideoID(), moduleID, source,
				nlp.SanitizeTitle(item.Title), item.DurationSecs, uint32(sortOrder),
			)
			if video.Title == "" {
				video.Title = item.Title
			}
			if err := s.videos.Save(ctx, video); err != nil {
				return nil, WrapError(err, "failed to persist video")
			}
			if err := s.search.IndexVideo(ctx, video.ID, courseID, video.Title, ""); err != nil {
				return nil, WrapError(err, "failed to index video")
			}
			videosCount++
		}
	}

	logger.InfoContext(ctx, "local folder ingested",
		"course_id", courseID, "modules", len(dirKeys), "videos", videosCount)
	return &IngestOutput{CourseID: courseID, ModulesCount: len(dirKeys), VideosCount: videosCount}, nil
}

// localModuleTitle names a module after its directory: the scan root maps to
// "Root", other directories to their sanitized basename.
func localModuleTitle(root, dir string) string {
	if filepath.Clean(dir) == filepath.Clean(root) {
		return "Root"
	}
	title := nlp.SanitizeTitle(filepath.Base(dir))
	if title == "" {
		return "Module"
	}
	return title
}
