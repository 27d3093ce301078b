package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"coursepilot/internal/handlers"
	"coursepilot/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	DB          *sql.DB
	Ingest      *service.IngestService
	Courses     *service.CourseService
	Plan        *service.PlanService
	Transcripts *service.TranscriptService
	Exams       *service.ExamService
	Companion   *service.CompanionService
	Notes       *service.NotesService
	Export      *service.ExportService
	Search      *service.SearchService
	Dashboard   *service.DashboardService
	Preferences *service.PreferencesService
	Tags        *service.TagService
	Related     *service.RelatedService
	Presence    *service.PresenceService
}

// NewRouter creates the JSON API router.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(CORS)

	ingestHandler := handlers.NewIngestHandler(deps.Ingest)
	courseHandler := handlers.NewCourseHandler(deps.Courses)
	planHandler := handlers.NewPlanHandler(deps.Plan)
	transcriptHandler := handlers.NewTranscriptHandler(deps.Transcripts)
	examHandler := handlers.NewExamHandler(deps.Exams)
	companionHandler := handlers.NewCompanionHandler(deps.Companion)
	notesHandler := handlers.NewNotesHandler(deps.Notes, deps.Export)
	searchHandler := handlers.NewSearchHandler(deps.Search)
	dashboardHandler := handlers.NewDashboardHandler(deps.Dashboard)
	prefsHandler := handlers.NewPreferencesHandler(deps.Preferences)
	tagsHandler := handlers.NewTagsHandler(deps.Tags)
	relatedHandler := handlers.NewRelatedHandler(deps.Related)
	presenceHandler := handlers.NewPresenceHandler(deps.Presence)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)

		r.Post("/ingest/playlist", ingestHandler.Playlist)
		r.Post("/ingest/local", ingestHandler.Local)

		r.Get("/courses", courseHandler.List)
		r.Route("/courses/{courseID}", func(r chi.Router) {
			r.Get("/", courseHandler.Get)
			r.Patch("/", courseHandler.Update)
			r.Delete("/", courseHandler.Delete)
			r.Post("/plan", planHandler.Plan)
			r.Get("/notes/export", notesHandler.Export)
			r.Get("/tags", tagsHandler.ListForCourse)
			r.Put("/tags/{tagID}", tagsHandler.Link)
			r.Delete("/tags/{tagID}", tagsHandler.Unlink)
		})

		r.Patch("/modules/{moduleID}", courseHandler.UpdateModule)

		r.Route("/videos/{videoID}", func(r chi.Router) {
			r.Post("/move", courseHandler.MoveVideo)
			r.Put("/completed", courseHandler.SetCompleted)
			r.Put("/transcript", transcriptHandler.Attach)
			r.Post("/summarize", transcriptHandler.Summarize)
			r.Post("/exam", examHandler.Generate)
			r.Post("/ask", companionHandler.Ask)
			r.Get("/note", notesHandler.Load)
			r.Put("/note", notesHandler.Save)
			r.Delete("/note", notesHandler.Delete)
			r.Get("/related", relatedHandler.Find)
		})

		r.Post("/exams/{examID}/submit", examHandler.Submit)

		r.Get("/search", searchHandler.Search)
		r.Get("/dashboard", dashboardHandler.Load)

		r.Get("/preferences", prefsHandler.Load)
		r.Put("/preferences", prefsHandler.Update)

		r.Get("/tags", tagsHandler.List)
		r.Post("/tags", tagsHandler.Create)
		r.Delete("/tags/{tagID}", tagsHandler.Delete)

		r.Post("/presence", presenceHandler.Update)
		r.Delete("/presence", presenceHandler.Clear)
	})

	return r
}
