package relay

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// Server streams local media files to the player over loopback HTTP. It binds
// to 127.0.0.1 on an ephemeral port so nothing is exposed beyond the machine.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	logger     *slog.Logger
}

// New creates a relay server. Call Start to bind it.
func New(logger *slog.Logger) *Server {
	return &Server{logger: logger}
}

// Start binds 127.0.0.1:0 and begins serving. The chosen address is available
// from Addr after Start returns.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("failed to bind relay listener: %w", err)
	}
	s.listener = listener

	r := chi.NewRouter()
	// chi answers 405 for any other method on the route
	r.Get("/media", s.handleMedia)
	r.Head("/media", s.handleMedia)

	s.httpServer = &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("relay server failed", "error", err)
		}
	}()

	s.logger.Info("media relay listening", "addr", s.Addr())
	return nil
}

// Addr returns the bound address, e.g. "127.0.0.1:49213". Empty before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown drains in-flight requests and closes the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// handleMedia serves one media file identified by the percent-encoded absolute
// path in ?path=. http.ServeContent handles Range requests: 206 for
// satisfiable ranges, 416 for unsatisfiable ones, 200 for full reads.
func (s *Server) handleMedia(w http.ResponseWriter, r *http.Request) {
	rawPath := r.URL.Query().Get("path")
	if rawPath == "" {
		http.Error(w, "path is required", http.StatusBadRequest)
		return
	}
	if !filepath.IsAbs(rawPath) {
		http.Error(w, "path must be absolute", http.StatusBadRequest)
		return
	}

	f, err := os.Open(rawPath)
	if err != nil {
		if os.IsNotExist(err) {
			http.Error(w, "file not found", http.StatusNotFound)
			return
		}
		s.logger.Error("failed to open media file", "path", rawPath, "error", err)
		http.Error(w, "failed to open file", http.StatusInternalServerError)
		return
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(rawPath))
	w.Header().Set("Accept-Ranges", "bytes")
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// contentTypeFor maps the media extensions the scanner accepts to their MIME
// types; anything else falls back to octet-stream.
func contentTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4":
		return "video/mp4"
	case ".mkv":
		return "video/x-matroska"
	case ".webm":
		return "video/webm"
	default:
		return "application/octet-stream"
	}
}
