package media

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"coursepilot/internal/contextutil"
	"coursepilot/internal/service"
)

// Scanner walks a directory tree for playable media files and probes their
// durations. It implements service.LocalMediaScanner.
type Scanner struct{}

// NewScanner creates a Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

var mediaExtensions = map[string]struct{}{
	".mp4":  {},
	".mkv":  {},
	".webm": {},
}

// Scan walks root recursively and returns one entry per media file, titled by
// the filename without its extension. Files whose containers cannot be parsed
// are kept with duration 0 rather than failing the scan.
func (s *Scanner) Scan(ctx context.Context, root string) ([]service.ScannedMedia, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", abs)
	}

	logger := contextutil.LoggerFromContext(ctx)

	var items []service.ScannedMedia
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := mediaExtensions[ext]; !ok {
			return nil
		}

		duration, probeErr := ProbeDuration(path)
		if probeErr != nil {
			logger.WarnContext(ctx, "duration probe failed", "path", path, "error", probeErr)
			duration = 0
		}

		items = append(items, service.ScannedMedia{
			Path:         path,
			Title:        strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())),
			DurationSecs: duration,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", abs, err)
	}
	return items, nil
}
