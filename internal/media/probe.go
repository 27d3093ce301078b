package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abema/go-mp4"
	"github.com/remko/go-mkvparse"
)

// ProbeDuration reads a media container's duration in whole seconds. MP4 uses
// the movie header; MKV and WebM use the segment info block.
func ProbeDuration(path string) (uint32, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4":
		return probeMP4(path)
	case ".mkv", ".webm":
		return probeMatroska(path)
	default:
		return 0, fmt.Errorf("unsupported container: %s", path)
	}
}

func probeMP4(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := mp4.Probe(f)
	if err != nil {
		return 0, fmt.Errorf("failed to probe %s: %w", path, err)
	}
	if info.Timescale == 0 {
		return 0, fmt.Errorf("%s has zero timescale", path)
	}
	return uint32(info.Duration / uint64(info.Timescale)), nil
}

// matroskaInfoHandler collects TimecodeScale and Duration from the Info
// section. Duration is expressed in units of TimecodeScale nanoseconds.
type matroskaInfoHandler struct {
	mkvparse.DefaultHandler
	timecodeScale int64
	duration      float64
	hasDuration   bool
}

func (h *matroskaInfoHandler) HandleInteger(id mkvparse.ElementID, value int64, info mkvparse.ElementInfo) error {
	if id == mkvparse.TimecodeScaleElement {
		h.timecodeScale = value
	}
	return nil
}

func (h *matroskaInfoHandler) HandleFloat(id mkvparse.ElementID, value float64, info mkvparse.ElementInfo) error {
	if id == mkvparse.DurationElement {
		h.duration = value
		h.hasDuration = true
	}
	return nil
}

func probeMatroska(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	handler := &matroskaInfoHandler{timecodeScale: 1_000_000}
	if err := mkvparse.ParseSections(f, handler, mkvparse.InfoElement); err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if !handler.hasDuration {
		return 0, fmt.Errorf("%s carries no duration", path)
	}
	seconds := handler.duration * float64(handler.timecodeScale) / 1e9
	if seconds < 0 {
		return 0, fmt.Errorf("%s has negative duration", path)
	}
	return uint32(seconds), nil
}
