package nlp

import "coursepilot/internal/domain"

// DefaultBoundaryThreshold is the cosine-similarity threshold below which two
// adjacent videos are considered to belong to different modules.
const DefaultBoundaryThreshold = 0.7

// BoundaryDetector groups an ordered video sequence into modules by comparing
// the embeddings of adjacent titles. A similarity drop below the threshold
// marks a module boundary.
type BoundaryDetector struct {
	threshold float32
}

// NewBoundaryDetector creates a detector with the default 0.7 threshold.
func NewBoundaryDetector() *BoundaryDetector {
	return &BoundaryDetector{threshold: DefaultBoundaryThreshold}
}

// NewBoundaryDetectorWithThreshold creates a detector with a custom threshold,
// clamped to [0, 1].
func NewBoundaryDetectorWithThreshold(threshold float32) *BoundaryDetector {
	if threshold < 0 {
		threshold = 0
	}
	if threshold > 1 {
		threshold = 1
	}
	return &BoundaryDetector{threshold: threshold}
}

// DetectBoundaries returns the indices i after which a new module starts, i.e.
// where cosine(e_i, e_{i+1}) < threshold.
func (d *BoundaryDetector) DetectBoundaries(embeddings []domain.Embedding) []int {
	var boundaries []int
	for i := 0; i+1 < len(embeddings); i++ {
		if domain.CosineSimilarity(embeddings[i], embeddings[i+1]) < d.threshold {
			boundaries = append(boundaries, i)
		}
	}
	return boundaries
}

// GroupIntoModules partitions the indices 0..len(embeddings) into contiguous
// runs delimited by the detected boundaries. A single element yields one
// module; empty input yields none.
func (d *BoundaryDetector) GroupIntoModules(embeddings []domain.Embedding) [][]int {
	if len(embeddings) == 0 {
		return nil
	}

	boundaries := d.DetectBoundaries(embeddings)
	isBoundary := make(map[int]bool, len(boundaries))
	for _, b := range boundaries {
		isBoundary[b] = true
	}

	var groups [][]int
	current := []int{0}
	for i := 1; i < len(embeddings); i++ {
		if isBoundary[i-1] {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, i)
	}
	groups = append(groups, current)
	return groups
}

// GroupByCount is the fallback grouping used when embeddings are unavailable or
// ML boundary detection is disabled. It depends only on the video count: the
// indices are split into ceil(n/5) modules of near-equal size, preserving
// order.
func GroupByCount(videoCount int) [][]int {
	if videoCount == 0 {
		return nil
	}
	moduleCount := (videoCount + 4) / 5
	chunk := (videoCount + moduleCount - 1) / moduleCount

	var groups [][]int
	for start := 0; start < videoCount; start += chunk {
		end := start + chunk
		if end > videoCount {
			end = videoCount
		}
		indices := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			indices = append(indices, i)
		}
		groups = append(groups, indices)
	}
	return groups
}
