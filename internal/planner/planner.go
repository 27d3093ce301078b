// Package planner packs video durations into daily study sessions bounded by
// the user's cognitive limit.
package planner

import "coursepilot/internal/domain"

// SessionPlanner assembles day-indexed sessions from an ordered duration list.
// It is pure: the same inputs always produce the same plan.
type SessionPlanner struct {
	limit domain.CognitiveLimit
}

// NewSessionPlanner creates a planner for the given cognitive limit.
func NewSessionPlanner(limit domain.CognitiveLimit) *SessionPlanner {
	return &SessionPlanner{limit: limit}
}

// PlanSessions covers every index exactly once. A session is closed before
// adding index i when adding it would exceed the limit, or when i starts a new
// module and the running session already holds at least half the limit. A
// video longer than the whole limit becomes a singleton session.
func (p *SessionPlanner) PlanSessions(durations []uint32, moduleBoundaries []int) []domain.SessionPlan {
	if len(durations) == 0 {
		return nil
	}

	limitSecs := p.limit.Seconds()
	isBoundary := make(map[int]bool, len(moduleBoundaries))
	for _, b := range moduleBoundaries {
		isBoundary[b] = true
	}

	var sessions []domain.SessionPlan
	var currentVideos []int
	var currentDuration uint32
	day := uint32(1)

	for i, d := range durations {
		wouldExceed := currentDuration+d > limitSecs
		atBoundary := isBoundary[i]

		split := (wouldExceed && len(currentVideos) > 0) ||
			(atBoundary && len(currentVideos) > 0 && currentDuration >= limitSecs/2)
		if split {
			sessions = append(sessions, domain.SessionPlan{
				Day:               day,
				VideoIndices:      currentVideos,
				TotalDurationSecs: currentDuration,
			})
			day++
			currentVideos = nil
			currentDuration = 0
		}

		currentVideos = append(currentVideos, i)
		currentDuration += d
	}

	if len(currentVideos) > 0 {
		sessions = append(sessions, domain.SessionPlan{
			Day:               day,
			VideoIndices:      currentVideos,
			TotalDurationSecs: currentDuration,
		})
	}

	return sessions
}

// EstimateDays returns how many sessions the plan would need without boundary
// hints.
func (p *SessionPlanner) EstimateDays(durations []uint32) int {
	return len(p.PlanSessions(durations, nil))
}
