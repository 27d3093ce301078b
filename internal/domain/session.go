package domain

// DefaultCognitiveLimitMinutes is substituted when a limit of 0 is requested.
const DefaultCognitiveLimitMinutes = 45

// CognitiveLimit is the user's target maximum total watch-time per study day.
// Constructing it with 0 substitutes the 45-minute default.
type CognitiveLimit struct {
	minutes uint32
}

// NewCognitiveLimit builds a limit from minutes; 0 means "use the default".
func NewCognitiveLimit(minutes uint32) CognitiveLimit {
	if minutes == 0 {
		minutes = DefaultCognitiveLimitMinutes
	}
	return CognitiveLimit{minutes: minutes}
}

// Minutes returns the limit in minutes.
func (c CognitiveLimit) Minutes() uint32 { return c.minutes }

// Seconds returns the limit in seconds.
func (c CognitiveLimit) Seconds() uint32 { return c.minutes * 60 }

// SessionPlan is one study day: the indices of the videos to watch (into the
// planner's input ordering) and their summed duration.
type SessionPlan struct {
	Day               uint32  `json:"day"` // 1-indexed
	VideoIndices      []int   `json:"video_indices"`
	TotalDurationSecs uint32  `json:"total_duration_secs"`
}
