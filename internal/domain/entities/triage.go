package entities

// Priority is the urgency tier assigned to a symptom description. It drives
// both the repository pre-filter (emergency/24-7 flags) and the readiness
// bonus during ranking.
type Priority string

const (
	PriorityNormal   Priority = "normal"
	PriorityUrgent   Priority = "urgent"
	PriorityCritical Priority = "critical"
)

// ParsePriority maps a raw string to a known priority tier. Anything
// unrecognized is treated as normal rather than rejected.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityUrgent:
		return PriorityUrgent
	case PriorityCritical:
		return PriorityCritical
	default:
		return PriorityNormal
	}
}

// IsElevated reports whether the priority qualifies for the readiness bonus.
func (p Priority) IsElevated() bool {
	return p == PriorityUrgent || p == PriorityCritical
}

// TriageResult holds the outcome of classifying a symptom description.
type TriageResult struct {
	Category   string         `json:"category"`
	Specialty  string         `json:"specialty"`
	Priority   Priority       `json:"priority"`
	Confidence float64        `json:"confidence"`
	RawScores  map[string]int `json:"raw_scores"`
}
