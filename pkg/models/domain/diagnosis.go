package domain

import "time"

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Rank orders severities so the aggregate is a simple max.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

// Issue is a single finding produced by a diagnostic check.
// It is never mutated after creation.
type Issue struct {
	Code           string
	Description    string
	Severity       Severity
	Component      string
	PossibleCauses []string
}

// Recommendation is a remediation step. Lower priority means more urgent.
type Recommendation struct {
	Priority          int
	Action            string
	EstimatedTime     string
	RequiredTools     []string
	SafetyPrecautions []string
}

// Diagnosis is the result of one evaluation over a project's measurement
// history. Recommendations are sorted ascending by priority.
type Diagnosis struct {
	ID              string
	ProjectID       string
	Timestamp       time.Time
	Issues          []Issue
	Recommendations []Recommendation
	OverallSeverity Severity
	// SafetyAlert is set only when OverallSeverity is critical.
	SafetyAlert string
}
