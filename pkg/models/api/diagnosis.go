package api

import "time"

type Issue struct {
	Code           string   `json:"code"`
	Description    string   `json:"description"`
	Severity       string   `json:"severity"`
	Component      string   `json:"component"`
	PossibleCauses []string `json:"possibleCauses,omitempty"`
}

type Recommendation struct {
	Priority          int      `json:"priority"`
	Action            string   `json:"action"`
	EstimatedTime     string   `json:"estimatedTime,omitempty"`
	RequiredTools     []string `json:"requiredTools,omitempty"`
	SafetyPrecautions []string `json:"safetyPrecautions,omitempty"`
}

type Diagnosis struct {
	ID              string           `json:"id"`
	ProjectID       string           `json:"projectId"`
	Timestamp       time.Time        `json:"timestamp"`
	Issues          []Issue          `json:"issues"`
	Recommendations []Recommendation `json:"recommendations"`
	OverallSeverity string           `json:"overallSeverity"`
	SafetyAlert     string           `json:"safetyAlert,omitempty"`
}
