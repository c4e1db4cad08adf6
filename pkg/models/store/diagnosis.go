package store

import "time"

type IssueDoc struct {
	Code           string   `json:"code"`
	Description    string   `json:"description"`
	Severity       string   `json:"severity"`
	Component      string   `json:"component"`
	PossibleCauses []string `json:"possibleCauses,omitempty"`
}

type RecommendationDoc struct {
	Priority          int      `json:"priority"`
	Action            string   `json:"action"`
	EstimatedTime     string   `json:"estimatedTime,omitempty"`
	RequiredTools     []string `json:"requiredTools,omitempty"`
	SafetyPrecautions []string `json:"safetyPrecautions,omitempty"`
}

type DiagnosisDoc struct {
	Issues          []IssueDoc          `json:"issues"`
	Recommendations []RecommendationDoc `json:"recommendations"`
	SafetyAlert     string              `json:"safetyAlert,omitempty"`
}

type DiagnosisRecord struct {
	ID              string
	ProjectID       string
	Timestamp       time.Time
	OverallSeverity string
	Doc             DiagnosisDoc
}
