package diagnostics

import (
	"sort"
	"time"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
	"github.com/google/uuid"
)

const safetyAlertText = "CRITICAL ISSUES DETECTED: de-energize the affected circuits and involve a licensed electrician before continuing work."

// trendWindow is the minimum history length before trend checks engage.
const trendWindow = 5

type Config struct {
	// DefaultMaxCurrent is the per-phase current rating used when the
	// project does not declare its own, in amperes.
	DefaultMaxCurrent float64
	// NominalFrequency is the grid frequency in Hz.
	NominalFrequency float64
}

func DefaultConfig() Config {
	return Config{
		DefaultMaxCurrent: 100,
		NominalFrequency:  50,
	}
}

// finding pairs an issue with the recommendation it implies, if any.
type finding struct {
	issue domain.Issue
	rec   *domain.Recommendation
}

// check inspects one electrical dimension of the latest measurement (or the
// whole history, for trends) and returns its findings. Checks are pure and
// independent of each other.
type check func(cfg Config, project domain.Project, latest domain.Measurement, history []domain.Measurement) []finding

// Evaluator turns a project profile and its measurement history into a
// Diagnosis. It holds no per-call state and is safe for concurrent use.
type Evaluator struct {
	cfg    Config
	checks []check
}

// NewEvaluator wires the check pipeline in its fixed order. The order matters
// only for recommendation priority ties, which break by check position.
func NewEvaluator(cfg Config) *Evaluator {
	if cfg.DefaultMaxCurrent <= 0 {
		cfg.DefaultMaxCurrent = DefaultConfig().DefaultMaxCurrent
	}
	if cfg.NominalFrequency <= 0 {
		cfg.NominalFrequency = DefaultConfig().NominalFrequency
	}
	return &Evaluator{
		cfg: cfg,
		checks: []check{
			checkVoltage,
			checkCurrent,
			checkPhaseImbalance,
			checkTemperature,
			checkGrounding,
			checkPowerQuality,
			checkTrends,
		},
	}
}

// Evaluate runs every check against the history, newest measurement first.
// It never fails: missing readings skip their checks.
func (e *Evaluator) Evaluate(project domain.Project, history []domain.Measurement) domain.Diagnosis {
	d := domain.Diagnosis{
		ID:              uuid.NewString(),
		ProjectID:       project.ID,
		Timestamp:       time.Now().UTC(),
		OverallSeverity: domain.SeverityInfo,
	}

	if len(history) == 0 {
		d.Issues = []domain.Issue{{
			Code:        "NO_DATA",
			Description: "No measurements recorded for this project",
			Severity:    domain.SeverityInfo,
			Component:   "system",
			PossibleCauses: []string{
				"monitoring not yet started",
				"sensor connectivity problems",
			},
		}}
		d.Recommendations = []domain.Recommendation{{
			Priority: 1,
			Action:   "Take an initial set of measurements across all phases",
		}}
		return d
	}

	latest := history[0]
	var findings []finding
	for _, c := range e.checks {
		findings = append(findings, c(e.cfg, project, latest, history)...)
	}

	for _, f := range findings {
		d.Issues = append(d.Issues, f.issue)
		if f.rec != nil {
			d.Recommendations = append(d.Recommendations, *f.rec)
		}
	}

	for _, issue := range d.Issues {
		if issue.Severity.Rank() > d.OverallSeverity.Rank() {
			d.OverallSeverity = issue.Severity
		}
	}
	if d.OverallSeverity == domain.SeverityCritical {
		d.SafetyAlert = safetyAlertText
	}

	sort.SliceStable(d.Recommendations, func(i, j int) bool {
		return d.Recommendations[i].Priority < d.Recommendations[j].Priority
	})

	return d
}

// maxCurrent resolves the project's phase current rating.
func maxCurrent(cfg Config, project domain.Project) float64 {
	if project.MaxCurrent > 0 {
		return project.MaxCurrent
	}
	return cfg.DefaultMaxCurrent
}

// phases enumerates the present per-phase readings of a measurement in a
// stable A, B, C order.
func phases(m domain.Measurement) []struct {
	Name    string
	Reading *domain.PhaseReading
} {
	return []struct {
		Name    string
		Reading *domain.PhaseReading
	}{
		{"A", m.PhaseA},
		{"B", m.PhaseB},
		{"C", m.PhaseC},
	}
}
