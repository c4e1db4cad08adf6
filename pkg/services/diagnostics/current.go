package diagnostics

import (
	"fmt"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
)

const (
	overcurrentCriticalFactor = 1.25
	neutralCurrentInfo        = 10 // amperes
	neutralCurrentWarning     = 20
)

// checkCurrent flags phase currents above the project's rating and elevated
// neutral current.
func checkCurrent(cfg Config, project domain.Project, latest domain.Measurement, _ []domain.Measurement) []finding {
	rated := maxCurrent(cfg, project)

	var findings []finding
	for _, p := range phases(latest) {
		if p.Reading == nil || p.Reading.Current == nil || *p.Reading.Current <= rated {
			continue
		}

		severity := domain.SeverityWarning
		priority := 2
		if *p.Reading.Current > rated*overcurrentCriticalFactor {
			severity = domain.SeverityCritical
			priority = 1
		}

		findings = append(findings, finding{
			issue: domain.Issue{
				Code: "OVERCURRENT_" + p.Name,
				Description: fmt.Sprintf("Phase %s current %.1fA exceeds the %.0fA rating",
					p.Name, *p.Reading.Current, rated),
				Severity:  severity,
				Component: "phase " + p.Name,
				PossibleCauses: []string{
					"circuit overload",
					"short circuit",
					"ground fault",
					"motor starting current",
					"harmonic distortion",
				},
			},
			rec: &domain.Recommendation{
				Priority:      priority,
				Action:        fmt.Sprintf("Reduce load on phase %s or redistribute circuits; verify breaker sizing", p.Name),
				EstimatedTime: "1-2 hours",
				RequiredTools: []string{"clamp meter", "circuit tracer"},
				SafetyPrecautions: []string{
					"do not reset a tripped breaker before finding the cause",
				},
			},
		})
	}

	if latest.Neutral != nil && latest.Neutral.Current != nil && *latest.Neutral.Current > neutralCurrentInfo {
		severity := domain.SeverityInfo
		if *latest.Neutral.Current > neutralCurrentWarning {
			severity = domain.SeverityWarning
		}

		findings = append(findings, finding{
			issue: domain.Issue{
				Code: "HIGH_NEUTRAL_CURRENT",
				Description: fmt.Sprintf("Neutral current %.1fA indicates unbalanced loading",
					*latest.Neutral.Current),
				Severity:  severity,
				Component: "neutral",
				PossibleCauses: []string{
					"load imbalance across phases",
					"triplen harmonics from non-linear loads",
				},
			},
			rec: &domain.Recommendation{
				Priority:      3,
				Action:        "Rebalance single-phase loads across the three phases",
				EstimatedTime: "2-3 hours",
				RequiredTools: []string{"clamp meter", "power quality analyzer"},
			},
		})
	}

	return findings
}
