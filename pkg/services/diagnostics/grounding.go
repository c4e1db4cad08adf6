package diagnostics

import (
	"fmt"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
)

const (
	groundResistanceWarning  = 5 // ohms
	groundResistanceCritical = 25
	leakageCurrentWarning    = 30 // milliamperes
	leakageCurrentCritical   = 100
)

// checkGrounding evaluates earth resistance and leakage current when a
// ground reading is present.
func checkGrounding(_ Config, _ domain.Project, latest domain.Measurement, _ []domain.Measurement) []finding {
	if latest.Ground == nil {
		return nil
	}

	var findings []finding

	if r := latest.Ground.Resistance; r != nil && *r > groundResistanceWarning {
		severity := domain.SeverityWarning
		priority := 2
		if *r > groundResistanceCritical {
			severity = domain.SeverityCritical
			priority = 1
		}
		findings = append(findings, finding{
			issue: domain.Issue{
				Code:        "HIGH_GROUND_RESISTANCE",
				Description: fmt.Sprintf("Ground resistance %.1fΩ exceeds the %.0fΩ limit", *r, float64(groundResistanceWarning)),
				Severity:    severity,
				Component:   "grounding system",
				PossibleCauses: []string{
					"corroded ground electrode",
					"dry or disturbed soil around the electrode",
					"broken grounding conductor",
				},
			},
			rec: &domain.Recommendation{
				Priority:      priority,
				Action:        "Test the grounding electrode with a fall-of-potential measurement; add or replace ground rods as needed",
				EstimatedTime: "3-4 hours",
				RequiredTools: []string{"earth ground tester", "ground rod driver"},
			},
		})
	}

	if lc := latest.Ground.LeakageCurrent; lc != nil && *lc > leakageCurrentWarning {
		severity := domain.SeverityWarning
		if *lc > leakageCurrentCritical {
			severity = domain.SeverityCritical
		}
		findings = append(findings, finding{
			issue: domain.Issue{
				Code:        "GROUND_FAULT",
				Description: fmt.Sprintf("Ground leakage current %.1fmA indicates an insulation fault", *lc),
				Severity:    severity,
				Component:   "grounding system",
				PossibleCauses: []string{
					"degraded insulation",
					"moisture ingress in equipment or conduit",
					"damaged cable sheath",
				},
			},
			rec: &domain.Recommendation{
				Priority:      1,
				Action:        "Isolate circuits one by one to locate the leakage source; megger-test suspect insulation",
				EstimatedTime: "2-4 hours",
				RequiredTools: []string{"insulation resistance tester", "leakage clamp meter"},
				SafetyPrecautions: []string{
					"shock hazard: treat all exposed conductors as live",
				},
			},
		})
	}

	return findings
}
