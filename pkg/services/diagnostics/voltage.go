package diagnostics

import (
	"fmt"
	"math"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
)

const (
	voltageDropWarning  = 10 // percent
	voltageDropCritical = 15
)

// checkVoltage compares each sampled phase voltage against the project's
// nominal rating.
func checkVoltage(_ Config, project domain.Project, latest domain.Measurement, _ []domain.Measurement) []finding {
	if project.NominalVoltage == 0 {
		return nil
	}

	var findings []finding
	for _, p := range phases(latest) {
		if p.Reading == nil || p.Reading.Voltage == nil {
			continue
		}

		drop := (project.NominalVoltage - *p.Reading.Voltage) / project.NominalVoltage * 100
		if math.Abs(drop) <= voltageDropWarning {
			continue
		}

		severity := domain.SeverityWarning
		priority := 2
		if math.Abs(drop) > voltageDropCritical {
			severity = domain.SeverityCritical
			priority = 1
		}

		findings = append(findings, finding{
			issue: domain.Issue{
				Code: "VOLTAGE_OUT_OF_RANGE_" + p.Name,
				Description: fmt.Sprintf("Phase %s voltage %.1fV deviates %.1f%% from nominal %.0fV",
					p.Name, *p.Reading.Voltage, math.Abs(drop), project.NominalVoltage),
				Severity:  severity,
				Component: "phase " + p.Name,
				PossibleCauses: []string{
					"loose or corroded connections",
					"undersized conductors",
					"utility supply issue",
					"circuit overload",
					"incorrect transformer tap setting",
				},
			},
			rec: &domain.Recommendation{
				Priority:      priority,
				Action:        fmt.Sprintf("Inspect phase %s wiring and terminations, verify supply voltage at the service entrance", p.Name),
				EstimatedTime: "2-4 hours",
				RequiredTools: []string{"multimeter", "torque screwdriver", "thermal camera"},
				SafetyPrecautions: []string{
					"de-energize before touching terminations",
					"lockout/tagout the feeder",
				},
			},
		})
	}
	return findings
}
