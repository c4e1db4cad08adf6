package diagnostics

import (
	"fmt"
	"math"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
)

const (
	voltageImbalanceInfo    = 2 // percent
	voltageImbalanceWarning = 5
	currentImbalanceInfo    = 10
	currentImbalanceWarning = 25
)

// imbalancePercent is the worst phase deviation from the three-phase mean,
// as a percentage of the mean. A zero mean yields zero, never a fault.
func imbalancePercent(a, b, c float64) float64 {
	mean := (a + b + c) / 3
	if mean == 0 {
		return 0
	}
	worst := math.Abs(a - mean)
	if d := math.Abs(b - mean); d > worst {
		worst = d
	}
	if d := math.Abs(c - mean); d > worst {
		worst = d
	}
	return worst / mean * 100
}

// checkPhaseImbalance applies only to three-phase projects with all three
// phases sampled. Voltage and current imbalance are evaluated independently.
func checkPhaseImbalance(_ Config, project domain.Project, latest domain.Measurement, _ []domain.Measurement) []finding {
	if project.SystemType != domain.SystemThreePhase {
		return nil
	}
	if latest.PhaseA == nil || latest.PhaseB == nil || latest.PhaseC == nil {
		return nil
	}

	var findings []finding

	if latest.PhaseA.Voltage != nil && latest.PhaseB.Voltage != nil && latest.PhaseC.Voltage != nil {
		imbalance := imbalancePercent(*latest.PhaseA.Voltage, *latest.PhaseB.Voltage, *latest.PhaseC.Voltage)
		if imbalance > voltageImbalanceInfo {
			severity := domain.SeverityInfo
			priority := 4
			if imbalance > voltageImbalanceWarning {
				severity = domain.SeverityWarning
				priority = 2
			}
			findings = append(findings, finding{
				issue: domain.Issue{
					Code:        "VOLTAGE_IMBALANCE",
					Description: fmt.Sprintf("Phase voltage imbalance of %.1f%% across A/B/C", imbalance),
					Severity:    severity,
					Component:   "three-phase supply",
					PossibleCauses: []string{
						"uneven single-phase load distribution",
						"failing phase connection",
						"utility supply asymmetry",
					},
				},
				rec: &domain.Recommendation{
					Priority:      priority,
					Action:        "Measure phase-to-phase voltages at the panel and redistribute loads",
					EstimatedTime: "1-2 hours",
					RequiredTools: []string{"multimeter"},
				},
			})
		}
	}

	if latest.PhaseA.Current != nil && latest.PhaseB.Current != nil && latest.PhaseC.Current != nil {
		imbalance := imbalancePercent(*latest.PhaseA.Current, *latest.PhaseB.Current, *latest.PhaseC.Current)
		if imbalance > currentImbalanceInfo {
			severity := domain.SeverityInfo
			if imbalance > currentImbalanceWarning {
				severity = domain.SeverityWarning
			}
			findings = append(findings, finding{
				issue: domain.Issue{
					Code:        "CURRENT_IMBALANCE",
					Description: fmt.Sprintf("Phase current imbalance of %.1f%% across A/B/C", imbalance),
					Severity:    severity,
					Component:   "three-phase load",
					PossibleCauses: []string{
						"unbalanced branch circuits",
						"single-phasing of a three-phase motor",
					},
				},
			})
		}
	}

	return findings
}
