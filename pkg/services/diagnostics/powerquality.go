package diagnostics

import (
	"fmt"
	"math"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
)

const (
	powerFactorInfo            = 0.85
	powerFactorWarning         = 0.7
	frequencyDeviationWarning  = 0.5 // Hz
	frequencyDeviationCritical = 2
)

// checkPowerQuality covers power factor and grid frequency.
func checkPowerQuality(cfg Config, _ domain.Project, latest domain.Measurement, _ []domain.Measurement) []finding {
	var findings []finding

	if pf := latest.PowerFactor; pf != nil && *pf < powerFactorInfo {
		severity := domain.SeverityInfo
		if *pf < powerFactorWarning {
			severity = domain.SeverityWarning
		}
		findings = append(findings, finding{
			issue: domain.Issue{
				Code:        "LOW_POWER_FACTOR",
				Description: fmt.Sprintf("Power factor %.2f is below the %.2f efficiency target", *pf, powerFactorInfo),
				Severity:    severity,
				Component:   "load",
				PossibleCauses: []string{
					"lightly loaded induction motors",
					"uncompensated inductive loads",
					"failed power factor correction capacitors",
				},
			},
			rec: &domain.Recommendation{
				Priority:      3,
				Action:        "Survey inductive loads and size power factor correction capacitors",
				EstimatedTime: "4-8 hours",
				RequiredTools: []string{"power quality analyzer"},
			},
		})
	}

	if f := latest.Frequency; f != nil {
		deviation := math.Abs(*f - cfg.NominalFrequency)
		if deviation > frequencyDeviationWarning {
			severity := domain.SeverityWarning
			if deviation > frequencyDeviationCritical {
				severity = domain.SeverityCritical
			}
			findings = append(findings, finding{
				issue: domain.Issue{
					Code:        "FREQUENCY_DEVIATION",
					Description: fmt.Sprintf("Frequency %.2fHz deviates %.2fHz from nominal %.0fHz", *f, deviation, cfg.NominalFrequency),
					Severity:    severity,
					Component:   "supply",
					PossibleCauses: []string{
						"generator governor malfunction",
						"grid instability",
						"measurement instrument fault",
					},
				},
			})
		}
	}

	return findings
}
