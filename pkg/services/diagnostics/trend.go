package diagnostics

import (
	"fmt"
	"math"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
)

const (
	temperatureTrendDelta = 10 // °C
	currentTrendPercent   = 20
)

// checkTrends engages once more than trendWindow measurements exist. The
// history arrives newest-first, so each delta is computed newest minus
// oldest over the order-preserving list of sampled values.
func checkTrends(_ Config, _ domain.Project, _ domain.Measurement, history []domain.Measurement) []finding {
	if len(history) <= trendWindow {
		return nil
	}

	var findings []finding

	temps := collect(history, func(m domain.Measurement) *float64 { return m.Temperature })
	if len(temps) >= 2 {
		delta := temps[0] - temps[len(temps)-1]
		if delta > temperatureTrendDelta {
			findings = append(findings, finding{
				issue: domain.Issue{
					Code:        "TEMPERATURE_TREND",
					Description: fmt.Sprintf("System temperature rose %.1f°C over the measurement window", delta),
					Severity:    domain.SeverityWarning,
					Component:   "system",
					PossibleCauses: []string{
						"progressively loosening connection",
						"gradually increasing load",
						"degrading ventilation",
					},
				},
				rec: &domain.Recommendation{
					Priority:      2,
					Action:        "Keep monitoring temperature and schedule a thermal inspection",
					EstimatedTime: "ongoing",
					RequiredTools: []string{"thermal camera"},
				},
			})
		}
	}

	currents := collect(history, func(m domain.Measurement) *float64 {
		if m.PhaseA == nil {
			return nil
		}
		return m.PhaseA.Current
	})
	if len(currents) >= 2 && currents[len(currents)-1] != 0 {
		first, last := currents[0], currents[len(currents)-1]
		change := math.Abs(first-last) / last * 100
		if change > currentTrendPercent {
			findings = append(findings, finding{
				issue: domain.Issue{
					Code:        "CURRENT_TREND",
					Description: fmt.Sprintf("Phase A current changed %.1f%% over the measurement window", change),
					Severity:    domain.SeverityInfo,
					Component:   "phase A",
					PossibleCauses: []string{
						"load profile change",
						"added or removed equipment",
					},
				},
			})
		}
	}

	return findings
}

// collect extracts the non-missing samples of one reading, preserving the
// newest-first order of the history.
func collect(history []domain.Measurement, get func(domain.Measurement) *float64) []float64 {
	var out []float64
	for _, m := range history {
		if v := get(m); v != nil {
			out = append(out, *v)
		}
	}
	return out
}
