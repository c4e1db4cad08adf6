package diagnostics

import (
	"fmt"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
)

const (
	temperatureWarning  = 60 // °C
	temperatureCritical = 80
)

// checkTemperature inspects the system temperature and each sampled phase
// temperature. Critical readings carry an immediate-action recommendation;
// warnings stand on the issue alone.
func checkTemperature(_ Config, _ domain.Project, latest domain.Measurement, _ []domain.Measurement) []finding {
	var findings []finding

	if latest.Temperature != nil {
		if f := temperatureFinding(*latest.Temperature, "HIGH_TEMPERATURE", "system"); f != nil {
			findings = append(findings, *f)
		}
	}
	for _, p := range phases(latest) {
		if p.Reading == nil || p.Reading.Temperature == nil {
			continue
		}
		if f := temperatureFinding(*p.Reading.Temperature, "HIGH_TEMPERATURE_"+p.Name, "phase "+p.Name); f != nil {
			findings = append(findings, *f)
		}
	}

	return findings
}

func temperatureFinding(temp float64, code, component string) *finding {
	if temp <= temperatureWarning {
		return nil
	}

	f := finding{
		issue: domain.Issue{
			Code:        code,
			Description: fmt.Sprintf("Temperature %.1f°C on %s exceeds safe operating limits", temp, component),
			Severity:    domain.SeverityWarning,
			Component:   component,
			PossibleCauses: []string{
				"loose connection generating resistive heat",
				"overloaded conductor",
				"inadequate ventilation",
				"failing insulation",
			},
		},
	}
	if temp > temperatureCritical {
		f.issue.Severity = domain.SeverityCritical
		f.rec = &domain.Recommendation{
			Priority:      1,
			Action:        fmt.Sprintf("Immediate action: de-energize %s and inspect for hot spots before re-energizing", component),
			EstimatedTime: "1 hour",
			RequiredTools: []string{"thermal camera", "infrared thermometer"},
			SafetyPrecautions: []string{
				"fire risk: keep an extinguisher rated for electrical fires nearby",
			},
		}
	}
	return &f
}
