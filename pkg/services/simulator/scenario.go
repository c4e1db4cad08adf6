package simulator

import (
	"fmt"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
)

// Scenario names a fault to inject into generated measurements.
type Scenario string

const (
	ScenarioNone            Scenario = "none"
	ScenarioVoltageDrop     Scenario = "voltage-drop"
	ScenarioOvercurrent     Scenario = "overcurrent"
	ScenarioPhaseImbalance  Scenario = "phase-imbalance"
	ScenarioOverheating     Scenario = "overheating"
	ScenarioGroundFault     Scenario = "ground-fault"
	ScenarioPoorPowerFactor Scenario = "poor-power-factor"
)

func ParseScenario(s string) (Scenario, error) {
	switch Scenario(s) {
	case "", ScenarioNone:
		return ScenarioNone, nil
	case ScenarioVoltageDrop, ScenarioOvercurrent, ScenarioPhaseImbalance,
		ScenarioOverheating, ScenarioGroundFault, ScenarioPoorPowerFactor:
		return Scenario(s), nil
	}
	return "", fmt.Errorf("unknown scenario: %q", s)
}

func (s *Session) injectScenario(m *domain.Measurement) {
	switch s.cfg.Scenario {
	case ScenarioVoltageDrop:
		if m.PhaseA != nil {
			m.PhaseA.Voltage = domain.Float(s.cfg.NominalVoltage * 0.75)
		}
	case ScenarioOvercurrent:
		if m.PhaseA != nil {
			m.PhaseA.Current = domain.Float(s.cfg.MaxCurrent * 1.4)
		}
	case ScenarioPhaseImbalance:
		if m.PhaseB != nil {
			m.PhaseB.Voltage = domain.Float(s.cfg.NominalVoltage * 0.88)
			m.PhaseB.Current = domain.Float(s.cfg.MaxCurrent * 0.95)
		}
	case ScenarioOverheating:
		m.Temperature = domain.Float(s.between(82, 95))
		if m.PhaseA != nil {
			m.PhaseA.Temperature = domain.Float(s.between(82, 95))
		}
	case ScenarioGroundFault:
		m.Ground = &domain.GroundReading{
			Resistance:     domain.Float(s.between(26, 40)),
			LeakageCurrent: domain.Float(s.between(105, 150)),
		}
	case ScenarioPoorPowerFactor:
		m.PowerFactor = domain.Float(s.between(0.5, 0.65))
	}
}
