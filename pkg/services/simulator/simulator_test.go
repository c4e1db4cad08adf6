package simulator

import (
	"testing"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/diagnostics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_SystemTypes(t *testing.T) {
	t.Run("three-phase populates all phases", func(t *testing.T) {
		s := NewSession("prj-1", Config{SystemType: domain.SystemThreePhase, NominalVoltage: 400, Seed: 1})
		m, err := s.Next()
		require.NoError(t, err)
		assert.NotNil(t, m.PhaseA)
		assert.NotNil(t, m.PhaseB)
		assert.NotNil(t, m.PhaseC)
		assert.NotNil(t, m.PowerFactor)
		assert.NotNil(t, m.Frequency)
	})

	t.Run("single-phase populates phase A only", func(t *testing.T) {
		s := NewSession("prj-1", Config{SystemType: domain.SystemSinglePhase, NominalVoltage: 230, Seed: 1})
		m, err := s.Next()
		require.NoError(t, err)
		assert.NotNil(t, m.PhaseA)
		assert.Nil(t, m.PhaseB)
		assert.Nil(t, m.PhaseC)
	})

	t.Run("dc omits power factor and frequency", func(t *testing.T) {
		s := NewSession("prj-1", Config{SystemType: domain.SystemDC, NominalVoltage: 48, Seed: 1})
		m, err := s.Next()
		require.NoError(t, err)
		assert.Nil(t, m.PowerFactor)
		assert.Nil(t, m.Frequency)
	})

	t.Run("unknown system type fails", func(t *testing.T) {
		s := NewSession("prj-1", Config{SystemType: "two-phase", Seed: 1})
		_, err := s.Next()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported system type")
	})
}

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario("")
	require.NoError(t, err)
	assert.Equal(t, ScenarioNone, sc)

	sc, err = ParseScenario("ground-fault")
	require.NoError(t, err)
	assert.Equal(t, ScenarioGroundFault, sc)

	_, err = ParseScenario("meltdown")
	require.Error(t, err)
}

// Injected faults must trip the matching evaluator check.
func TestSession_ScenariosAreDetectable(t *testing.T) {
	tests := []struct {
		scenario Scenario
		wantCode string
	}{
		{ScenarioVoltageDrop, "VOLTAGE_OUT_OF_RANGE_A"},
		{ScenarioOvercurrent, "OVERCURRENT_A"},
		{ScenarioPhaseImbalance, "VOLTAGE_IMBALANCE"},
		{ScenarioOverheating, "HIGH_TEMPERATURE"},
		{ScenarioGroundFault, "GROUND_FAULT"},
		{ScenarioPoorPowerFactor, "LOW_POWER_FACTOR"},
	}

	project := domain.Project{
		ID:             "prj-1",
		SystemType:     domain.SystemThreePhase,
		NominalVoltage: 400,
	}
	evaluator := diagnostics.NewEvaluator(diagnostics.DefaultConfig())

	for _, tt := range tests {
		t.Run(string(tt.scenario), func(t *testing.T) {
			s := NewSession(project.ID, Config{
				SystemType:     project.SystemType,
				NominalVoltage: project.NominalVoltage,
				Scenario:       tt.scenario,
				Seed:           42,
			})
			m, err := s.Next()
			require.NoError(t, err)

			d := evaluator.Evaluate(project, []domain.Measurement{m})
			codes := make([]string, 0, len(d.Issues))
			for _, issue := range d.Issues {
				codes = append(codes, issue.Code)
			}
			assert.Contains(t, codes, tt.wantCode)
		})
	}
}
