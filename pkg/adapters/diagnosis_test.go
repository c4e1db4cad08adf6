package adapters

import (
	"testing"
	"time"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosisStoreRoundTrip(t *testing.T) {
	original := domain.Diagnosis{
		ID:        "diag-1",
		ProjectID: "prj-1",
		Timestamp: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
		Issues: []domain.Issue{{
			Code:           "HIGH_GROUND_RESISTANCE",
			Description:    "Ground resistance 30.0Ω exceeds the 5Ω limit",
			Severity:       domain.SeverityCritical,
			Component:      "grounding system",
			PossibleCauses: []string{"corroded ground electrode"},
		}},
		Recommendations: []domain.Recommendation{{
			Priority:          1,
			Action:            "Test the grounding electrode",
			EstimatedTime:     "3-4 hours",
			RequiredTools:     []string{"earth ground tester"},
			SafetyPrecautions: []string{"lockout/tagout the feeder"},
		}},
		OverallSeverity: domain.SeverityCritical,
		SafetyAlert:     "critical issues detected",
	}

	got := MapStoreDiagnosisToDomain(MapDiagnosisDomainToStore(original))
	assert.Equal(t, original, got)
}

func TestMeasurementStoreRoundTrip_PreservesAbsence(t *testing.T) {
	original := domain.Measurement{
		ID:        "m-1",
		ProjectID: "prj-1",
		Timestamp: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
		PhaseA: &domain.PhaseReading{
			Voltage: domain.Float(398),
			Current: domain.Float(42),
		},
		Ground: &domain.GroundReading{
			Resistance: domain.Float(2.1),
		},
		Temperature: domain.Float(41),
	}

	got := MapStoreMeasurementToDomain(MapMeasurementDomainToStore(original))
	assert.Equal(t, original, got)

	// Un-sampled readings must survive as nil rather than zero.
	assert.Nil(t, got.PhaseB)
	assert.Nil(t, got.Neutral)
	assert.Nil(t, got.PowerFactor)
	require.NotNil(t, got.Ground)
	assert.Nil(t, got.Ground.LeakageCurrent)
}
