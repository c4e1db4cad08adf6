package simulator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
	"github.com/google/uuid"
)

// Config fully describes a simulation session. Sessions share no process-wide
// state; callers own the config and the session it produces.
type Config struct {
	SystemType     domain.SystemType
	NominalVoltage float64
	MaxCurrent     float64
	Scenario       Scenario
	// Seed pins the random source for reproducible runs. Zero seeds from
	// the clock.
	Seed int64
}

// Session generates plausible synthetic measurements for one project,
// optionally injecting a named fault scenario.
type Session struct {
	cfg       Config
	projectID string
	rng       *rand.Rand
}

func NewSession(projectID string, cfg Config) *Session {
	if cfg.NominalVoltage <= 0 {
		cfg.NominalVoltage = 400
	}
	if cfg.MaxCurrent <= 0 {
		cfg.MaxCurrent = 100
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{
		cfg:       cfg,
		projectID: projectID,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Next produces one measurement. The only failure mode is an unsupported
// system type reaching the phase generation helper.
func (s *Session) Next() (domain.Measurement, error) {
	m := domain.Measurement{
		ID:        uuid.NewString(),
		ProjectID: s.projectID,
		Timestamp: time.Now().UTC(),
	}

	if err := s.generatePhases(&m); err != nil {
		return domain.Measurement{}, err
	}

	m.Neutral = &domain.NeutralReading{
		Current: domain.Float(s.between(1, 8)),
		Voltage: domain.Float(s.between(0.5, 2)),
	}
	m.Ground = &domain.GroundReading{
		Resistance:     domain.Float(s.between(1, 4)),
		LeakageCurrent: domain.Float(s.between(5, 20)),
	}
	m.Temperature = domain.Float(s.between(30, 50))
	m.AmbientTemperature = domain.Float(s.between(18, 30))
	m.Humidity = domain.Float(s.between(35, 65))

	if s.cfg.SystemType != domain.SystemDC {
		m.PowerFactor = domain.Float(s.between(0.9, 0.98))
		m.Frequency = domain.Float(s.between(49.9, 50.1))
	}

	s.injectScenario(&m)
	return m, nil
}

func (s *Session) generatePhases(m *domain.Measurement) error {
	switch s.cfg.SystemType {
	case domain.SystemThreePhase:
		m.PhaseA = s.phaseReading()
		m.PhaseB = s.phaseReading()
		m.PhaseC = s.phaseReading()
	case domain.SystemSinglePhase, domain.SystemDC:
		m.PhaseA = s.phaseReading()
	default:
		return fmt.Errorf("unsupported system type: %q", s.cfg.SystemType)
	}
	return nil
}

func (s *Session) phaseReading() *domain.PhaseReading {
	voltage := s.cfg.NominalVoltage * s.between(0.98, 1.02)
	current := s.cfg.MaxCurrent * s.between(0.2, 0.8)
	return &domain.PhaseReading{
		Voltage:     domain.Float(voltage),
		Current:     domain.Float(current),
		Power:       domain.Float(voltage * current * 0.95),
		Temperature: domain.Float(s.between(30, 50)),
	}
}

func (s *Session) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
