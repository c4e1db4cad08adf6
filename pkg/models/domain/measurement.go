package domain

import "time"

// PhaseReading is a per-phase snapshot. Nil fields were not sampled;
// absence is never represented as zero.
type PhaseReading struct {
	Voltage     *float64
	Current     *float64
	Power       *float64
	Temperature *float64
}

type NeutralReading struct {
	Current *float64
	Voltage *float64
}

type GroundReading struct {
	Resistance     *float64 // ohms
	LeakageCurrent *float64 // milliamperes
}

// Measurement is a timestamped snapshot of an installation. Every field
// except ProjectID and Timestamp is optional.
type Measurement struct {
	ID        string
	ProjectID string
	Timestamp time.Time

	PhaseA *PhaseReading
	PhaseB *PhaseReading
	PhaseC *PhaseReading

	Neutral *NeutralReading
	Ground  *GroundReading

	Temperature        *float64 // system temperature, °C
	AmbientTemperature *float64
	Humidity           *float64
	PowerFactor        *float64
	Frequency          *float64 // Hz
}

func Float(v float64) *float64 { return &v }
