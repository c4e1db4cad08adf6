package api

import "time"

// All reading fields are optional: a nil field was not sampled. The wire
// format never substitutes zero for an absent reading.
type PhaseReading struct {
	Voltage     *float64 `json:"voltage,omitempty"`
	Current     *float64 `json:"current,omitempty"`
	Power       *float64 `json:"power,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

type NeutralReading struct {
	Current *float64 `json:"current,omitempty"`
	Voltage *float64 `json:"voltage,omitempty"`
}

type GroundReading struct {
	Resistance     *float64 `json:"resistance,omitempty"`
	LeakageCurrent *float64 `json:"leakageCurrent,omitempty"`
}

type CreateMeasurementRequest struct {
	Timestamp          *time.Time      `json:"timestamp,omitempty"`
	PhaseA             *PhaseReading   `json:"phaseA,omitempty"`
	PhaseB             *PhaseReading   `json:"phaseB,omitempty"`
	PhaseC             *PhaseReading   `json:"phaseC,omitempty"`
	Neutral            *NeutralReading `json:"neutral,omitempty"`
	Ground             *GroundReading  `json:"ground,omitempty"`
	Temperature        *float64        `json:"temperature,omitempty"`
	AmbientTemperature *float64        `json:"ambientTemperature,omitempty"`
	Humidity           *float64        `json:"humidity,omitempty"`
	PowerFactor        *float64        `json:"powerFactor,omitempty"`
	Frequency          *float64        `json:"frequency,omitempty"`
}

type Measurement struct {
	ID                 string          `json:"id"`
	ProjectID          string          `json:"projectId"`
	Timestamp          time.Time       `json:"timestamp"`
	PhaseA             *PhaseReading   `json:"phaseA,omitempty"`
	PhaseB             *PhaseReading   `json:"phaseB,omitempty"`
	PhaseC             *PhaseReading   `json:"phaseC,omitempty"`
	Neutral            *NeutralReading `json:"neutral,omitempty"`
	Ground             *GroundReading  `json:"ground,omitempty"`
	Temperature        *float64        `json:"temperature,omitempty"`
	AmbientTemperature *float64        `json:"ambientTemperature,omitempty"`
	Humidity           *float64        `json:"humidity,omitempty"`
	PowerFactor        *float64        `json:"powerFactor,omitempty"`
	Frequency          *float64        `json:"frequency,omitempty"`
}
