package store

import "time"

// Reading documents are persisted as a single JSON column; row columns carry
// only the query dimensions (project, timestamp).

type PhaseDoc struct {
	Voltage     *float64 `json:"voltage,omitempty"`
	Current     *float64 `json:"current,omitempty"`
	Power       *float64 `json:"power,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

type NeutralDoc struct {
	Current *float64 `json:"current,omitempty"`
	Voltage *float64 `json:"voltage,omitempty"`
}

type GroundDoc struct {
	Resistance     *float64 `json:"resistance,omitempty"`
	LeakageCurrent *float64 `json:"leakageCurrent,omitempty"`
}

type ReadingsDoc struct {
	PhaseA             *PhaseDoc   `json:"phaseA,omitempty"`
	PhaseB             *PhaseDoc   `json:"phaseB,omitempty"`
	PhaseC             *PhaseDoc   `json:"phaseC,omitempty"`
	Neutral            *NeutralDoc `json:"neutral,omitempty"`
	Ground             *GroundDoc  `json:"ground,omitempty"`
	Temperature        *float64    `json:"temperature,omitempty"`
	AmbientTemperature *float64    `json:"ambientTemperature,omitempty"`
	Humidity           *float64    `json:"humidity,omitempty"`
	PowerFactor        *float64    `json:"powerFactor,omitempty"`
	Frequency          *float64    `json:"frequency,omitempty"`
}

type MeasurementRecord struct {
	ID        string
	ProjectID string
	Timestamp time.Time
	Readings  ReadingsDoc
}
