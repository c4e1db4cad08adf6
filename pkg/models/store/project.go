package store

import "time"

type ProjectRecord struct {
	ID             string
	Name           string
	SystemType     string
	NominalVoltage float64
	MaxCurrent     float64
	Status         string
	CreatedAt      time.Time
}
