package domain

import "time"

type SystemType string

const (
	SystemSinglePhase SystemType = "single-phase"
	SystemThreePhase  SystemType = "three-phase"
	SystemDC          SystemType = "dc"
)

func (s SystemType) Valid() bool {
	switch s {
	case SystemSinglePhase, SystemThreePhase, SystemDC:
		return true
	}
	return false
}

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"
)

// Project describes an installation under measurement. It is treated as
// immutable for the duration of a single diagnosis run.
type Project struct {
	ID             string
	Name           string
	SystemType     SystemType
	NominalVoltage float64
	// MaxCurrent is the rated maximum phase current in amperes.
	// Zero means "use the default rating".
	MaxCurrent float64
	Status     ProjectStatus
	CreatedAt  time.Time
}
