package api

import "time"

type CreateProjectRequest struct {
	Name           string  `json:"name" validate:"required"`
	SystemType     string  `json:"systemType" validate:"required,oneof=single-phase three-phase dc"`
	NominalVoltage float64 `json:"nominalVoltage" validate:"required,gt=0"`
	MaxCurrent     float64 `json:"maxCurrent" validate:"omitempty,gt=0"`
}

type Project struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	SystemType     string    `json:"systemType"`
	NominalVoltage float64   `json:"nominalVoltage"`
	MaxCurrent     float64   `json:"maxCurrent,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}
