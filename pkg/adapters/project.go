package adapters

import (
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/api"
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/store"
)

func MapProjectDomainToApi(p domain.Project) api.Project {
	return api.Project{
		ID:             p.ID,
		Name:           p.Name,
		SystemType:     string(p.SystemType),
		NominalVoltage: p.NominalVoltage,
		MaxCurrent:     p.MaxCurrent,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt,
	}
}

func MapProjectDomainToStore(p domain.Project) store.ProjectRecord {
	return store.ProjectRecord{
		ID:             p.ID,
		Name:           p.Name,
		SystemType:     string(p.SystemType),
		NominalVoltage: p.NominalVoltage,
		MaxCurrent:     p.MaxCurrent,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt,
	}
}

func MapStoreProjectToDomain(r store.ProjectRecord) domain.Project {
	return domain.Project{
		ID:             r.ID,
		Name:           r.Name,
		SystemType:     domain.SystemType(r.SystemType),
		NominalVoltage: r.NominalVoltage,
		MaxCurrent:     r.MaxCurrent,
		Status:         domain.ProjectStatus(r.Status),
		CreatedAt:      r.CreatedAt,
	}
}
