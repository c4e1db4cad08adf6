package adapters

import (
	"time"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/api"
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/store"
)

func MapCreateMeasurementRequestToDomain(projectID string, req api.CreateMeasurementRequest) domain.Measurement {
	var ts time.Time
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}
	return domain.Measurement{
		ProjectID:          projectID,
		Timestamp:          ts,
		PhaseA:             mapPhaseApiToDomain(req.PhaseA),
		PhaseB:             mapPhaseApiToDomain(req.PhaseB),
		PhaseC:             mapPhaseApiToDomain(req.PhaseC),
		Neutral:            mapNeutralApiToDomain(req.Neutral),
		Ground:             mapGroundApiToDomain(req.Ground),
		Temperature:        req.Temperature,
		AmbientTemperature: req.AmbientTemperature,
		Humidity:           req.Humidity,
		PowerFactor:        req.PowerFactor,
		Frequency:          req.Frequency,
	}
}

func MapMeasurementDomainToApi(m domain.Measurement) api.Measurement {
	return api.Measurement{
		ID:                 m.ID,
		ProjectID:          m.ProjectID,
		Timestamp:          m.Timestamp,
		PhaseA:             mapPhaseDomainToApi(m.PhaseA),
		PhaseB:             mapPhaseDomainToApi(m.PhaseB),
		PhaseC:             mapPhaseDomainToApi(m.PhaseC),
		Neutral:            mapNeutralDomainToApi(m.Neutral),
		Ground:             mapGroundDomainToApi(m.Ground),
		Temperature:        m.Temperature,
		AmbientTemperature: m.AmbientTemperature,
		Humidity:           m.Humidity,
		PowerFactor:        m.PowerFactor,
		Frequency:          m.Frequency,
	}
}

func MapMeasurementDomainToStore(m domain.Measurement) store.MeasurementRecord {
	return store.MeasurementRecord{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		Timestamp: m.Timestamp,
		Readings: store.ReadingsDoc{
			PhaseA:             mapPhaseDomainToStore(m.PhaseA),
			PhaseB:             mapPhaseDomainToStore(m.PhaseB),
			PhaseC:             mapPhaseDomainToStore(m.PhaseC),
			Neutral:            mapNeutralDomainToStore(m.Neutral),
			Ground:             mapGroundDomainToStore(m.Ground),
			Temperature:        m.Temperature,
			AmbientTemperature: m.AmbientTemperature,
			Humidity:           m.Humidity,
			PowerFactor:        m.PowerFactor,
			Frequency:          m.Frequency,
		},
	}
}

func MapStoreMeasurementToDomain(r store.MeasurementRecord) domain.Measurement {
	return domain.Measurement{
		ID:                 r.ID,
		ProjectID:          r.ProjectID,
		Timestamp:          r.Timestamp,
		PhaseA:             mapPhaseStoreToDomain(r.Readings.PhaseA),
		PhaseB:             mapPhaseStoreToDomain(r.Readings.PhaseB),
		PhaseC:             mapPhaseStoreToDomain(r.Readings.PhaseC),
		Neutral:            mapNeutralStoreToDomain(r.Readings.Neutral),
		Ground:             mapGroundStoreToDomain(r.Readings.Ground),
		Temperature:        r.Readings.Temperature,
		AmbientTemperature: r.Readings.AmbientTemperature,
		Humidity:           r.Readings.Humidity,
		PowerFactor:        r.Readings.PowerFactor,
		Frequency:          r.Readings.Frequency,
	}
}

func mapPhaseApiToDomain(p *api.PhaseReading) *domain.PhaseReading {
	if p == nil {
		return nil
	}
	return &domain.PhaseReading{Voltage: p.Voltage, Current: p.Current, Power: p.Power, Temperature: p.Temperature}
}

func mapPhaseDomainToApi(p *domain.PhaseReading) *api.PhaseReading {
	if p == nil {
		return nil
	}
	return &api.PhaseReading{Voltage: p.Voltage, Current: p.Current, Power: p.Power, Temperature: p.Temperature}
}

func mapPhaseDomainToStore(p *domain.PhaseReading) *store.PhaseDoc {
	if p == nil {
		return nil
	}
	return &store.PhaseDoc{Voltage: p.Voltage, Current: p.Current, Power: p.Power, Temperature: p.Temperature}
}

func mapPhaseStoreToDomain(p *store.PhaseDoc) *domain.PhaseReading {
	if p == nil {
		return nil
	}
	return &domain.PhaseReading{Voltage: p.Voltage, Current: p.Current, Power: p.Power, Temperature: p.Temperature}
}

func mapNeutralApiToDomain(n *api.NeutralReading) *domain.NeutralReading {
	if n == nil {
		return nil
	}
	return &domain.NeutralReading{Current: n.Current, Voltage: n.Voltage}
}

func mapNeutralDomainToApi(n *domain.NeutralReading) *api.NeutralReading {
	if n == nil {
		return nil
	}
	return &api.NeutralReading{Current: n.Current, Voltage: n.Voltage}
}

func mapNeutralDomainToStore(n *domain.NeutralReading) *store.NeutralDoc {
	if n == nil {
		return nil
	}
	return &store.NeutralDoc{Current: n.Current, Voltage: n.Voltage}
}

func mapNeutralStoreToDomain(n *store.NeutralDoc) *domain.NeutralReading {
	if n == nil {
		return nil
	}
	return &domain.NeutralReading{Current: n.Current, Voltage: n.Voltage}
}

func mapGroundApiToDomain(g *api.GroundReading) *domain.GroundReading {
	if g == nil {
		return nil
	}
	return &domain.GroundReading{Resistance: g.Resistance, LeakageCurrent: g.LeakageCurrent}
}

func mapGroundDomainToApi(g *domain.GroundReading) *api.GroundReading {
	if g == nil {
		return nil
	}
	return &api.GroundReading{Resistance: g.Resistance, LeakageCurrent: g.LeakageCurrent}
}

func mapGroundDomainToStore(g *domain.GroundReading) *store.GroundDoc {
	if g == nil {
		return nil
	}
	return &store.GroundDoc{Resistance: g.Resistance, LeakageCurrent: g.LeakageCurrent}
}

func mapGroundStoreToDomain(g *store.GroundDoc) *domain.GroundReading {
	if g == nil {
		return nil
	}
	return &domain.GroundReading{Resistance: g.Resistance, LeakageCurrent: g.LeakageCurrent}
}
