package measurement

import (
	"context"
	"fmt"
	"time"

	"github.com/drors3/NaturalSignals-WireScope/pkg/adapters"
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/project"
	measurementstore "github.com/drors3/NaturalSignals-WireScope/pkg/store/duckdb/measurement"
	"github.com/google/uuid"
)

const (
	DefaultHistoryLimit = 20
	maxHistoryLimit     = 500
)

type Service interface {
	// Record persists one measurement after confirming the project exists.
	// A zero timestamp defaults to now.
	Record(ctx context.Context, m domain.Measurement) (domain.Measurement, error)
	// History returns up to limit measurements, newest first. Non-positive
	// limits fall back to the default window.
	History(ctx context.Context, projectID string, limit int) ([]domain.Measurement, error)
}

type service struct {
	projects project.Service
	store    measurementstore.Store
}

func NewService(projects project.Service, store measurementstore.Store) Service {
	return &service{projects: projects, store: store}
}

func (s *service) Record(ctx context.Context, m domain.Measurement) (domain.Measurement, error) {
	if _, err := s.projects.Get(ctx, m.ProjectID); err != nil {
		return domain.Measurement{}, err
	}

	m.ID = uuid.NewString()
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}

	if err := s.store.Add(ctx, adapters.MapMeasurementDomainToStore(m)); err != nil {
		return domain.Measurement{}, fmt.Errorf("store measurement: %w", err)
	}
	return m, nil
}

func (s *service) History(ctx context.Context, projectID string, limit int) ([]domain.Measurement, error) {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := s.store.GetHistory(ctx, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch history for %s: %w", projectID, err)
	}

	measurements := make([]domain.Measurement, 0, len(records))
	for _, r := range records {
		measurements = append(measurements, adapters.MapStoreMeasurementToDomain(r))
	}
	return measurements, nil
}
